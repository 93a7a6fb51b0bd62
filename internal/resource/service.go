package resource

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

type ServiceImpl struct {
	repo  Repository
	cache CacheInvalidator
	log   *zap.Logger
}

func NewServiceImpl(repo Repository, cache CacheInvalidator, log *zap.Logger) *ServiceImpl {
	return &ServiceImpl{repo: repo, cache: cache, log: log}
}

// AddResource validates and inserts a curated resource, then drops the
// whole recommendation cache so the next lookup sees the new row.
func (s *ServiceImpl) AddResource(ctx context.Context, req AddResourceRequest) (int64, error) {
	u, err := url.Parse(req.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return 0, &ValidationError{Field: "url", Reason: "must be an absolute URL"}
	}

	resourceType := req.ResourceType
	if resourceType == "" {
		resourceType = "article"
	}
	level := req.Level
	if level == "" {
		level = "beginner"
	}

	res := &Resource{
		Skill:        req.Skill,
		Title:        req.Title,
		URL:          req.URL,
		Description:  req.Description,
		Source:       req.Source,
		ResourceType: resourceType,
		Tags:         req.Tags,
		Level:        level,
		Rating:       0,
		NumRatings:   0,
		Active:       true,
		AddedAt:      time.Now(),
	}

	id, err := s.repo.Insert(ctx, res)
	if err != nil {
		s.log.Error("resource insert failed", zap.String("skill", req.Skill), zap.Error(err))
		return 0, err
	}

	s.cache.Clear()
	return id, nil
}

// RecordFeedback persists the feedback and, when a rating is present, folds
// it into the resource's running average. Best effort: an error goes back
// to the immediate caller and nowhere else.
func (s *ServiceImpl) RecordFeedback(ctx context.Context, req FeedbackRequest) error {
	f := &Feedback{
		ResourceID: req.ResourceID,
		UserID:     req.UserID,
		Rating:     req.Rating,
		Helpful:    req.Helpful,
		Comments:   req.Comments,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.InsertFeedback(ctx, f); err != nil {
		s.log.Error("feedback insert failed", zap.Int64("resource_id", req.ResourceID), zap.Error(err))
		return err
	}

	if req.Rating != nil {
		if err := s.repo.ApplyRating(ctx, req.ResourceID, *req.Rating); err != nil {
			s.log.Error("rating update failed", zap.Int64("resource_id", req.ResourceID), zap.Error(err))
			return err
		}
	}
	return nil
}
