package resource

import (
	"context"
	"time"

	"github.com/lib/pq"
)

// Resource is one learning or practice asset: either a curated row owned by
// the store or an ephemeral result built from a search-provider response.
type Resource struct {
	ID           int64          `db:"id" json:"id"`
	Skill        string         `db:"skill" json:"skill"`
	Title        string         `db:"title" json:"title"`
	URL          string         `db:"url" json:"url"`
	Description  string         `db:"description" json:"description"`
	Source       string         `db:"source" json:"source"`
	ResourceType string         `db:"resource_type" json:"resource_type"`
	Tags         pq.StringArray `db:"tags" json:"tags"`
	Level        string         `db:"level" json:"level"`
	Rating       float64        `db:"rating" json:"rating"`
	NumRatings   int            `db:"num_ratings" json:"num_ratings"`
	Active       bool           `db:"active" json:"active"`
	AddedAt      time.Time      `db:"added_at" json:"added_at"`

	// Search-only extras, never persisted.
	Thumbnail string `db:"-" json:"thumbnail,omitempty"`
	Stars     int    `db:"-" json:"stars,omitempty"`
}

// View is the wire shape of a resource. Field names are stable.
type View struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	URL          string   `json:"url"`
	Source       string   `json:"source"`
	ResourceType string   `json:"resource_type"`
	Description  string   `json:"description"`
	Rating       float64  `json:"rating"`
	Tags         []string `json:"tags"`
	Level        string   `json:"level"`
	Thumbnail    string   `json:"thumbnail,omitempty"`
	Stars        int      `json:"stars,omitempty"`
}

func (r Resource) View() View {
	tags := r.Tags
	if tags == nil {
		tags = pq.StringArray{}
	}
	return View{
		ID:           r.ID,
		Title:        r.Title,
		URL:          r.URL,
		Source:       r.Source,
		ResourceType: r.ResourceType,
		Description:  r.Description,
		Rating:       r.Rating,
		Tags:         tags,
		Level:        r.Level,
		Thumbnail:    r.Thumbnail,
		Stars:        r.Stars,
	}
}

// Feedback is one user's reaction to one resource. Immutable once written.
type Feedback struct {
	ID         int64     `db:"id"`
	ResourceID int64     `db:"resource_id"`
	UserID     int64     `db:"user_id"`
	Rating     *int      `db:"rating"`
	Helpful    *bool     `db:"helpful"`
	Comments   *string   `db:"comments"`
	CreatedAt  time.Time `db:"created_at"`
}

type Service interface {
	AddResource(ctx context.Context, req AddResourceRequest) (int64, error)
	RecordFeedback(ctx context.Context, req FeedbackRequest) error
}

type Repository interface {
	// FindCurated returns up to limit active resources for the skill. With
	// context keywords the rows are ranked by keyword relevance, otherwise
	// by rating and recency. Never mutates the store.
	FindCurated(ctx context.Context, skill string, keywords []string, limit int) ([]Resource, error)
	Insert(ctx context.Context, r *Resource) (int64, error)
	InsertFeedback(ctx context.Context, f *Feedback) error
	// ApplyRating folds one rating into the running average in a single
	// atomic statement. A missing resource is a no-op.
	ApplyRating(ctx context.Context, resourceID int64, rating int) error
}

// CacheInvalidator lets this package drop the recommendation cache after a
// curated insert without depending on the engine package.
type CacheInvalidator interface {
	Clear()
}

type AddResourceRequest struct {
	Skill        string   `json:"skill" binding:"required"`
	Title        string   `json:"title" binding:"required"`
	URL          string   `json:"url" binding:"required"`
	Description  string   `json:"description"`
	Source       string   `json:"source"`
	ResourceType string   `json:"resource_type"`
	Tags         []string `json:"tags"`
	Level        string   `json:"level"`
}

type AddResourceResponse struct {
	ID int64 `json:"id"`
}

type FeedbackRequest struct {
	ResourceID int64   `json:"-"`
	UserID     int64   `json:"-"`
	Rating     *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Helpful    *bool   `json:"helpful"`
	Comments   *string `json:"comments"`
}
