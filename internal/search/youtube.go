package search

import (
	"context"
	"fmt"

	"Karyatra/be/internal/resource"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTubeProvider searches videos through the Data API v3.
type YouTubeProvider struct {
	service *youtube.Service
}

func NewYouTubeProvider(ctx context.Context, apiKey string) (*YouTubeProvider, error) {
	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating youtube service: %w", err)
	}
	return &YouTubeProvider{service: service}, nil
}

func (p *YouTubeProvider) Name() string { return "youtube" }

func (p *YouTubeProvider) Search(ctx context.Context, query string, limit int) ([]resource.Resource, error) {
	if limit <= 0 {
		return nil, nil
	}

	call := p.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(int64(limit))

	response, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}
	return videosToResources(response.Items), nil
}

func videosToResources(items []*youtube.SearchResult) []resource.Resource {
	var results []resource.Resource
	for _, item := range items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		r := resource.Resource{
			Title:        item.Snippet.Title,
			URL:          watchURL(item.Id.VideoId),
			Description:  item.Snippet.Description,
			Source:       "YouTube",
			ResourceType: "video",
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
			r.Thumbnail = item.Snippet.Thumbnails.High.Url
		}
		results = append(results, r)
	}
	return results
}

func watchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
