package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/youtube/v3"
)

func TestVideosToResources(t *testing.T) {
	items := []*youtube.SearchResult{
		{
			Id: &youtube.ResourceId{VideoId: "dQw4w9WgXcQ"},
			Snippet: &youtube.SearchResultSnippet{
				Title:       "Go in 100 Seconds",
				Description: "A quick tour.",
				Thumbnails: &youtube.ThumbnailDetails{
					High: &youtube.Thumbnail{Url: "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"},
				},
			},
		},
		{
			// Channel hit without a video id: dropped.
			Id:      &youtube.ResourceId{ChannelId: "UC123"},
			Snippet: &youtube.SearchResultSnippet{Title: "Some channel"},
		},
		{
			// No thumbnails block.
			Id:      &youtube.ResourceId{VideoId: "abc123xyz"},
			Snippet: &youtube.SearchResultSnippet{Title: "Go Concurrency Patterns"},
		},
	}

	results := videosToResources(items)
	require.Len(t, results, 2)

	assert.Equal(t, "Go in 100 Seconds", results[0].Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", results[0].URL)
	assert.Equal(t, "video", results[0].ResourceType)
	assert.Equal(t, "YouTube", results[0].Source)
	assert.Equal(t, "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg", results[0].Thumbnail)

	assert.Equal(t, "https://www.youtube.com/watch?v=abc123xyz", results[1].URL)
	assert.Empty(t, results[1].Thumbnail)
}
