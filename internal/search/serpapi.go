package search

import (
	"context"
	"fmt"

	"Karyatra/be/internal/resource"

	serpapi "github.com/serpapi/google-search-results-golang"
)

// SerpAPIProvider runs Google searches through SerpAPI. Requires an API
// key, so it only joins the provider set when one is configured.
type SerpAPIProvider struct {
	apiKey string
}

func NewSerpAPIProvider(apiKey string) *SerpAPIProvider {
	return &SerpAPIProvider{apiKey: apiKey}
}

func (p *SerpAPIProvider) Name() string { return "google" }

func (p *SerpAPIProvider) Search(ctx context.Context, query string, limit int) ([]resource.Resource, error) {
	if limit <= 0 {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parameter := map[string]string{
		"engine": "google",
		"q":      query,
		"num":    fmt.Sprintf("%d", limit),
	}
	s := serpapi.NewGoogleSearch(parameter, p.apiKey)
	results, err := s.GetJSON()
	if err != nil {
		return nil, fmt.Errorf("serpapi request: %w", err)
	}

	organic, _ := results["organic_results"].([]interface{})
	return organicToResources(organic, limit), nil
}

// organicToResources maps SerpAPI organic results onto resources, dropping
// entries without a link.
func organicToResources(items []interface{}, limit int) []resource.Resource {
	var results []resource.Resource
	for _, item := range items {
		if len(results) >= limit {
			break
		}
		hit, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		link, _ := hit["link"].(string)
		if link == "" {
			continue
		}
		title, _ := hit["title"].(string)
		snippet, _ := hit["snippet"].(string)
		results = append(results, resource.Resource{
			Title:        title,
			URL:          link,
			Description:  snippet,
			Source:       "Google",
			ResourceType: "article",
		})
	}
	return results
}
