package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"Karyatra/be/internal/httputil"
	"Karyatra/be/internal/resource"
)

var gitHubAPIBase = "https://api.github.com/search/repositories"

// GitHubProvider searches repositories, ordered by stars descending. The
// token is optional; without it the API allows 10 search calls a minute,
// which is plenty for a single-user deployment.
type GitHubProvider struct {
	token  string
	client *http.Client
}

func NewGitHubProvider(token string, timeout time.Duration) *GitHubProvider {
	return &GitHubProvider{token: token, client: &http.Client{Timeout: timeout}}
}

func (p *GitHubProvider) Name() string { return "github" }

func (p *GitHubProvider) Search(ctx context.Context, query string, limit int) ([]resource.Resource, error) {
	if limit <= 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("sort", "stars")
	params.Set("order", "desc")
	params.Set("per_page", fmt.Sprintf("%d", limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, gitHubAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if p.token != "" {
		req.Header.Set("Authorization", "token "+p.token)
	}

	resp, err := httputil.DoWithRetry(ctx, p.client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("github request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github returned HTTP %d", resp.StatusCode)
	}

	var payload gitHubSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("parsing github response: %w", err)
	}

	results := make([]resource.Resource, 0, len(payload.Items))
	for _, item := range payload.Items {
		results = append(results, resource.Resource{
			Title:        item.Name,
			URL:          item.HTMLURL,
			Description:  item.Description,
			Source:       "GitHub",
			ResourceType: "repository",
			Stars:        item.StargazersCount,
		})
	}
	return results, nil
}

type gitHubSearchResponse struct {
	Items []gitHubRepo `json:"items"`
}

type gitHubRepo struct {
	Name            string `json:"name"`
	HTMLURL         string `json:"html_url"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
}
