package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"Karyatra/be/internal/httputil"
	"Karyatra/be/internal/resource"

	"github.com/PuerkitoBio/goquery"
)

// duckDuckGoBase is a var so tests can point it at an httptest server.
var duckDuckGoBase = "https://html.duckduckgo.com/html/"

// DuckDuckGoProvider scrapes the HTML results page. It needs no
// credentials, so it is always part of the configured provider set.
type DuckDuckGoProvider struct {
	client *http.Client
}

func NewDuckDuckGoProvider(timeout time.Duration) *DuckDuckGoProvider {
	return &DuckDuckGoProvider{client: &http.Client{Timeout: timeout}}
}

func (p *DuckDuckGoProvider) Name() string { return "ddg" }

func (p *DuckDuckGoProvider) Search(ctx context.Context, query string, limit int) ([]resource.Resource, error) {
	if limit <= 0 {
		return nil, nil
	}

	reqURL := duckDuckGoBase + "?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	// The default Go user agent gets an empty results page.
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")

	resp, err := httputil.DoWithRetry(ctx, p.client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing duckduckgo response: %w", err)
	}

	var results []resource.Resource
	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		link := sel.Find("a.result__a")
		href, ok := link.Attr("href")
		if !ok {
			return true
		}
		results = append(results, resource.Resource{
			Title:        link.Text(),
			URL:          resolveRedirect(href),
			Description:  sel.Find(".result__snippet").Text(),
			Source:       "DuckDuckGo",
			ResourceType: "article",
		})
		return len(results) < limit
	})
	return results, nil
}

// resolveRedirect unwraps the /l/?uddg=<target> redirect DuckDuckGo wraps
// result links in. Unrecognized hrefs pass through untouched.
func resolveRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}
