package recommend

import (
	"context"
	"errors"
	"sync"
	"testing"

	"Karyatra/be/internal/keywords"
	"Karyatra/be/internal/resource"
	"Karyatra/be/internal/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRepo struct {
	mu        sync.Mutex
	rows      []resource.Resource
	err       error
	calls     int
	lastLimit int
}

func (s *stubRepo) FindCurated(_ context.Context, _ string, _ []string, limit int) ([]resource.Resource, error) {
	s.mu.Lock()
	s.calls++
	s.lastLimit = limit
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if len(s.rows) > limit {
		return s.rows[:limit], nil
	}
	return s.rows, nil
}

func (s *stubRepo) Insert(context.Context, *resource.Resource) (int64, error)  { return 0, nil }
func (s *stubRepo) InsertFeedback(context.Context, *resource.Feedback) error   { return nil }
func (s *stubRepo) ApplyRating(context.Context, int64, int) error              { return nil }

type stubProvider struct {
	mu      sync.Mutex
	name    string
	results []resource.Resource
	err     error
	calls   int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Search(_ context.Context, _ string, limit int) ([]resource.Resource, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	if limit <= 0 {
		return nil, nil
	}
	if len(p.results) > limit {
		return p.results[:limit], nil
	}
	return p.results, nil
}

func (p *stubProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func newEngine(repo resource.Repository, providers ...*stubProvider) *ServiceImpl {
	list := make([]search.Provider, 0, len(providers))
	for _, p := range providers {
		list = append(list, p)
	}
	return NewServiceImpl(repo, list, keywords.NewExtractor(5), NewCache(0), zap.NewNop())
}

func TestURLsArePairwiseDistinct(t *testing.T) {
	repo := &stubRepo{rows: []resource.Resource{
		{Title: "curated", URL: "https://x.example", Skill: "go"},
	}}
	provider := &stubProvider{name: "ddg", results: []resource.Resource{
		{Title: "dup of curated", URL: "https://x.example"},
		{Title: "fresh", URL: "https://y.example"},
	}}
	engine := newEngine(repo, provider)

	got, err := engine.GetRecommendations(context.Background(), Request{
		Skills: []string{"go"}, MaxResults: 10,
	})
	require.NoError(t, err)

	list := got["go"]
	seen := map[string]bool{}
	for _, v := range list {
		assert.False(t, seen[v.URL], "duplicate URL %s", v.URL)
		seen[v.URL] = true
	}
	require.Len(t, list, 2)
	assert.Equal(t, "curated", list[0].Title, "curated rows come first")
	assert.Equal(t, "https://y.example", list[1].URL)
}

func TestSecondCallIsServedFromCache(t *testing.T) {
	repo := &stubRepo{rows: []resource.Resource{
		{Title: "curated", URL: "https://x.example", Skill: "python"},
	}}
	provider := &stubProvider{name: "ddg", results: []resource.Resource{
		{Title: "fresh", URL: "https://y.example"},
	}}
	engine := newEngine(repo, provider)

	req := Request{Skills: []string{"python"}, MaxResults: 5}
	first, err := engine.GetRecommendations(context.Background(), req)
	require.NoError(t, err)

	repoCalls, providerCalls := repo.calls, provider.callCount()

	second, err := engine.GetRecommendations(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second, "cache hit returns identical ordered output")
	assert.Equal(t, repoCalls, repo.calls, "no store call on cache hit")
	assert.Equal(t, providerCalls, provider.callCount(), "no provider call on cache hit")
}

func TestCacheClearForcesRecomputation(t *testing.T) {
	repo := &stubRepo{}
	provider := &stubProvider{name: "ddg", results: []resource.Resource{
		{Title: "fresh", URL: "https://y.example"},
	}}
	cache := NewCache(0)
	engine := NewServiceImpl(repo, []search.Provider{provider}, keywords.NewExtractor(5), cache, zap.NewNop())

	req := Request{Skills: []string{"go"}, MaxResults: 5}
	_, err := engine.GetRecommendations(context.Background(), req)
	require.NoError(t, err)
	callsAfterFirst := provider.callCount()

	// What AddResource does after a curated insert.
	cache.Clear()

	_, err = engine.GetRecommendations(context.Background(), req)
	require.NoError(t, err)
	assert.Greater(t, provider.callCount(), callsAfterFirst, "cleared cache recomputes")
}

func TestProviderFailureStillReturnsCuratedRows(t *testing.T) {
	repo := &stubRepo{rows: []resource.Resource{
		{Title: "curated", URL: "https://x.example", Skill: "go"},
	}}
	broken := &stubProvider{name: "github", err: errors.New("rate limited")}
	engine := newEngine(repo, broken)

	got, err := engine.GetRecommendations(context.Background(), Request{
		Skills: []string{"go"}, MaxResults: 10,
	})
	require.NoError(t, err)
	require.Len(t, got["go"], 1)
	assert.Equal(t, "curated", got["go"][0].Title)
}

func TestCuratedFailureFallsThroughToSearch(t *testing.T) {
	repo := &stubRepo{err: errors.New("connection refused")}
	provider := &stubProvider{name: "ddg", results: []resource.Resource{
		{Title: "fresh", URL: "https://y.example"},
	}}
	engine := newEngine(repo, provider)

	got, err := engine.GetRecommendations(context.Background(), Request{
		Skills: []string{"go"}, MaxResults: 10,
	})
	require.NoError(t, err)
	require.Len(t, got["go"], 1)
	assert.Equal(t, "https://y.example", got["go"][0].URL)
}

func TestMaxResultsOneSkipsCuratedLookup(t *testing.T) {
	repo := &stubRepo{rows: []resource.Resource{
		{Title: "curated", URL: "https://x.example", Skill: "go"},
	}}
	provider := &stubProvider{name: "ddg", results: []resource.Resource{
		{Title: "fresh", URL: "https://y.example"},
	}}
	engine := newEngine(repo, provider)

	got, err := engine.GetRecommendations(context.Background(), Request{
		Skills: []string{"go"}, MaxResults: 1,
	})
	require.NoError(t, err)

	assert.Zero(t, repo.calls, "curated limit of zero never reaches the store")
	require.Len(t, got["go"], 1, "search supplies the whole result set")
	assert.Equal(t, "fresh", got["go"][0].Title)
}

func TestPersonalizationReordersMergedResults(t *testing.T) {
	repo := &stubRepo{}
	provider := &stubProvider{name: "ddg", results: []resource.Resource{
		{Title: "article hit", URL: "https://a.example", ResourceType: "article", Source: "X"},
		{Title: "video hit", URL: "https://v.example", ResourceType: "video", Source: "YouTube"},
	}}
	engine := newEngine(repo, provider)

	got, err := engine.GetRecommendations(context.Background(), Request{
		Skills:      []string{"go"},
		MaxResults:  10,
		Preferences: &UserPreferences{PreferredTypes: []string{"video"}},
	})
	require.NoError(t, err)

	list := got["go"]
	require.NotEmpty(t, list)
	assert.Equal(t, "video hit", list[0].Title)
}

func TestResultsTruncatedToMaxResults(t *testing.T) {
	var rows []resource.Resource
	for _, u := range []string{"https://a.example", "https://b.example", "https://c.example"} {
		rows = append(rows, resource.Resource{Title: u, URL: u, Skill: "go"})
	}
	repo := &stubRepo{rows: rows}
	provider := &stubProvider{name: "ddg", results: []resource.Resource{
		{Title: "d", URL: "https://d.example"},
		{Title: "e", URL: "https://e.example"},
	}}
	engine := newEngine(repo, provider)

	got, err := engine.GetRecommendations(context.Background(), Request{
		Skills: []string{"go"}, MaxResults: 4,
	})
	require.NoError(t, err)
	assert.Len(t, got["go"], 4)
}

func TestEachSkillGetsItsOwnList(t *testing.T) {
	repo := &stubRepo{}
	provider := &stubProvider{name: "ddg", results: []resource.Resource{
		{Title: "fresh", URL: "https://y.example"},
	}}
	engine := newEngine(repo, provider)

	got, err := engine.GetRecommendations(context.Background(), Request{
		Skills: []string{"go", "sql"}, MaxResults: 5,
	})
	require.NoError(t, err)
	assert.Contains(t, got, "go")
	assert.Contains(t, got, "sql")
}
