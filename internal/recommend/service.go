package recommend

import (
	"context"
	"strings"

	"Karyatra/be/internal/keywords"
	"Karyatra/be/internal/resource"
	"Karyatra/be/internal/search"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultMaxResults = 15

// ServiceImpl merges curated store lookups with a concurrent fan-out over
// the configured search providers.
//
// Providers are held as an ordered slice: fan-out tasks collect into
// submission-order slots, so the merged order is deterministic for
// deterministic provider output regardless of completion order.
type ServiceImpl struct {
	repo      resource.Repository
	providers []search.Provider
	extractor *keywords.Extractor
	cache     *Cache
	log       *zap.Logger
}

func NewServiceImpl(repo resource.Repository, providers []search.Provider, extractor *keywords.Extractor, cache *Cache, log *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		repo:      repo,
		providers: providers,
		extractor: extractor,
		cache:     cache,
		log:       log,
	}
}

func (s *ServiceImpl) GetRecommendations(ctx context.Context, req Request) (map[string][]resource.View, error) {
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	// Context keywords are computed once and shared across skills.
	var contextKeywords []string
	if req.JobContext != "" {
		contextKeywords = s.extractor.Extract(req.JobContext)
	}

	recommendations := make(map[string][]resource.View, len(req.Skills))
	for _, skill := range req.Skills {
		key := cacheKey(skill, contextKeywords)
		if cached, ok := s.cache.Get(key); ok {
			recommendations[skill] = views(truncate(cached, maxResults))
			continue
		}

		collected := s.curated(ctx, skill, contextKeywords, maxResults/2)

		if len(collected) < maxResults {
			found := s.searchExternal(ctx, skill, contextKeywords, maxResults-len(collected))
			collected = mergeByURL(collected, found)
		}

		if req.Preferences != nil {
			collected = personalize(collected, *req.Preferences)
		}

		// The full list is cached; only the response is truncated.
		s.cache.Put(key, collected)
		recommendations[skill] = views(truncate(collected, maxResults))
	}
	return recommendations, nil
}

// curated fetches store rows for one skill. A store failure degrades to
// zero curated results so the search fan-out still runs.
func (s *ServiceImpl) curated(ctx context.Context, skill string, contextKeywords []string, limit int) []resource.Resource {
	if limit <= 0 {
		return nil
	}
	rows, err := s.repo.FindCurated(ctx, skill, contextKeywords, limit)
	if err != nil {
		s.log.Warn("curated lookup failed", zap.String("skill", skill), zap.Error(err))
		return nil
	}
	return rows
}

// searchExternal fans out three query variants per provider and joins them
// all; nothing is consumed early and no call aborts the batch. A failed
// call logs and contributes nothing.
func (s *ServiceImpl) searchExternal(ctx context.Context, skill string, contextKeywords []string, limit int) []resource.Resource {
	if len(s.providers) == 0 {
		return nil
	}

	perProvider := limit / len(s.providers)
	if perProvider < 1 {
		perProvider = 1
	}

	type searchCall struct {
		provider search.Provider
		query    string
		limit    int
	}

	learn := search.FormatQuery(skill, contextKeywords, search.IntentLearn)
	practice := search.FormatQuery(skill, contextKeywords, search.IntentPractice)
	interview := search.FormatQuery(skill, contextKeywords, search.IntentInterview)

	var calls []searchCall
	for _, p := range s.providers {
		// The learn variant keeps a floor of one so a tight budget still
		// produces results instead of zeroing out every variant.
		calls = append(calls,
			searchCall{p, learn, max(1, perProvider/2)},
			searchCall{p, practice, perProvider / 4},
			searchCall{p, interview, perProvider / 4},
		)
	}

	slots := make([][]resource.Resource, len(calls))
	var g errgroup.Group
	for i, call := range calls {
		i, call := i, call
		g.Go(func() error {
			found, err := call.provider.Search(ctx, call.query, call.limit)
			if err != nil {
				s.log.Warn("provider search failed",
					zap.String("provider", call.provider.Name()),
					zap.String("query", call.query),
					zap.Error(err))
				return nil
			}
			slots[i] = found
			return nil
		})
	}
	g.Wait()

	var all []resource.Resource
	for _, slot := range slots {
		all = append(all, slot...)
	}
	return all
}

// mergeByURL appends found to collected, skipping resources whose URL is
// already present. First seen wins.
func mergeByURL(collected, found []resource.Resource) []resource.Resource {
	seen := make(map[string]struct{}, len(collected))
	for _, r := range collected {
		seen[r.URL] = struct{}{}
	}
	for _, r := range found {
		if _, dup := seen[r.URL]; dup {
			continue
		}
		seen[r.URL] = struct{}{}
		collected = append(collected, r)
	}
	return collected
}

func cacheKey(skill string, contextKeywords []string) string {
	return skill + "_" + strings.Join(contextKeywords, "-")
}

func truncate(rs []resource.Resource, max int) []resource.Resource {
	if len(rs) > max {
		return rs[:max]
	}
	return rs
}

func views(rs []resource.Resource) []resource.View {
	out := make([]resource.View, len(rs))
	for i, r := range rs {
		out[i] = r.View()
	}
	return out
}
