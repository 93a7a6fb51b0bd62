package recommend

import (
	"context"

	"Karyatra/be/internal/resource"
)

type Service interface {
	// GetRecommendations resolves each skill, in input order, to a ranked
	// list of resources: curated rows first, then live search results.
	GetRecommendations(ctx context.Context, req Request) (map[string][]resource.View, error)
}

type Request struct {
	Skills      []string         `json:"skills"`
	JobContext  string           `json:"job_context"`
	Preferences *UserPreferences `json:"preferences"`
	MaxResults  int              `json:"max_results"`
}

// UserPreferences is per-request personalization input. It is read here
// and never persisted.
type UserPreferences struct {
	PreferredTypes   []string `json:"preferred_types"`
	PreferredSources []string `json:"preferred_sources"`
	ExperienceLevel  string   `json:"experience_level"`
	Interests        []string `json:"interests"`
}

type Response struct {
	Recommendations map[string][]resource.View `json:"recommendations"`
}
