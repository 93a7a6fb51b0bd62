package recommend

import (
	"sort"

	"Karyatra/be/internal/resource"
)

const baseScore = 10

// personalize orders resources by a transient preference score: +5 for a
// preferred type, +5 for a preferred source, +3 for a matching experience
// level. The sort is stable, so ties keep their input order, and the score
// never leaves this function.
func personalize(resources []resource.Resource, prefs UserPreferences) []resource.Resource {
	types := toSet(prefs.PreferredTypes)
	sources := toSet(prefs.PreferredSources)

	scored := make([]struct {
		r     resource.Resource
		score int
	}, len(resources))

	for i, r := range resources {
		score := baseScore
		if len(types) > 0 && types[r.ResourceType] {
			score += 5
		}
		if len(sources) > 0 && sources[r.Source] {
			score += 5
		}
		if prefs.ExperienceLevel != "" && r.Level == prefs.ExperienceLevel {
			score += 3
		}
		scored[i].r = r
		scored[i].score = score
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	out := make([]resource.Resource, len(scored))
	for i, s := range scored {
		out[i] = s.r
	}
	return out
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
