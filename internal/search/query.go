package search

import "strings"

// Intent biases the phrasing of a search query.
type Intent string

const (
	IntentLearn     Intent = "learn"
	IntentPractice  Intent = "practice"
	IntentInterview Intent = "interview"
)

var intentSuffix = map[Intent]string{
	IntentLearn:     "tutorial guide beginner",
	IntentPractice:  "practice exercises examples projects",
	IntentInterview: "interview questions technical preparation",
}

// FormatQuery builds a provider query from a skill, up to three context
// keywords, and an intent suffix. Pure; an unknown intent adds nothing.
func FormatQuery(skill string, contextKeywords []string, intent Intent) string {
	parts := []string{skill}
	if len(contextKeywords) > 0 {
		kws := contextKeywords
		if len(kws) > 3 {
			kws = kws[:3]
		}
		parts = append(parts, strings.Join(kws, " "))
	}
	if suffix, ok := intentSuffix[intent]; ok {
		parts = append(parts, suffix)
	}
	return strings.Join(parts, " ")
}
