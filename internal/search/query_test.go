package search

import "testing"

func TestFormatQuery(t *testing.T) {
	tests := []struct {
		name     string
		skill    string
		keywords []string
		intent   Intent
		want     string
	}{
		{
			name:     "practice with keywords",
			skill:    "React",
			keywords: []string{"startup", "frontend"},
			intent:   IntentPractice,
			want:     "React startup frontend practice exercises examples projects",
		},
		{
			name:   "learn without keywords",
			skill:  "SQL",
			intent: IntentLearn,
			want:   "SQL tutorial guide beginner",
		},
		{
			name:     "interview caps keywords at three",
			skill:    "Go",
			keywords: []string{"fintech", "backend", "payments", "kubernetes"},
			intent:   IntentInterview,
			want:     "Go fintech backend payments interview questions technical preparation",
		},
		{
			name:     "unknown intent adds no suffix",
			skill:    "Rust",
			keywords: []string{"embedded"},
			intent:   Intent("browse"),
			want:     "Rust embedded",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatQuery(tt.skill, tt.keywords, tt.intent)
			if got != tt.want {
				t.Errorf("FormatQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}
