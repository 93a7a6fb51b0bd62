package skills

import "context"

// Extractor derives a list of skills from a job description, for callers
// who paste a posting instead of naming skills themselves.
type Extractor interface {
	ExtractSkills(ctx context.Context, jobDescription string) ([]string, error)
}
