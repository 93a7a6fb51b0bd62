package skills

import (
	"context"
	"errors"
	"strings"

	"Karyatra/be/internal/llm"

	"go.uber.org/zap"
)

const extractPrompt = `List the distinct technical skills a candidate needs for the job description below.
Reply with a single comma-separated line of skill names, nothing else.
Example: Python, SQL, Docker`

const maxSkills = 10

type ServiceImpl struct {
	provider llm.AIProvider
	model    string
	log      *zap.Logger
}

func NewServiceImpl(provider llm.AIProvider, model string, log *zap.Logger) *ServiceImpl {
	return &ServiceImpl{provider: provider, model: model, log: log}
}

func (s *ServiceImpl) ExtractSkills(ctx context.Context, jobDescription string) ([]string, error) {
	res, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Model: s.model,
		Messages: []llm.Message{
			{Role: "system", Content: extractPrompt},
			{Role: "user", Content: jobDescription},
		},
	})
	if err != nil {
		s.log.Warn("skill extraction failed", zap.Error(err))
		return nil, err
	}

	skills := parseSkills(res.Content)
	if len(skills) == 0 {
		return nil, errors.New("no skills found in job description")
	}
	return skills, nil
}

// parseSkills splits a model reply into skill names. Models drift from the
// requested format, so commas, newlines, and bullet prefixes are all
// tolerated.
func parseSkills(content string) []string {
	var skills []string
	seen := map[string]bool{}

	for _, line := range strings.Split(content, "\n") {
		for _, part := range strings.Split(line, ",") {
			skill := strings.TrimSpace(part)
			skill = strings.TrimLeft(skill, "-*• \t")
			skill = strings.TrimRight(skill, ".")
			if skill == "" || seen[strings.ToLower(skill)] {
				continue
			}
			seen[strings.ToLower(skill)] = true
			skills = append(skills, skill)
			if len(skills) == maxSkills {
				return skills
			}
		}
	}
	return skills
}
