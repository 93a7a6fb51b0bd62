package skills

import (
	"context"
	"errors"
	"testing"

	"Karyatra/be/internal/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockProvider struct {
	reply string
	err   error
}

func (m *mockProvider) Complete(_ context.Context, _ llm.CompletionRequest) (llm.Message, error) {
	return llm.Message{Role: "assistant", Content: m.reply}, m.err
}

func TestExtractSkillsCommaSeparated(t *testing.T) {
	svc := NewServiceImpl(&mockProvider{reply: "Python, SQL, Docker"}, "m", zap.NewNop())
	got, err := svc.ExtractSkills(context.Background(), "data engineer posting")
	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "SQL", "Docker"}, got)
}

func TestExtractSkillsToleratesBullets(t *testing.T) {
	svc := NewServiceImpl(&mockProvider{reply: "- React\n- TypeScript\n- CSS."}, "m", zap.NewNop())
	got, err := svc.ExtractSkills(context.Background(), "frontend posting")
	require.NoError(t, err)
	assert.Equal(t, []string{"React", "TypeScript", "CSS"}, got)
}

func TestExtractSkillsDeduplicates(t *testing.T) {
	svc := NewServiceImpl(&mockProvider{reply: "Go, go, GO, Kubernetes"}, "m", zap.NewNop())
	got, err := svc.ExtractSkills(context.Background(), "posting")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Kubernetes"}, got)
}

func TestExtractSkillsProviderError(t *testing.T) {
	svc := NewServiceImpl(&mockProvider{err: errors.New("rate limited")}, "m", zap.NewNop())
	_, err := svc.ExtractSkills(context.Background(), "posting")
	assert.Error(t, err)
}

func TestExtractSkillsEmptyReply(t *testing.T) {
	svc := NewServiceImpl(&mockProvider{reply: "  \n "}, "m", zap.NewNop())
	_, err := svc.ExtractSkills(context.Background(), "posting")
	assert.Error(t, err)
}

func TestParseSkillsCapsAtMax(t *testing.T) {
	got := parseSkills("a1b, a2b, a3b, a4b, a5b, a6b, a7b, a8b, a9b, a10, a11, a12")
	assert.Len(t, got, maxSkills)
}
