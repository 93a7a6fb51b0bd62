package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The tagger's exact output is model-dependent, so these tests assert
// presence, absence, and shape rather than full list equality.

func TestExtractDropsStopwordsAndShortTerms(t *testing.T) {
	e := NewExtractor(5)
	got := e.Extract("This role is a full time job position working with Go at a fintech startup")

	assert.NotContains(t, got, "role")
	assert.NotContains(t, got, "job")
	assert.NotContains(t, got, "position")
	assert.NotContains(t, got, "time")
	assert.NotContains(t, got, "go", "terms of three characters or fewer are dropped")
	assert.LessOrEqual(t, len(got), 5)
}

func TestExtractFindsSalientNouns(t *testing.T) {
	e := NewExtractor(5)
	got := e.Extract("Backend engineer building payment infrastructure for a logistics startup")

	assert.Contains(t, got, "infrastructure")
	assert.Contains(t, got, "startup")
	for _, kw := range got {
		assert.Equal(t, kw, lower(kw), "keywords are lowercase")
	}
}

func TestExtractTruncatesToMax(t *testing.T) {
	e := NewExtractor(2)
	got := e.Extract("Kubernetes operators, Terraform modules, Kafka pipelines, Postgres clusters, Redis caches")
	assert.LessOrEqual(t, len(got), 2)
}

func TestExtractEmptyInput(t *testing.T) {
	e := NewExtractor(5)
	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("   \n\t"))
}

func TestExtractDeduplicates(t *testing.T) {
	e := NewExtractor(10)
	got := e.Extract("Databases, databases and more databases")

	count := 0
	for _, kw := range got {
		if kw == "databases" {
			count++
		}
	}
	assert.LessOrEqual(t, count, 1)
}

func TestFallbackTokenizer(t *testing.T) {
	e := NewExtractor(3)
	got := e.fallback("Senior engineer: distributed systems, Kafka, observability!")

	assert.Equal(t, []string{"senior", "engineer", "distributed"}, got)
}

func lower(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'A' && r <= 'Z' {
			out[i] = r + 32
		}
	}
	return string(out)
}
