// Package keywords pulls salient terms out of free-text job context. The
// extraction is an approximate linguistic heuristic: callers rank with the
// keywords, they never gate on them.
package keywords

import (
	"strings"

	prose "github.com/jdkato/prose/v2"
)

const defaultMaxKeywords = 5

// Generic job-posting vocabulary that says nothing about the role itself.
var stopwords = map[string]bool{
	"position": true,
	"job":      true,
	"work":     true,
	"role":     true,
	"time":     true,
	"year":     true,
	"day":      true,
}

type Extractor struct {
	maxKeywords int
}

func NewExtractor(maxKeywords int) *Extractor {
	if maxKeywords <= 0 {
		maxKeywords = defaultMaxKeywords
	}
	return &Extractor{maxKeywords: maxKeywords}
}

// Extract returns up to maxKeywords lowercase keywords in order of first
// appearance: named entities first, then remaining nouns. Terms of three
// characters or fewer and generic job vocabulary are dropped. If the NLP
// pipeline fails, a plain token heuristic stands in.
func (e *Extractor) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return e.fallback(text)
	}

	var keywords []string
	seen := map[string]bool{}
	add := func(term string) {
		term = strings.ToLower(strings.TrimSpace(term))
		if len(term) <= 3 || stopwords[term] || seen[term] {
			return
		}
		seen[term] = true
		keywords = append(keywords, term)
	}

	// Entities (companies, products) carry the most signal.
	for _, ent := range doc.Entities() {
		add(ent.Text)
	}
	for _, tok := range doc.Tokens() {
		if strings.HasPrefix(tok.Tag, "NN") {
			add(tok.Text)
		}
	}

	if len(keywords) > e.maxKeywords {
		keywords = keywords[:e.maxKeywords]
	}
	return keywords
}

// fallback keeps every sufficiently long token when tagging is unavailable.
func (e *Extractor) fallback(text string) []string {
	var keywords []string
	seen := map[string]bool{}
	for _, field := range strings.Fields(text) {
		term := strings.ToLower(strings.Trim(field, ".,;:!?()[]\"'"))
		if len(term) <= 3 || stopwords[term] || seen[term] {
			continue
		}
		seen[term] = true
		keywords = append(keywords, term)
		if len(keywords) == e.maxKeywords {
			break
		}
	}
	return keywords
}
