package retrieval

import (
	"strings"

	"babysteps/internal/domain"
)

// KeywordScorer counts distinct query tokens found as substrings in a
// document's title and content. It is a deliberately cheap heuristic, not
// semantic search: no stemming, no stop words, lower-casing only.
type KeywordScorer struct{}

// NewKeywordScorer creates the default relevance scorer.
func NewKeywordScorer() *KeywordScorer { return &KeywordScorer{} }

// Score returns the number of distinct query tokens contained in the
// document text. Each token contributes at most one point regardless of how
// often it occurs.
func (s *KeywordScorer) Score(query string, doc domain.Document) int {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return 0
	}
	haystack := strings.ToLower(doc.Title + " " + doc.Content)
	seen := make(map[string]struct{}, len(tokens))
	score := 0
	for _, tok := range tokens {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		if strings.Contains(haystack, tok) {
			score++
		}
	}
	return score
}
