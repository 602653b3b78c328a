package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"babysteps/internal/domain"
)

var sleepDoc = domain.Document{
	ID:      "sleep-1",
	Title:   "Safe Sleep for Babies",
	Content: "Always place your baby on their back to sleep in their own cot.",
}

func TestKeywordScorer_CountsDistinctTokens(t *testing.T) {
	s := NewKeywordScorer()

	// "baby" and "sleep" both occur; "zebra" does not.
	assert.Equal(t, 2, s.Score("baby sleep zebra", sleepDoc))
}

func TestKeywordScorer_CaseInsensitive(t *testing.T) {
	s := NewKeywordScorer()
	assert.Equal(t, 2, s.Score("BABY Sleep", sleepDoc))
}

func TestKeywordScorer_DuplicateTokensDoNotDoubleCount(t *testing.T) {
	s := NewKeywordScorer()
	assert.Equal(t, 1, s.Score("sleep sleep sleep", sleepDoc))
}

func TestKeywordScorer_TokenInTitleAndContentCountsOnce(t *testing.T) {
	s := NewKeywordScorer()
	// "sleep" appears in both title and content; containment, not count.
	assert.Equal(t, 1, s.Score("sleep", sleepDoc))
}

func TestKeywordScorer_SubstringContainment(t *testing.T) {
	s := NewKeywordScorer()
	// "safe" is a substring of "Safe" in the title.
	assert.Equal(t, 1, s.Score("safe", sleepDoc))
}

func TestKeywordScorer_EmptyQuery(t *testing.T) {
	s := NewKeywordScorer()
	assert.Equal(t, 0, s.Score("", sleepDoc))
	assert.Equal(t, 0, s.Score("   ", sleepDoc))
}

func TestKeywordScorer_NoMatches(t *testing.T) {
	s := NewKeywordScorer()
	assert.Equal(t, 0, s.Score("xyzzy unrelated nonsense", sleepDoc))
}
