package retrieval

import (
	"sort"
	"time"

	"babysteps/internal/corpus"
	"babysteps/internal/domain"
)

// DefaultLimit is used when a caller passes a non-positive limit.
const DefaultLimit = 3

// Source provides the immutable document set to rank.
type Source interface {
	Documents() []domain.Document
}

// DocumentRetriever ranks corpus documents for a query and falls back to
// age-appropriate development documents when nothing matches.
type DocumentRetriever struct {
	source Source
	scorer domain.Scorer
	now    func() time.Time
}

// Option configures a DocumentRetriever.
type Option func(*DocumentRetriever)

// WithClock overrides the time source used for age derivation.
func WithClock(now func() time.Time) Option {
	return func(r *DocumentRetriever) { r.now = now }
}

// New creates a retriever over the given source.
func New(source Source, scorer domain.Scorer, opts ...Option) *DocumentRetriever {
	r := &DocumentRetriever{source: source, scorer: scorer, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Retrieve returns up to limit documents ranked by relevance score, ties
// broken by corpus order. When no document scores above zero and a child
// with a known birthday is supplied, it falls back to development documents
// matching the child's age. An empty result is a valid outcome the caller
// must handle.
func (r *DocumentRetriever) Retrieve(query string, child *domain.Child, limit int) []domain.Document {
	if limit <= 0 {
		limit = DefaultLimit
	}
	docs := r.source.Documents()

	scored := make([]domain.ScoredDocument, 0, len(docs))
	for _, d := range docs {
		if s := r.scorer.Score(query, d); s > 0 {
			scored = append(scored, domain.ScoredDocument{Document: d, Score: s})
		}
	}
	// Stable sort keeps corpus order on ties, so repeated calls are
	// reproducible.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	if len(scored) == 0 {
		return r.ageFallback(child, docs, limit)
	}
	if len(scored) > limit {
		scored = scored[:limit]
	}
	out := make([]domain.Document, len(scored))
	for i, sd := range scored {
		out[i] = sd.Document
	}
	return out
}

func (r *DocumentRetriever) ageFallback(child *domain.Child, docs []domain.Document, limit int) []domain.Document {
	if !child.AgeKnown() {
		return nil
	}
	age := domain.AgeInMonths(child.Birthday, r.now())
	var out []domain.Document
	for _, d := range docs {
		if d.Category != domain.CategoryDevelopment {
			continue
		}
		if !corpus.MatchesAge(d.AgeRange, age) {
			continue
		}
		out = append(out, d)
		if len(out) == limit {
			break
		}
	}
	return out
}
