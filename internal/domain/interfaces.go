package domain

import "context"

// Scorer rates a query against a single document. Higher is more relevant;
// zero means the document is not a candidate.
type Scorer interface {
	Score(query string, doc Document) int
}

// Retriever returns the ranked top documents for a query. The result is a
// pure function of the query, child context and corpus.
type Retriever interface {
	Retrieve(query string, child *Child, limit int) []Document
}

// Generator is the external text-generation capability. It may fail; callers
// are expected to degrade gracefully rather than surface the error.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Composer builds a structured answer from retrieved documents. Compose is
// total: it returns a well-formed response under all inputs, including
// generator failure.
type Composer interface {
	Compose(ctx context.Context, query string, child *Child, docs []Document) ComposedResponse
}

// ChildStore provides read/write access to child profiles.
type ChildStore interface {
	Create(ctx context.Context, child *Child) error
	Get(ctx context.Context, id string) (*Child, error)
	List(ctx context.Context) ([]Child, error)
	Update(ctx context.Context, child *Child) error
	Delete(ctx context.Context, id string) error
}

// MessageStore is the append-only chat history.
type MessageStore interface {
	Append(ctx context.Context, msg *ChatMessage) error
	ListByChild(ctx context.Context, childID string) ([]ChatMessage, error)
	ListByKind(ctx context.Context, childID string, kind MessageKind) ([]ChatMessage, error)
}
