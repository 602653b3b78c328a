package domain

// Category classifies a reference document by topic.
type Category string

const (
	CategoryDevelopment Category = "development"
	CategorySleep       Category = "sleep"
	CategoryFeeding     Category = "feeding"
	CategorySafety      Category = "safety"
	CategoryLanguage    Category = "language"
	CategoryHealth      Category = "health"
)

// Document is an immutable reference document available for retrieval.
type Document struct {
	ID       string
	Title    string
	Content  string
	URL      string
	Category Category
	// AgeRange is "<min>-<max> months", "<min>+ months", or empty for all ages.
	AgeRange string
}

// ScoredDocument pairs a document with its relevance score for one query.
type ScoredDocument struct {
	Document Document
	Score    int
}

// SourceRef points a reader back at the document behind an answer.
type SourceRef struct {
	Title   string
	URL     string
	Excerpt string
}

// ComposedResponse is the text produced for a query before it is split
// into answer and follow-up questions.
type ComposedResponse struct {
	RawText string
	Sources []SourceRef
}

// ParsedAnswer is the structured form of a composed response.
type ParsedAnswer struct {
	AnswerBody        string
	FollowUpQuestions []string
}
