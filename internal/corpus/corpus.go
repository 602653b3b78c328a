package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"babysteps/internal/domain"
)

// Corpus is the fixed set of reference documents available for retrieval.
// It is immutable after construction and safe for concurrent reads.
type Corpus struct {
	docs []domain.Document
}

// New validates the document set and returns a corpus preserving its order.
func New(docs []domain.Document) (*Corpus, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("corpus must contain at least one document")
	}
	seen := make(map[string]struct{}, len(docs))
	for _, d := range docs {
		if d.ID == "" {
			return nil, fmt.Errorf("document %q has no id", d.Title)
		}
		if _, dup := seen[d.ID]; dup {
			return nil, fmt.Errorf("duplicate document id %q", d.ID)
		}
		seen[d.ID] = struct{}{}
	}
	owned := make([]domain.Document, len(docs))
	copy(owned, docs)
	return &Corpus{docs: owned}, nil
}

// Documents returns the documents in corpus order. Callers must not mutate
// the returned slice.
func (c *Corpus) Documents() []domain.Document { return c.docs }

// Len returns the number of documents.
func (c *Corpus) Len() int { return len(c.docs) }

// ByCategory returns documents of the given category in corpus order.
func (c *Corpus) ByCategory(cat domain.Category) []domain.Document {
	var out []domain.Document
	for _, d := range c.docs {
		if d.Category == cat {
			out = append(out, d)
		}
	}
	return out
}

type corpusFile struct {
	Documents []struct {
		ID       string `yaml:"id"`
		Title    string `yaml:"title"`
		Content  string `yaml:"content"`
		URL      string `yaml:"url"`
		Category string `yaml:"category"`
		AgeRange string `yaml:"age_range"`
	} `yaml:"documents"`
}

// LoadFile reads a corpus from a YAML file.
func LoadFile(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	var f corpusFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse corpus file: %w", err)
	}
	docs := make([]domain.Document, 0, len(f.Documents))
	for _, d := range f.Documents {
		docs = append(docs, domain.Document{
			ID:       d.ID,
			Title:    d.Title,
			Content:  d.Content,
			URL:      d.URL,
			Category: domain.Category(d.Category),
			AgeRange: d.AgeRange,
		})
	}
	return New(docs)
}
