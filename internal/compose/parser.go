package compose

import (
	"strings"

	"babysteps/internal/domain"
)

const (
	// DefaultBullet is the delimiter between suggested follow-up questions.
	// The delimiter is configurable because generated text has shown up with
	// inconsistent encodings in the wild.
	DefaultBullet = "•"

	followUpMarker = "Follow-up questions:"
	answerLabel    = "Answer:"
)

// Parser extracts the answer body and follow-up questions from a composed
// response. Parse is total: malformed input yields the whole text as the
// answer with no follow-ups.
type Parser struct {
	bullet string
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithBullet overrides the follow-up bullet delimiter.
func WithBullet(bullet string) ParserOption {
	return func(p *Parser) {
		if bullet != "" {
			p.bullet = bullet
		}
	}
}

// NewParser creates a parser with the default bullet delimiter.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{bullet: DefaultBullet}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse splits raw text on the first follow-up marker. The part before it,
// stripped of a leading "Answer:" label, becomes the answer body; the part
// after is split on the bullet delimiter into trimmed, non-empty questions.
func (p *Parser) Parse(raw string) domain.ParsedAnswer {
	head, tail, found := strings.Cut(raw, followUpMarker)
	if !found {
		return domain.ParsedAnswer{AnswerBody: strings.TrimSpace(raw)}
	}

	body := strings.TrimSpace(head)
	body = strings.TrimSpace(strings.TrimPrefix(body, answerLabel))

	var questions []string
	for _, frag := range strings.Split(tail, p.bullet) {
		if q := strings.TrimSpace(frag); q != "" {
			questions = append(questions, q)
		}
	}
	return domain.ParsedAnswer{AnswerBody: body, FollowUpQuestions: questions}
}
