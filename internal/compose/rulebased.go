package compose

import (
	"context"
	"strings"

	"babysteps/internal/domain"
)

// NoMatchMessage is returned by the rule-based strategy when retrieval
// produced nothing to answer from.
const NoMatchMessage = "I'm sorry, I couldn't find anything in my resources that matches that question. Try asking about milestones, sleep, feeding, safety or health."

// excerptLength is the number of characters of document content quoted in a
// source reference.
const excerptLength = 150

// topic keyword groups, checked in priority order; first match wins.
var topics = []struct {
	keywords []string
	template string
}{
	{[]string{"milestone", "development"}, milestoneTemplate},
	{[]string{"sleep", "bedtime"}, sleepTemplate},
	{[]string{"feed", "food", "eating"}, feedingTemplate},
	{[]string{"safe", "safety"}, safetyTemplate},
	{[]string{"doctor", "health", "sick"}, healthTemplate},
}

const milestoneTemplate = `Answer: Every child develops at their own pace, and {name} is busy building new skills right now. Keep offering plenty of floor play and talking through your day together, and compare against age ranges rather than exact dates.

Follow-up questions:
` + "•" + ` What milestones should I watch for next?
` + "•" + ` How much tummy time is enough?
` + "•" + ` When should I be concerned about a delay?`

const sleepTemplate = `Answer: A consistent, calming bedtime routine helps {name} learn to settle. Keep the room dark and quiet, watch for tired signs, and try putting {name} down drowsy but awake.

Follow-up questions:
` + "•" + ` How many naps are typical at this age?
` + "•" + ` What can I do about night waking?
` + "•" + ` When do babies start sleeping through the night?`

const feedingTemplate = `Answer: Feeding on demand and responding to hunger cues works better than a strict schedule for {name}. Offer variety, expect some refusals, and keep mealtimes relaxed.

Follow-up questions:
` + "•" + ` How often should feeds happen right now?
` + "•" + ` What are good first foods to try?
` + "•" + ` How do I know {name} is getting enough?`

const safetyTemplate = `Answer: The safest setup for {name} changes as new skills arrive, so re-check your home each time mobility increases. Anchor furniture, keep small objects out of reach and never leave {name} alone in the bath.

Follow-up questions:
` + "•" + ` What should I baby-proof first?
` + "•" + ` Which items are choking hazards?
` + "•" + ` How do I set up a safe sleep space?`

const healthTemplate = `Answer: Trust your instincts about {name}'s health and keep routine check-ups and immunisations up to date. See a doctor promptly for fever in young babies, poor feeding or unusual drowsiness.

Follow-up questions:
` + "•" + ` What symptoms need urgent attention?
` + "•" + ` When are the next scheduled immunisations?
` + "•" + ` How do I handle teething discomfort?`

const genericTemplate = `Answer: That's a great question about {name}. The resources below cover what's typical at this stage and practical steps you can take today.

Follow-up questions:
` + "•" + ` What should I expect over the next few months?
` + "•" + ` Are there warning signs I should watch for?
` + "•" + ` Where can I read more about this?`

// RuleBasedComposer produces answers from fixed topic templates without any
// external dependency. It is the fully local strategy.
type RuleBasedComposer struct{}

var _ domain.Composer = (*RuleBasedComposer)(nil)

// NewRuleBasedComposer creates the rule-based response strategy.
func NewRuleBasedComposer() *RuleBasedComposer { return &RuleBasedComposer{} }

// Compose classifies the query into a topic and fills the matching template
// with the child's name. With no documents it returns the fixed apology and
// no sources.
func (c *RuleBasedComposer) Compose(_ context.Context, query string, child *domain.Child, docs []domain.Document) domain.ComposedResponse {
	if len(docs) == 0 {
		return domain.ComposedResponse{RawText: NoMatchMessage}
	}

	template := genericTemplate
	q := strings.ToLower(query)
	for _, t := range topics {
		if containsAny(q, t.keywords) {
			template = t.template
			break
		}
	}
	raw := strings.ReplaceAll(template, "{name}", domain.DisplayName(child))
	return domain.ComposedResponse{RawText: raw, Sources: excerptSources(docs)}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// excerptSources builds source references in document order, quoting the
// start of each document's content.
func excerptSources(docs []domain.Document) []domain.SourceRef {
	out := make([]domain.SourceRef, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.SourceRef{Title: d.Title, URL: d.URL, Excerpt: excerpt(d.Content, excerptLength)})
	}
	return out
}

func excerpt(content string, n int) string {
	runes := []rune(content)
	if len(runes) <= n {
		return content
	}
	return string(runes[:n]) + "..."
}
