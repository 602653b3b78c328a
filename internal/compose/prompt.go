package compose

import (
	"fmt"
	"strings"
	"time"

	"babysteps/internal/domain"
)

// BuildPrompt assembles the generation prompt: the question, the child
// context and a formatted block of the retrieved documents' metadata,
// followed by the response convention the parser expects.
func BuildPrompt(query string, child *domain.Child, docs []domain.Document, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Based on the following authoritative parenting resources, please answer this question: %q\n\n", query)
	fmt.Fprintf(&b, "Context about the child: %s\n\n", childDescription(child, now))

	b.WriteString("Relevant resources:\n")
	for i, d := range docs {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Source: %s\nURL: %s\nAge Range: %s\nCategory: %s\n", d.Title, d.URL, ageRangeOrAll(d.AgeRange), d.Category)
	}

	b.WriteString("\nIMPORTANT: Provide a CONCISE, focused answer (2-3 sentences maximum). ")
	b.WriteString("Include 2-3 relevant follow-up questions that the parent might want to ask next. ")
	b.WriteString("Format your response as:\n\n")
	b.WriteString("Answer: [brief, focused response]\n\n")
	b.WriteString(followUpMarker + "\n")
	for i := 1; i <= 3; i++ {
		fmt.Fprintf(&b, "%s [question %d]\n", DefaultBullet, i)
	}
	b.WriteString("\nKeep it short and actionable. Avoid overwhelming with too much information.\n")
	return b.String()
}

func childDescription(child *domain.Child, now time.Time) string {
	if child == nil || child.Name == "" {
		return "No specific child information provided"
	}
	if !child.AgeKnown() {
		return fmt.Sprintf("The child's name is %s (age unknown)", child.Name)
	}
	return fmt.Sprintf("%s is %d months old", child.Name, domain.AgeInMonths(child.Birthday, now))
}

func ageRangeOrAll(ageRange string) string {
	if ageRange == "" {
		return "all ages"
	}
	return ageRange
}
