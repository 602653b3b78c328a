package chat

import (
	"fmt"

	"babysteps/internal/domain"
)

const genericWelcome = "Hello! I'm your parenting assistant. Ask me anything about child development, sleep, feeding, or safety. I'll keep answers concise and suggest helpful follow-up questions."

// WelcomeMessage builds the greeting shown when a chat opens, personalized
// when a child profile is present.
func WelcomeMessage(child *domain.Child) string {
	if child == nil || child.Name == "" {
		return genericWelcome
	}
	return fmt.Sprintf("Hi! I'm here to help with %s's development. Ask me about milestones, sleep, feeding, or safety. I'll give you focused answers and suggest what to ask next.", child.Name)
}
