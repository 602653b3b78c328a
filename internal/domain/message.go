package domain

import "time"

// SenderRole identifies who produced a chat message.
type SenderRole string

const (
	SenderUser      SenderRole = "user"
	SenderAssistant SenderRole = "assistant"
)

// MessageKind distinguishes ordinary chat turns from proactive messages.
type MessageKind string

const (
	KindChat            MessageKind = "chat"
	KindWelcome         MessageKind = "welcome"
	KindMilestoneUpdate MessageKind = "milestone_update"
	KindWeeklyCheck     MessageKind = "weekly_check"
	KindCelebration     MessageKind = "celebration"
)

// ChatMessage is one entry in a child's append-only chat history.
type ChatMessage struct {
	ID        string
	ChildID   string
	Sender    SenderRole
	Kind      MessageKind
	Content   string
	Sources   []SourceRef
	Timestamp time.Time
}
