package domain

import "time"

// Child is a tracked child profile.
type Child struct {
	ID       string
	Name     string
	Birthday time.Time // zero means unknown
	Gender   string
	PhotoURL string
	// LastMilestoneCheck is the date the last proactive milestone update was sent.
	LastMilestoneCheck time.Time
	// AchievedMilestones holds the IDs of reference milestones marked as reached.
	AchievedMilestones []string
	CreatedAt          time.Time
}

// AgeKnown reports whether the child's birthday was supplied.
func (c *Child) AgeKnown() bool {
	return c != nil && !c.Birthday.IsZero()
}

// AgeInMonths returns the whole-month difference between birthday and now,
// clamped to zero.
func AgeInMonths(birthday, now time.Time) int {
	months := (now.Year()*12 + int(now.Month())) - (birthday.Year()*12 + int(birthday.Month()))
	if months < 0 {
		months = 0
	}
	return months
}

// DisplayName returns the child's name, or a generic reference when absent.
func DisplayName(c *Child) string {
	if c == nil || c.Name == "" {
		return "your child"
	}
	return c.Name
}
