// Package milestones holds developmental milestone reference data and the
// cadence rules for proactive check-in messages.
package milestones

import (
	"fmt"

	"babysteps/internal/domain"
)

// Category groups milestones by developmental area.
type Category string

const (
	CategoryPhysical  Category = "physical"
	CategoryCognitive Category = "cognitive"
	CategoryLanguage  Category = "language"
	CategorySocial    Category = "social"
	CategoryEmotional Category = "emotional"
)

// CategoryName returns a display name for a category.
func CategoryName(c Category) string {
	switch c {
	case CategoryPhysical:
		return "Physical Development"
	case CategoryCognitive:
		return "Cognitive Development"
	case CategoryLanguage:
		return "Language Development"
	case CategorySocial:
		return "Social Development"
	case CategoryEmotional:
		return "Emotional Development"
	default:
		return string(c)
	}
}

// Milestone is a single developmental milestone.
type Milestone struct {
	ID               string
	Title            string
	Category         Category
	TypicalAgeMonths int
}

// Bracket is an age range in months, upper bound exclusive. An End of 0
// means open-ended.
type Bracket struct {
	Start int
	End   int
}

// Contains reports whether an age in months falls inside the bracket.
func (b Bracket) Contains(months int) bool {
	if months < b.Start {
		return false
	}
	return b.End == 0 || months < b.End
}

var brackets = []Bracket{
	{Start: 0, End: 3},
	{Start: 3, End: 6},
	{Start: 6, End: 9},
	{Start: 9, End: 12},
	{Start: 12, End: 18},
	{Start: 18, End: 24},
	{Start: 24, End: 0},
}

// BracketFor returns the age bracket covering the given age in months.
func BracketFor(months int) Bracket {
	for _, b := range brackets {
		if b.Contains(months) {
			return b
		}
	}
	return brackets[len(brackets)-1]
}

// ForAge returns the milestones typically reached in the child's current
// age bracket, in reference order.
func ForAge(months int) []Milestone {
	b := BracketFor(months)
	var out []Milestone
	for _, m := range reference {
		if b.Contains(m.TypicalAgeMonths) {
			out = append(out, m)
		}
	}
	return out
}

// ByCategory returns the subset of milestones in the given category,
// preserving order.
func ByCategory(ms []Milestone, c Category) []Milestone {
	var out []Milestone
	for _, m := range ms {
		if m.Category == c {
			out = append(out, m)
		}
	}
	return out
}

// Progress summarizes how many milestones in a set are achieved.
type Progress struct {
	Achieved int
	Total    int
}

// Percent returns the achieved share rounded down to a whole percentage.
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return p.Achieved * 100 / p.Total
}

// ComputeProgress counts how many of the given milestones appear in the
// achieved ID set.
func ComputeProgress(ms []Milestone, achieved map[string]bool) Progress {
	p := Progress{Total: len(ms)}
	for _, m := range ms {
		if achieved[m.ID] {
			p.Achieved++
		}
	}
	return p
}

// AchievedSet converts a child's achieved milestone IDs into a lookup set.
func AchievedSet(child *domain.Child) map[string]bool {
	if child == nil {
		return nil
	}
	set := make(map[string]bool, len(child.AchievedMilestones))
	for _, id := range child.AchievedMilestones {
		set[id] = true
	}
	return set
}

// MarkAchieved records a reference milestone as reached on the child profile.
// It reports whether the profile changed; unknown IDs are rejected.
func MarkAchieved(child *domain.Child, id string) (bool, error) {
	known := false
	for _, m := range reference {
		if m.ID == id {
			known = true
			break
		}
	}
	if !known {
		return false, fmt.Errorf("unknown milestone %q", id)
	}
	for _, existing := range child.AchievedMilestones {
		if existing == id {
			return false, nil
		}
	}
	child.AchievedMilestones = append(child.AchievedMilestones, id)
	return true, nil
}

var reference = []Milestone{
	{ID: "phys-lift-head", Title: "Lifts head during tummy time", Category: CategoryPhysical, TypicalAgeMonths: 2},
	{ID: "soc-social-smile", Title: "Smiles in response to people", Category: CategorySocial, TypicalAgeMonths: 2},
	{ID: "lang-coos", Title: "Makes cooing sounds", Category: CategoryLanguage, TypicalAgeMonths: 2},
	{ID: "cog-tracks-objects", Title: "Follows moving objects with eyes", Category: CategoryCognitive, TypicalAgeMonths: 2},

	{ID: "phys-rolls-over", Title: "Rolls from tummy to back", Category: CategoryPhysical, TypicalAgeMonths: 4},
	{ID: "phys-reaches", Title: "Reaches for and grasps toys", Category: CategoryPhysical, TypicalAgeMonths: 4},
	{ID: "lang-babbles", Title: "Babbles with consonant sounds", Category: CategoryLanguage, TypicalAgeMonths: 5},
	{ID: "emo-laughs", Title: "Laughs out loud", Category: CategoryEmotional, TypicalAgeMonths: 4},

	{ID: "phys-sits", Title: "Sits without support", Category: CategoryPhysical, TypicalAgeMonths: 7},
	{ID: "cog-object-permanence", Title: "Looks for hidden objects", Category: CategoryCognitive, TypicalAgeMonths: 8},
	{ID: "lang-responds-name", Title: "Responds to own name", Category: CategoryLanguage, TypicalAgeMonths: 7},
	{ID: "emo-stranger-wary", Title: "Shows wariness of strangers", Category: CategoryEmotional, TypicalAgeMonths: 8},

	{ID: "phys-crawls", Title: "Crawls on hands and knees", Category: CategoryPhysical, TypicalAgeMonths: 9},
	{ID: "phys-pulls-to-stand", Title: "Pulls up to standing", Category: CategoryPhysical, TypicalAgeMonths: 10},
	{ID: "lang-first-words", Title: "Says mama or dada with meaning", Category: CategoryLanguage, TypicalAgeMonths: 11},
	{ID: "soc-waves-bye", Title: "Waves bye-bye", Category: CategorySocial, TypicalAgeMonths: 10},
	{ID: "cog-pincer-grasp", Title: "Picks up small objects with thumb and finger", Category: CategoryCognitive, TypicalAgeMonths: 10},

	{ID: "phys-walks", Title: "Walks without help", Category: CategoryPhysical, TypicalAgeMonths: 13},
	{ID: "lang-several-words", Title: "Uses several single words", Category: CategoryLanguage, TypicalAgeMonths: 15},
	{ID: "cog-points", Title: "Points to ask for things or show interest", Category: CategoryCognitive, TypicalAgeMonths: 13},
	{ID: "soc-imitates", Title: "Imitates household activities", Category: CategorySocial, TypicalAgeMonths: 16},

	{ID: "phys-runs", Title: "Runs steadily", Category: CategoryPhysical, TypicalAgeMonths: 20},
	{ID: "lang-two-word", Title: "Combines two words into phrases", Category: CategoryLanguage, TypicalAgeMonths: 21},
	{ID: "emo-parallel-play", Title: "Plays alongside other children", Category: CategoryEmotional, TypicalAgeMonths: 22},

	{ID: "phys-climbs-stairs", Title: "Walks up stairs holding a rail", Category: CategoryPhysical, TypicalAgeMonths: 25},
	{ID: "lang-short-sentences", Title: "Speaks in short sentences", Category: CategoryLanguage, TypicalAgeMonths: 28},
	{ID: "cog-pretend-play", Title: "Engages in pretend play", Category: CategoryCognitive, TypicalAgeMonths: 26},
}

// Reference returns the full milestone reference list.
func Reference() []Milestone {
	out := make([]Milestone, len(reference))
	copy(out, reference)
	return out
}
