package corpus

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	boundedRangeRe = regexp.MustCompile(`^(\d+)\s*-\s*(\d+)\s*months?$`)
	openRangeRe    = regexp.MustCompile(`^(\d+)\+\s*months?$`)
)

// MatchesAge reports whether a textual age range covers an age in months.
// An empty range means the document applies to all ages. Unparseable ranges
// never match.
func MatchesAge(ageRange string, months int) bool {
	ageRange = strings.TrimSpace(ageRange)
	if ageRange == "" {
		return true
	}
	if m := boundedRangeRe.FindStringSubmatch(ageRange); m != nil {
		min, _ := strconv.Atoi(m[1])
		max, _ := strconv.Atoi(m[2])
		return months >= min && months <= max
	}
	if m := openRangeRe.FindStringSubmatch(ageRange); m != nil {
		min, _ := strconv.Atoi(m[1])
		return months >= min
	}
	return false
}
