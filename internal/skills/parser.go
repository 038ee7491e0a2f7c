// Package skills turns raw model output into an ordered skill list and
// validates the user's selection against it.
package skills

import (
	"regexp"
	"strings"
)

const (
	// MaxSkills is the number of skills the extraction prompt asks for and
	// the parser's hard cap.
	MaxSkills = 10
	// MinSelected and MaxSelected bound the user's skill selection.
	MinSelected = 3
	MaxSelected = 6
)

// Grammar: one skill per line, "N. text". Lines that do not match are
// ignored. Parsing stops after MaxSkills items. If no line matches, the
// result is an empty list; the caller decides how to surface that.
var numberedItem = regexp.MustCompile(`^\d+\.\s*(.+)$`)

// ParseNumberedList extracts skills from a numbered-list response.
func ParseNumberedList(raw string) []string {
	out := make([]string, 0, MaxSkills)
	for _, line := range strings.Split(raw, "\n") {
		if len(out) >= MaxSkills {
			break
		}
		match := numberedItem.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}
		skill := strings.TrimSpace(match[1])
		if skill != "" {
			out = append(out, skill)
		}
	}
	return out
}
