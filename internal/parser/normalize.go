package parser

import (
	"regexp"
	"strings"
)

var (
	headingPrefix  = regexp.MustCompile(`^#{1,6}\s*`)
	numberedPrefix = regexp.MustCompile(`^\d+\s*[.)\-]\s+`)
	bulletPrefix   = regexp.MustCompile(`^[-•*]\s+`)
)

// NormalizeLabel strips Markdown noise (heading marks, list numbering, bullets)
// from a label and collapses whitespace. The prefix rules are repeated until
// the label stops changing, so the result is a fixed point.
func NormalizeLabel(label string) string {
	s := collapseSpaces(label)
	for {
		next := s
		next = headingPrefix.ReplaceAllString(next, "")
		next = numberedPrefix.ReplaceAllString(next, "")
		next = bulletPrefix.ReplaceAllString(next, "")
		next = collapseSpaces(next)
		if next == s {
			return s
		}
		s = next
	}
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
