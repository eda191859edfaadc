package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	scoreLinePattern = regexp.MustCompile(`^\s*(?:\d+\.\s+)?\s*([^:]+?)\s*:\s*(\d+(?:[.,]\d+)?)\s*$`)
	listItemPattern  = regexp.MustCompile(`^\s*(?:[-•*]|\d+\.)\s+(.+?)\s*$`)
)

// ScoreLine is a "<label>: <number>" line. Label is already normalized.
type ScoreLine struct {
	Label string
	Value float64
}

// MatchScoreLine recognizes "<label>: <score>" with either '.' or ',' as the
// decimal separator. Lines whose label normalizes to nothing do not match.
func MatchScoreLine(line string) (ScoreLine, bool) {
	m := scoreLinePattern.FindStringSubmatch(line)
	if m == nil {
		return ScoreLine{}, false
	}

	label := NormalizeLabel(m[1])
	if label == "" {
		return ScoreLine{}, false
	}

	value, err := strconv.ParseFloat(strings.Replace(m[2], ",", ".", 1), 64)
	if err != nil {
		return ScoreLine{}, false
	}

	return ScoreLine{Label: label, Value: value}, true
}

// MatchListItem returns the text of a "-", "•", "*" or "1." list item.
func MatchListItem(line string) (string, bool) {
	m := listItemPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	item := strings.TrimSpace(m[1])
	if item == "" {
		return "", false
	}
	return item, true
}

// MatchHeader reports whether the whole line is a known section header.
// Leading emoji, heading hashes, emphasis markers and a trailing colon are ignored.
func (v *Vocabulary) MatchHeader(line string) (Section, bool) {
	key := headerKey(line)
	if key == "" {
		return NoSection, false
	}
	sec, ok := v.sections[key]
	return sec, ok
}

func headerKey(line string) string {
	s := strings.TrimLeftFunc(line, isHeaderDecoration)
	s = strings.TrimRightFunc(s, func(r rune) bool {
		return r == ':' || r == '*' || r == '_' || unicode.IsSpace(r)
	})
	return strings.ToLower(collapseSpaces(s))
}

func isHeaderDecoration(r rune) bool {
	switch {
	case unicode.IsSpace(r), r == '#', r == '*', r == '_':
		return true
	case unicode.Is(unicode.So, r), unicode.Is(unicode.Sk, r):
		return true
	case unicode.Is(unicode.Mn, r), unicode.Is(unicode.Cf, r):
		// variation selectors and zero-width joiners inside emoji sequences
		return true
	}
	return false
}
