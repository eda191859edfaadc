package parser

import (
	"fmt"
	"strings"
)

type Section int

const (
	NoSection Section = iota
	InPositives
	InProblems
	InPriorities
	InOverallScoreSection
)

func (s Section) String() string {
	switch s {
	case NoSection:
		return "none"
	case InPositives:
		return "positives"
	case InProblems:
		return "problems"
	case InPriorities:
		return "priorities"
	case InOverallScoreSection:
		return "overall"
	default:
		return "unknown"
	}
}

// ParseSection maps a section name as written in configuration files to a Section.
func ParseSection(name string) (Section, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return NoSection, nil
	case "positives":
		return InPositives, nil
	case "problems":
		return InProblems, nil
	case "priorities":
		return InPriorities, nil
	case "overall":
		return InOverallScoreSection, nil
	default:
		return NoSection, fmt.Errorf("unknown section %q", name)
	}
}

func (s Section) qualitative() bool {
	return s == InPositives || s == InProblems || s == InPriorities
}

// sectionCursor walks a report line by line and collects list items under the active section.
type sectionCursor struct {
	vocab   *Vocabulary
	current Section
}

func newSectionCursor(vocab *Vocabulary) *sectionCursor {
	return &sectionCursor{vocab: vocab, current: NoSection}
}

func (c *sectionCursor) feed(line string, out *ParsedReport) {
	// Headers always win, including the line that closes the previous section.
	if sec, ok := c.vocab.MatchHeader(line); ok {
		c.current = sec
		return
	}

	switch {
	case c.current.qualitative():
		if item, ok := MatchListItem(line); ok {
			c.appendItem(item, out)
			return
		}
		if _, ok := MatchScoreLine(line); ok {
			c.current = NoSection
		}
	case c.current == InOverallScoreSection:
		if _, ok := MatchScoreLine(line); ok {
			c.current = NoSection
		}
	}
}

func (c *sectionCursor) appendItem(item string, out *ParsedReport) {
	switch c.current {
	case InPositives:
		out.Positives = append(out.Positives, item)
	case InProblems:
		out.Problems = append(out.Problems, item)
	case InPriorities:
		out.Priorities = append(out.Priorities, item)
	}
}
