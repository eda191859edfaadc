package aggregate

import (
	"regexp"
	"sort"
	"strings"
)

var itemKeyDisallowed = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_ ]`)

// ItemKey is the grouping key of a qualitative item: whitespace collapsed,
// lower-cased, everything but letters, digits and underscores removed.
func ItemKey(text string) string {
	t := strings.ToLower(collapseSpaces(text))
	t = itemKeyDisallowed.ReplaceAllString(t, "")
	return collapseSpaces(t)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// itemCounter counts items by key and remembers the first spelling seen.
type itemCounter struct {
	index map[string]int
	items []CommonItem
}

func newItemCounter() *itemCounter {
	return &itemCounter{index: make(map[string]int)}
}

func (c *itemCounter) add(text string) {
	key := ItemKey(text)
	if i, ok := c.index[key]; ok {
		c.items[i].Count++
		return
	}
	c.index[key] = len(c.items)
	c.items = append(c.items, CommonItem{Text: text, Count: 1})
}

// ranked sorts by count descending; ties keep first-seen order.
func (c *itemCounter) ranked(limit int) []CommonItem {
	out := make([]CommonItem, len(c.items))
	copy(out, c.items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return truncate(out, limit)
}

// firstSeen returns the distinct items in insertion order.
func (c *itemCounter) firstSeen(limit int) []string {
	out := make([]string, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, it.Text)
	}
	return truncate(out, limit)
}

func truncate[T any](s []T, limit int) []T {
	if limit >= 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
