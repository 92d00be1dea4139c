package summary

import (
	"fmt"
	"strings"

	"github.com/jward/treefold/internal/doctree"
	"github.com/jward/treefold/internal/pathaddr"
)

// Ellipsis marks elided content in summaries and truncated strings.
const Ellipsis = "…"

// objectPlaceholder is the fixed rendering for object-valued pins.
const objectPlaceholder = "{..}"

// formatValue renders a resolved pin value for display. Strings keep their
// quotes and are truncated at maxString characters; arrays render as their
// item count; objects as a fixed placeholder; scalars as their literal
// text.
func formatValue(n doctree.Node, maxString int) string {
	switch n.Kind() {
	case doctree.KindString:
		inner := n.ScalarText()
		if runes := []rune(inner); len(runes) > maxString {
			inner = string(runes[:maxString]) + Ellipsis
		}
		return `"` + inner + `"`
	case doctree.KindArray:
		return fmt.Sprintf("[%d]", CountItems(n))
	case doctree.KindObject:
		return objectPlaceholder
	default:
		return n.Text()
	}
}

// formatPath renders the remaining segments of a qualifying pin. A single
// segment shows unabbreviated. Longer paths join with "."; when the joined
// form is strictly longer than threshold, every segment except the last
// collapses to its first character.
func formatPath(remaining pathaddr.Path, threshold int) string {
	if len(remaining) == 1 {
		return remaining[0].Key
	}
	keys := make([]string, len(remaining))
	for i, seg := range remaining {
		keys[i] = seg.Key
	}
	joined := strings.Join(keys, ".")
	if len(joined) <= threshold {
		return joined
	}
	for i := 0; i < len(keys)-1; i++ {
		if r := []rune(keys[i]); len(r) > 0 {
			keys[i] = string(r[:1])
		}
	}
	return strings.Join(keys, ".")
}
