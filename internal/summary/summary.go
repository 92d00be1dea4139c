// Package summary composes the display line shown in place of a collapsed
// region: bracket symbols, array item counts, line counts, and previews of
// the pinned values inside the region.
package summary

import (
	"fmt"
	"strings"

	"github.com/jward/treefold/internal/doctree"
	"github.com/jward/treefold/internal/pathaddr"
)

// Options carries the composition knobs. Style, when non-nil, is the
// provider's per-position capture lookup; its return value is treated as
// an opaque tag.
type Options struct {
	ArrayCountThresholdFolded  int
	LineCountEnabled           bool
	PinMaxStringLength         int
	PinPathAbbreviateThreshold int
	Style                      func(row, col int) string
}

// PinPreview is one resolved pin inside a collapsed object: the display
// path and the formatted value.
type PinPreview struct {
	Path  string
	Value string
}

// FoldSummary is the composed render output for one collapsed region.
type FoldSummary struct {
	Opener      string
	Closer      string
	OpenerStyle string
	CloserStyle string

	// Count is the array item count annotation; meaningful iff HasCount.
	Count    int
	HasCount bool

	// Lines is the region's total line count; meaningful iff HasLines.
	Lines    int
	HasLines bool

	Pins []PinPreview
}

// Text assembles the single display line for the summary.
func (s *FoldSummary) Text() string {
	var b strings.Builder
	if len(s.Pins) > 0 {
		b.WriteString(s.Opener)
		b.WriteByte(' ')
		for _, p := range s.Pins {
			b.WriteString(p.Path)
			b.WriteString(": ")
			b.WriteString(p.Value)
			b.WriteString(", ")
		}
		b.WriteString(Ellipsis)
		b.WriteByte(' ')
		b.WriteString(s.Closer)
	} else {
		b.WriteString(s.Opener)
		b.WriteString(Ellipsis)
		b.WriteString(s.Closer)
	}
	if s.HasCount {
		fmt.Fprintf(&b, " [%d]", s.Count)
	}
	if s.HasLines {
		fmt.Fprintf(&b, " lines: %d", s.Lines)
	}
	return b.String()
}

// Compose produces the summary for a collapsed region. Pure: safe to call
// repeatedly, including against a partially edited tree — pins that fail
// to resolve are skipped, never errors. Returns nil when the region is
// neither an object nor an array.
func Compose(region doctree.Node, pinned []pathaddr.Path, opts Options) *FoldSummary {
	var s *FoldSummary

	switch region.Kind() {
	case doctree.KindArray:
		s = &FoldSummary{Opener: "[", Closer: "]"}
		if c := CountItems(region); c >= opts.ArrayCountThresholdFolded {
			s.Count, s.HasCount = c, true
		}

	case doctree.KindObject:
		s = &FoldSummary{Opener: "{", Closer: "}"}
		regionPath := pathaddr.FromNode(region)
		for _, pin := range pinned {
			if !regionPath.IsPrefixOf(pin) {
				continue
			}
			remaining := pin[len(regionPath):]
			// Pins surface only at the nearest enclosing object; anything
			// that would project across an array stays hidden here.
			if remaining.HasArray() {
				continue
			}
			value, err := pathaddr.ResolveValue(region, remaining)
			if err != nil {
				continue // unresolvable right now; skip this render
			}
			s.Pins = append(s.Pins, PinPreview{
				Path:  formatPath(remaining, opts.PinPathAbbreviateThreshold),
				Value: formatValue(value, opts.PinMaxStringLength),
			})
		}

	default:
		return nil
	}

	r := region.Range()
	if opts.LineCountEnabled {
		s.Lines, s.HasLines = r.EndRow-r.StartRow+1, true
	}
	if opts.Style != nil {
		s.OpenerStyle = opts.Style(r.StartRow, r.StartCol)
		closerCol := r.EndCol - 1
		if closerCol < 0 {
			closerCol = 0
		}
		s.CloserStyle = opts.Style(r.EndRow, closerCol)
	}
	return s
}
