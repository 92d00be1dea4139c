package treefold

import (
	"github.com/jward/treefold/internal/doctree"
	"github.com/jward/treefold/internal/pathaddr"
	"github.com/jward/treefold/internal/summary"
)

// Public type aliases for internal types used in the Engine API. These are
// Go type aliases (=) — identical to the internal types at compile time.
// External consumers use these names; no conversion is needed.

type Node = doctree.Node
type Kind = doctree.Kind
type Range = doctree.Range
type Segment = pathaddr.Segment
type Path = pathaddr.Path
type FoldSummary = summary.FoldSummary
type PinPreview = summary.PinPreview

// ErrProviderUnavailable is returned when a document has no syntax tree:
// either its kind has no registered grammar, or the document was never
// opened. The triggering operation aborts with no partial output.
var ErrProviderUnavailable = doctree.ErrProviderUnavailable

// ParsePath reconstructs a Path from its canonical string form.
func ParsePath(s string) (Path, bool) { return pathaddr.Parse(s) }

// KindForFile returns the document kind for a file path based on its
// extension ("json" or "yaml"). Returns ("", false) when unrecognized.
func KindForFile(path string) (string, bool) { return doctree.KindForFile(path) }
