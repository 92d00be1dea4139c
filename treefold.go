package treefold

import (
	"context"
	"fmt"

	"github.com/jward/treefold/internal/doctree"
	"github.com/jward/treefold/internal/pathaddr"
	"github.com/jward/treefold/internal/pins"
	"github.com/jward/treefold/internal/summary"
)

// Engine holds the per-document state the fold pipeline needs: the parsed
// tree, the array count index and pin indicator positions rebuilt by
// Render, and the pin registry.
//
// The engine is single-threaded by design: every operation is a bounded
// synchronous computation, and the host serializes calls per document.
// Multi-threaded hosts must serialize externally.
type Engine struct {
	cfg      Config
	registry *pins.Registry
	docs     map[string]*docState
}

// docState is everything scoped to one open document. counts and
// indicators are derived caches, fully rebuilt on every Render and never
// patched incrementally.
type docState struct {
	kind       string
	doc        *doctree.Document
	counts     map[int]int // array start row → item count
	indicators []Range     // start positions of pinned pairs
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// New creates an Engine with no open documents.
func New(opts ...Option) *Engine {
	e := &Engine{
		cfg:      DefaultConfig(),
		registry: pins.NewRegistry(),
		docs:     make(map[string]*docState),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Open parses text as the given document kind and registers it under id.
// Re-opening an id replaces the parse but keeps its pins; use Close to end
// the document's lifecycle. Returns ErrProviderUnavailable (wrapped) when
// no grammar exists for the kind.
func (e *Engine) Open(ctx context.Context, id, kind string, text []byte) error {
	doc, err := doctree.Parse(ctx, kind, text)
	if err != nil {
		return fmt.Errorf("open %s: %w", id, err)
	}
	e.docs[id] = &docState{kind: kind, doc: doc}
	return nil
}

// Update re-parses an open document with new text, discarding the derived
// caches until the next Render. The host calls this on every edit.
func (e *Engine) Update(ctx context.Context, id string, text []byte) error {
	st, ok := e.docs[id]
	if !ok {
		return fmt.Errorf("update %s: %w", id, ErrProviderUnavailable)
	}
	doc, err := doctree.Parse(ctx, st.kind, text)
	if err != nil {
		return fmt.Errorf("update %s: %w", id, err)
	}
	st.doc = doc
	st.counts = nil
	st.indicators = nil
	return nil
}

// Close drops all state for the document: parse, derived caches and pins.
func (e *Engine) Close(id string) {
	delete(e.docs, id)
	e.registry.Clear(id)
}

// Render rebuilds the document's array count index and pin indicator
// positions from the current tree. Idempotent and cheap enough to run on
// every edit event.
func (e *Engine) Render(id string) error {
	st, ok := e.docs[id]
	if !ok {
		return fmt.Errorf("render %s: %w", id, ErrProviderUnavailable)
	}

	counts := make(map[int]int)
	for _, arr := range st.doc.ArrayNodes() {
		counts[arr.Range().StartRow] = summary.CountItems(arr)
	}

	var indicators []Range
	for _, pair := range st.doc.PairNodes() {
		path, ok := pathaddr.FromPair(pair)
		if !ok {
			continue
		}
		if e.registry.IsPinned(id, path.String()) {
			indicators = append(indicators, pair.Range())
		}
	}

	st.counts = counts
	st.indicators = indicators
	return nil
}

// ComposeFoldSummary produces the summary for the collapsed region at the
// given position. Returns (nil, nil) when the position does not address an
// object or array region — composition is best effort and a missing
// region is not an error.
func (e *Engine) ComposeFoldSummary(id string, row, col int) (*FoldSummary, error) {
	st, ok := e.docs[id]
	if !ok {
		return nil, fmt.Errorf("compose summary %s: %w", id, ErrProviderUnavailable)
	}

	region := nearestRegion(st.doc.NodeAt(row, col))
	if !region.Valid() {
		return nil, nil
	}

	var pinned []pathaddr.Path
	for _, s := range e.registry.List(id) {
		if p, ok := pathaddr.Parse(s); ok {
			pinned = append(pinned, p)
		}
	}

	return summary.Compose(region, pinned, summary.Options{
		ArrayCountThresholdFolded:  e.cfg.ArrayCountThresholdFolded,
		LineCountEnabled:           e.cfg.LineCountEnabled,
		PinMaxStringLength:         e.cfg.PinMaxStringLength,
		PinPathAbbreviateThreshold: e.cfg.PinPathAbbreviateThreshold,
		Style:                      st.doc.StyleAt,
	}), nil
}

// Pin resolves the cursor position to its nearest enclosing key and pins
// that path. Silent no-op (ok=false) when no key encloses the cursor or
// the document is not open. Pinning an already pinned path leaves the
// registry unchanged.
func (e *Engine) Pin(id string, row, col int) (string, bool) {
	path, ok := e.pathAtCursor(id, row, col)
	if !ok {
		return "", false
	}
	e.registry.Pin(id, path)
	return path, true
}

// Unpin resolves the cursor position to its nearest enclosing key and
// removes that pin. Silent no-op (ok=false) when nothing resolves.
func (e *Engine) Unpin(id string, row, col int) (string, bool) {
	path, ok := e.pathAtCursor(id, row, col)
	if !ok {
		return "", false
	}
	e.registry.Unpin(id, path)
	return path, true
}

// IsPinned reports whether the key enclosing the cursor is pinned.
func (e *Engine) IsPinned(id string, row, col int) bool {
	path, ok := e.pathAtCursor(id, row, col)
	return ok && e.registry.IsPinned(id, path)
}

// PinPath pins an explicit canonical path without cursor resolution.
// Returns false when the string is not a well-formed path.
func (e *Engine) PinPath(id, path string) bool {
	p, ok := pathaddr.Parse(path)
	if !ok {
		return false
	}
	e.registry.Pin(id, p.String())
	return true
}

// ClearPins empties the document's pin set.
func (e *Engine) ClearPins(id string) {
	e.registry.Clear(id)
}

// Pins returns the document's pinned paths in insertion order.
func (e *Engine) Pins(id string) []string {
	return e.registry.List(id)
}

// ArrayCount returns the item count for the array region starting at the
// given row, as of the last Render. The index is a derived cache: it may
// be momentarily absent for a row between an edit and the next Render.
func (e *Engine) ArrayCount(id string, row int) (int, bool) {
	st, ok := e.docs[id]
	if !ok {
		return 0, false
	}
	c, ok := st.counts[row]
	return c, ok
}

// CountAnnotations returns the rows whose array item count reaches the
// unfolded annotation threshold, mapped to their counts.
func (e *Engine) CountAnnotations(id string) map[int]int {
	st, ok := e.docs[id]
	if !ok {
		return nil
	}
	out := make(map[int]int)
	for row, c := range st.counts {
		if c >= e.cfg.ArrayCountThreshold {
			out[row] = c
		}
	}
	return out
}

// PinIndicators returns the start positions of currently pinned pairs, as
// of the last Render.
func (e *Engine) PinIndicators(id string) []Range {
	st, ok := e.docs[id]
	if !ok {
		return nil
	}
	return st.indicators
}

// UnfoldTargets returns the region ranges one expand action should open at
// the given position: the addressed region, then — when single-item array
// unwrapping is enabled — each nested region reached by chaining through
// arrays with exactly one value-bearing item. Nil when the position does
// not address a region.
func (e *Engine) UnfoldTargets(id string, row, col int) []Range {
	st, ok := e.docs[id]
	if !ok {
		return nil
	}
	region := nearestRegion(st.doc.NodeAt(row, col))
	if !region.Valid() {
		return nil
	}

	targets := []Range{region.Range()}
	if !e.cfg.UnfoldSingleItemArrays {
		return targets
	}
	for region.Kind() == doctree.KindArray {
		items := region.Items()
		if len(items) != 1 {
			break
		}
		child := items[0]
		switch child.Kind() {
		case doctree.KindArray, doctree.KindObject:
			targets = append(targets, child.Range())
		}
		region = child
	}
	return targets
}

// pathAtCursor maps a cursor position to the canonical path of its nearest
// enclosing pair. ok=false when the document is not open or no pair
// encloses the position.
func (e *Engine) pathAtCursor(id string, row, col int) (string, bool) {
	st, ok := e.docs[id]
	if !ok {
		return "", false
	}
	pair := nearestPair(st.doc.NodeAt(row, col))
	if !pair.Valid() {
		return "", false
	}
	path, ok := pathaddr.FromPair(pair)
	if !ok {
		return "", false
	}
	return path.String(), true
}

// nearestRegion ascends from n to the innermost object or array node,
// including n itself.
func nearestRegion(n doctree.Node) doctree.Node {
	for n.Valid() {
		switch n.Kind() {
		case doctree.KindObject, doctree.KindArray:
			return n
		}
		n = n.Parent()
	}
	return doctree.Node{}
}

// nearestPair ascends from n to the innermost pair node, including n
// itself.
func nearestPair(n doctree.Node) doctree.Node {
	for n.Valid() {
		if n.Kind() == doctree.KindPair {
			return n
		}
		n = n.Parent()
	}
	return doctree.Node{}
}
