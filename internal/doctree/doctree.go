// Package doctree is the syntax tree provider for the fold engine. It
// parses JSON and YAML documents with tree-sitter and exposes navigation
// in terms of canonical node kinds (object, array, pair, scalar kinds),
// hiding the grammar's wrapper nodes from callers.
package doctree

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// ErrProviderUnavailable indicates that no parser exists for a document's
// declared kind. Operations against such a document abort with no partial
// output.
var ErrProviderUnavailable = errors.New("doctree: no parser for document kind")

// Document is one parsed buffer under management. It owns the source bytes
// and the tree-sitter tree; all Nodes handed out by a Document stay valid
// until the Document is replaced by a re-parse.
type Document struct {
	kind string
	src  []byte
	tree *sitter.Tree
	lang *sitter.Language
}

// Parse parses src as the given document kind. Returns
// ErrProviderUnavailable (wrapped) when the kind has no registered grammar.
func Parse(ctx context.Context, kind string, src []byte) (*Document, error) {
	lang, ok := grammarForKind(kind)
	if !ok {
		return nil, fmt.Errorf("parse %q: %w", kind, ErrProviderUnavailable)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", kind, err)
	}

	return &Document{kind: kind, src: src, tree: tree, lang: lang}, nil
}

// Kind returns the document's declared kind ("json" or "yaml").
func (d *Document) Kind() string { return d.kind }

// Source returns the raw document bytes.
func (d *Document) Source() []byte { return d.src }

// Root returns the document's top-level value node (the mapping, sequence
// or scalar under the grammar's stream/document wrappers). Invalid for an
// empty document.
func (d *Document) Root() Node {
	return Node{n: d.tree.RootNode(), doc: d}.unwrap()
}

// NodeAt returns the smallest named node containing the given position,
// or an invalid Node when the position is outside the tree.
func (d *Document) NodeAt(row, col int) Node {
	pt := sitter.Point{Row: uint32(row), Column: uint32(col)}
	n := d.tree.RootNode().NamedDescendantForPointRange(pt, pt)
	return Node{n: n, doc: d}
}

// Range is a half-open source position span. Rows and columns are
// zero-based; EndCol points one past the last character.
type Range struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// Contains reports whether the position (row, col) falls inside the range.
func (r Range) Contains(row, col int) bool {
	if row < r.StartRow || row > r.EndRow {
		return false
	}
	if row == r.StartRow && col < r.StartCol {
		return false
	}
	if row == r.EndRow && col >= r.EndCol {
		return false
	}
	return true
}

// Node is an opaque handle into a Document's syntax tree. The zero Node is
// invalid; every method is safe to call on it.
type Node struct {
	n   *sitter.Node
	doc *Document
}

// Valid reports whether the node refers to an actual tree position.
func (n Node) Valid() bool { return n.n != nil }

// RawType returns the grammar's node type name, mainly for diagnostics.
func (n Node) RawType() string {
	if n.n == nil {
		return ""
	}
	return n.n.Type()
}

// Kind classifies the node. Wrapper grammar nodes and anything else without
// a canonical mapping report KindOther.
func (n Node) Kind() Kind {
	if n.n == nil {
		return KindOther
	}
	t := n.n.Type()
	if k, ok := kindForType[t]; ok {
		return k
	}
	switch t {
	case "boolean_scalar":
		if strings.EqualFold(strings.TrimSpace(n.Text()), "true") {
			return KindTrue
		}
		return KindFalse
	case "plain_scalar":
		// A plain scalar whose typed child was elided; treat as string.
		return KindString
	}
	return KindOther
}

// Range returns the node's source span.
func (n Node) Range() Range {
	if n.n == nil {
		return Range{}
	}
	start, end := n.n.StartPoint(), n.n.EndPoint()
	return Range{
		StartRow: int(start.Row),
		StartCol: int(start.Column),
		EndRow:   int(end.Row),
		EndCol:   int(end.Column),
	}
}

// Text returns the node's raw source substring.
func (n Node) Text() string {
	if n.n == nil || n.doc == nil {
		return ""
	}
	return n.n.Content(n.doc.src)
}

// ScalarText returns the node's text with surrounding quotes stripped for
// quoted scalars. Non-scalar nodes return their raw text.
func (n Node) ScalarText() string {
	t := n.Text()
	if len(t) >= 2 {
		first, last := t[0], t[len(t)-1]
		if first == last && (first == '"' || first == '\'') {
			return t[1 : len(t)-1]
		}
	}
	return t
}

// Parent returns the nearest significant ancestor, skipping the grammar's
// wrapper nodes. Invalid at the tree root.
func (n Node) Parent() Node {
	if n.n == nil {
		return Node{}
	}
	p := n.n.Parent()
	for p != nil && (wrapperTypes[p.Type()] || p.Type() == "plain_scalar") {
		p = p.Parent()
	}
	return Node{n: p, doc: n.doc}
}

// Field returns the named field of the node ("key" and "value" on pairs),
// unwrapped to its significant content. Invalid when the field is absent.
func (n Node) Field(name string) Node {
	if n.n == nil {
		return Node{}
	}
	c := n.n.ChildByFieldName(name)
	if c == nil {
		return Node{}
	}
	return Node{n: c, doc: n.doc}.unwrap()
}

// PairKey returns the key name of a pair node. Quoted keys are returned
// without their quotes. Returns ("", false) when the node is not a pair or
// the key is missing.
func (n Node) PairKey() (string, bool) {
	if n.Kind() != KindPair {
		return "", false
	}
	k := n.Field("key")
	if !k.Valid() {
		return "", false
	}
	return k.ScalarText(), true
}

// Items returns the value-bearing children of an array node, in document
// order. Delimiters and other structural children are excluded. Nil for
// non-array nodes.
func (n Node) Items() []Node {
	if n.Kind() != KindArray {
		return nil
	}
	var items []Node
	for i := 0; i < int(n.n.NamedChildCount()); i++ {
		c := Node{n: n.n.NamedChild(i), doc: n.doc}.unwrap()
		if c.Kind().IsValue() {
			items = append(items, c)
		}
	}
	return items
}

// Pairs returns the pair children of an object node, in document order.
// Nil for non-object nodes.
func (n Node) Pairs() []Node {
	if n.Kind() != KindObject {
		return nil
	}
	var pairs []Node
	for i := 0; i < int(n.n.NamedChildCount()); i++ {
		c := Node{n: n.n.NamedChild(i), doc: n.doc}
		if c.Kind() == KindPair {
			pairs = append(pairs, c)
		}
	}
	return pairs
}

// unwrap descends through wrapper nodes (stream, document, block_node,
// flow_node, block_sequence_item, plain_scalar) to the significant node
// they carry. A wrapper with no content yields an invalid Node.
func (n Node) unwrap() Node {
	cur := n.n
	for cur != nil {
		t := cur.Type()
		if wrapperTypes[t] {
			cur = firstContentChild(cur)
			continue
		}
		if t == "plain_scalar" {
			if c := firstContentChild(cur); c != nil {
				cur = c
				continue
			}
			// No typed child; the plain scalar itself is the content.
			break
		}
		break
	}
	if cur == nil {
		return Node{}
	}
	return Node{n: cur, doc: n.doc}
}

// firstContentChild returns the first named child that is not a comment,
// anchor or tag annotation, or nil.
func firstContentChild(n *sitter.Node) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "comment", "anchor", "tag":
			continue
		}
		return c
	}
	return nil
}
