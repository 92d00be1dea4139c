package pathaddr

import (
	"errors"

	"github.com/jward/treefold/internal/doctree"
)

// Resolution failures. KeyNotFound, NotAnObject and ArrayBoundaryCrossed
// are expected outcomes: callers skip the candidate and continue.
// MalformedNode means the tree is structurally inconsistent at that spot
// (typically mid-edit); it is equally non-fatal.
var (
	ErrNotAnObject          = errors.New("pathaddr: not an object")
	ErrKeyNotFound          = errors.New("pathaddr: key not found")
	ErrMalformedNode        = errors.New("pathaddr: pair has no value")
	ErrArrayBoundaryCrossed = errors.New("pathaddr: resolution would cross an array")
)

// FromNode builds the canonical path of a node by walking toward the tree
// root. The walk is an explicit loop over node kinds: arrays contribute the
// array marker (plus the owning pair's key when the array is a pair's
// value), objects contribute their owning pair's key, everything else just
// ascends.
func FromNode(n doctree.Node) Path {
	return ascend(n, nil)
}

// FromPair builds the canonical path of a pair node: the pair's own key is
// the innermost segment, then the walk ascends from the pair's parent.
func FromPair(pair doctree.Node) (Path, bool) {
	key, ok := pair.PairKey()
	if !ok {
		return nil, false
	}
	return ascend(pair.Parent(), Path{KeySegment(key)}), true
}

func ascend(cur doctree.Node, segs Path) Path {
	for cur.Valid() {
		switch cur.Kind() {
		case doctree.KindArray:
			segs = prepend(ArraySegment(), segs)
			p := cur.Parent()
			if p.Kind() == doctree.KindPair {
				if key, ok := p.PairKey(); ok {
					segs = prepend(KeySegment(key), segs)
				}
				cur = p.Parent()
				continue
			}
			cur = p
		case doctree.KindObject:
			p := cur.Parent()
			if p.Kind() == doctree.KindPair {
				if key, ok := p.PairKey(); ok {
					segs = prepend(KeySegment(key), segs)
				}
				cur = p.Parent()
				continue
			}
			cur = p
		default:
			cur = cur.Parent()
		}
	}
	return segs
}

func prepend(s Segment, p Path) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, s)
	return append(out, p...)
}

// ResolveValue descends from an object node one key segment at a time and
// returns the final value node. Resolution never descends through arrays:
// an array-crossing segment fails with ErrArrayBoundaryCrossed.
func ResolveValue(object doctree.Node, remaining Path) (doctree.Node, error) {
	cur := object
	for _, seg := range remaining {
		if seg.Array {
			return doctree.Node{}, ErrArrayBoundaryCrossed
		}
		if cur.Kind() != doctree.KindObject {
			return doctree.Node{}, ErrNotAnObject
		}
		var matched doctree.Node
		for _, pair := range cur.Pairs() {
			if key, ok := pair.PairKey(); ok && key == seg.Key {
				matched = pair
				break
			}
		}
		if !matched.Valid() {
			return doctree.Node{}, ErrKeyNotFound
		}
		value := matched.Field("value")
		if !value.Valid() {
			return doctree.Node{}, ErrMalformedNode
		}
		cur = value
	}
	return cur, nil
}
