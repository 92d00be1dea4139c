// Package pathaddr builds and resolves canonical addresses for positions
// in a parsed document tree. An address is a sequence of key segments with
// array crossings marked distinctly, serialized as ".a.c.[].x".
package pathaddr

import "strings"

// arrayToken is the canonical string form of an array-crossing segment.
const arrayToken = "[]"

// Segment is one step of a path: either a literal key name or the
// array-crossing marker.
type Segment struct {
	Key   string
	Array bool
}

// KeySegment returns a literal key segment.
func KeySegment(key string) Segment { return Segment{Key: key} }

// ArraySegment returns the array-crossing marker segment.
func ArraySegment() Segment { return Segment{Array: true} }

// String returns the segment's canonical form.
func (s Segment) String() string {
	if s.Array {
		return arrayToken
	}
	return s.Key
}

// Path is an ordered sequence of segments addressing a tree position from
// the document root.
type Path []Segment

// String returns the canonical form: a leading "." followed by segments
// joined with ".", arrays rendered as "[]". The empty path is ".".
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('.')
	for i, s := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// Parse reconstructs a Path from its canonical form. Parsing the output of
// String reproduces the same segment sequence. Returns (nil, false) when
// the string does not start with ".".
func Parse(s string) (Path, bool) {
	if !strings.HasPrefix(s, ".") {
		return nil, false
	}
	rest := s[1:]
	if rest == "" {
		return Path{}, true
	}
	parts := strings.Split(rest, ".")
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		if part == arrayToken {
			p = append(p, ArraySegment())
		} else {
			p = append(p, KeySegment(part))
		}
	}
	return p, true
}

// Equal reports segment-wise equality.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// IsPrefixOf reports whether p is a strict prefix of q: p's segments equal
// q's leading segments and p is strictly shorter.
func (p Path) IsPrefixOf(q Path) bool {
	if len(p) >= len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// HasArray reports whether any segment is the array-crossing marker.
func (p Path) HasArray() bool {
	for _, s := range p {
		if s.Array {
			return true
		}
	}
	return false
}
