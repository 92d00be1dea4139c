package summary

import "github.com/jward/treefold/internal/doctree"

// CountItems returns the number of value-bearing children of an array
// node. Structural children (brackets, commas, sequence item markers) are
// excluded even when the tree exposes them as nodes. Zero for anything
// that is not an array.
func CountItems(array doctree.Node) int {
	return len(array.Items())
}
