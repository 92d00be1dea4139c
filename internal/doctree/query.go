package doctree

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Structural query patterns. Each full render enumerates every array and
// every pair once; the tree-sitter query engine does the traversal.
const (
	arraysPattern = `[(block_sequence) (flow_sequence)] @array`
	pairsPattern  = `[(block_mapping_pair) (flow_pair)] @pair`

	// stylePattern captures the punctuation the fold renderer may want to
	// highlight. Capture names are opaque tags to everything downstream.
	stylePattern = `["{" "}"] @punctuation.brace
["[" "]"] @punctuation.bracket`
)

// ArrayNodes returns every array node in the document.
func (d *Document) ArrayNodes() []Node {
	return d.queryNodes(arraysPattern)
}

// PairNodes returns every pair node in the document.
func (d *Document) PairNodes() []Node {
	return d.queryNodes(pairsPattern)
}

func (d *Document) queryNodes(pattern string) []Node {
	q, err := sitter.NewQuery([]byte(pattern), d.lang)
	if err != nil {
		// Patterns are compile-time constants; a failure here means the
		// grammar changed underneath us. Best effort: no nodes.
		return nil
	}
	defer q.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, d.tree.RootNode())

	var nodes []Node
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			nodes = append(nodes, Node{n: c.Node, doc: d})
		}
	}
	return nodes
}

// StyleAt returns the style tag captured at the given position, or "" when
// nothing is captured there. The tag is opaque to the engine; hosts map it
// to whatever highlighting they have.
func (d *Document) StyleAt(row, col int) string {
	q, err := sitter.NewQuery([]byte(stylePattern), d.lang)
	if err != nil {
		return ""
	}
	defer q.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, d.tree.RootNode())

	best := ""
	bestSpan := -1
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			node := Node{n: c.Node, doc: d}
			r := node.Range()
			if !r.Contains(row, col) {
				continue
			}
			span := int(c.Node.EndByte() - c.Node.StartByte())
			if bestSpan == -1 || span < bestSpan {
				bestSpan = span
				best = q.CaptureNameForId(c.Index)
			}
		}
	}
	return best
}
