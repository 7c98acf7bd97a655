// Package viewtree walks an abstract view tree and linkifies the plain-text
// nodes it finds. The traversal knows nothing about how segmentation works
// and the segmenter knows nothing about trees; the walker only connects the
// two.
package viewtree

import "github.com/kk-code-lab/linkview/internal/linkify"

// Node is one element of a caller-supplied view tree. Text returns the
// node's content and true when the node holds a plain string eligible for
// link detection; container nodes return ("", false) and expose their
// children instead.
type Node interface {
	Children() []Node
	Text() (string, bool)
}

// TextResult pairs an eligible node with its segmentation.
type TextResult struct {
	Node     Node
	Segments []linkify.Segment
}

// Linkify walks root depth-first and segments every eligible text node,
// leaving all other nodes untouched. Results appear in traversal order. A
// nil root yields no results.
func Linkify(root Node, adapter *linkify.Adapter, policy linkify.LabelPolicy) []TextResult {
	if root == nil {
		return nil
	}
	if adapter == nil {
		adapter = &linkify.Adapter{}
	}
	var results []TextResult
	walk(root, func(n Node, text string) {
		results = append(results, TextResult{
			Node:     n,
			Segments: adapter.Linkify(text, policy),
		})
	})
	return results
}

func walk(n Node, visit func(Node, string)) {
	if text, ok := n.Text(); ok {
		visit(n, text)
		return
	}
	for _, child := range n.Children() {
		if child == nil {
			continue
		}
		walk(child, visit)
	}
}
