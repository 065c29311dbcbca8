// Package render draws trees for terminal output.
package render

import (
	"github.com/shivamMg/ppds/tree"
	"github.com/specialistvlad/ntree/ntree"
)

// printable adapts an ntree node to the node interface the printer walks.
type printable[T comparable] struct {
	n *ntree.Node[T]
}

func (p printable[T]) Data() interface{} {
	return p.n.Value()
}

func (p printable[T]) Children() []tree.Node {
	children := p.n.Children()
	out := make([]tree.Node, 0, len(children))
	for _, c := range children {
		out = append(out, printable[T]{n: c})
	}
	return out
}

// Sprint draws the subtree rooted at root top-down: each level of the tree is
// one line, with siblings side by side in insertion order under their parent.
func Sprint[T comparable](root *ntree.Node[T]) string {
	return tree.Sprint(printable[T]{n: root})
}
