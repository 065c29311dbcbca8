package ntree

import (
	"iter"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// All returns a depth-first, pre-order iterator over the subtree rooted at
// n: a node is yielded before its children, and children are visited in
// insertion order. The traversal keeps its own stack and does not recurse.
//
// The tree must not be modified while the iteration is in progress.
func (n *Node[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		stack := arraystack.New()
		stack.Push(n)
		for !stack.Empty() {
			top, _ := stack.Pop()
			cur := top.(*Node[T])
			if !yield(cur) {
				return
			}
			// Push in reverse so the first child is popped first.
			for i := len(cur.children) - 1; i >= 0; i-- {
				stack.Push(cur.children[i])
			}
		}
	}
}

// Ancestors returns an iterator over n's parent, grandparent and so on up to
// the root. It yields nothing for a root.
func (n *Node[T]) Ancestors() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for p := n.parent; p != nil; p = p.parent {
			if !yield(p) {
				return
			}
		}
	}
}
