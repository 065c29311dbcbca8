package ntree

import (
	"fmt"
	"slices"
)

// index maps every value of one tree to the node holding it. All nodes of a
// tree share the same index.
type index[T comparable] struct {
	nodes map[T]*Node[T]
}

func newIndex[T comparable]() *index[T] {
	return &index[T]{nodes: make(map[T]*Node[T])}
}

// compact drops entries for nodes that no longer belong to x.
func (x *index[T]) compact() {
	nodes := make(map[T]*Node[T], len(x.nodes))
	for v, n := range x.nodes {
		if n.idx == x {
			nodes[v] = n
		}
	}
	x.nodes = nodes
}

// Node is a single element of an N-ary tree. It owns its children and keeps
// a non-owning reference to its parent.
//
// The zero value is not usable; create nodes with New or AddLeaf.
type Node[T comparable] struct {
	// value is the payload, unique within the tree.
	value T
	// parent is nil for a root.
	parent *Node[T]
	// children are kept in insertion order.
	children []*Node[T]
	// idx is the value index of the tree this node currently belongs to.
	idx *index[T]
}

// New creates a standalone node with no parent and no children.
func New[T comparable](value T) *Node[T] {
	n := &Node[T]{value: value, idx: newIndex[T]()}
	n.idx.nodes[value] = n
	return n
}

// Value returns the node's payload.
func (n *Node[T]) Value() T {
	return n.value
}

// Parent returns the node's parent, or nil if the node is a root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Children returns the node's children in insertion order. The returned
// slice is a copy; modifying it does not change the tree.
func (n *Node[T]) Children() []*Node[T] {
	return slices.Clone(n.children)
}

// Len returns the number of direct children.
func (n *Node[T]) Len() int {
	return len(n.children)
}

// IsRoot returns true if the node has no parent.
func (n *Node[T]) IsRoot() bool {
	return n.parent == nil
}

// IsLeaf returns true if the node has no children.
func (n *Node[T]) IsLeaf() bool {
	return len(n.children) == 0
}

// AddChild appends child, together with its whole subtree, to the end of
// n's children and makes n its parent. If child already has a parent it is
// moved: it is removed from the previous parent's children first.
//
// AddChild returns an error wrapping ErrDuplicateValue if any value of the
// child's subtree already exists in n's tree, ErrCycle if child is n or one
// of n's ancestors, and ErrNilNode if child is nil. On error the tree is left
// unchanged.
func (n *Node[T]) AddChild(child *Node[T]) error {
	if child == nil {
		return ErrNilNode
	}
	if n.isWithin(child) {
		return ErrCycle
	}

	if child.idx == n.idx {
		// Moving inside the same tree cannot introduce a duplicate.
		child.unlink()
	} else {
		for c := range child.All() {
			if _, exists := n.idx.nodes[c.value]; exists {
				return fmt.Errorf("%w: %v", ErrDuplicateValue, c.value)
			}
		}
		child.unlink()
		child.reindex(n.idx)
	}

	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// AddLeaf creates a new node holding value, appends it to n's children and
// returns it. It returns an error wrapping ErrDuplicateValue if value already
// exists in n's tree.
func (n *Node[T]) AddLeaf(value T) (*Node[T], error) {
	if _, exists := n.idx.nodes[value]; exists {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateValue, value)
	}
	leaf := &Node[T]{value: value, parent: n, idx: n.idx}
	n.idx.nodes[value] = leaf
	n.children = append(n.children, leaf)
	return leaf, nil
}

// Find searches the subtree rooted at n, including n itself, for the node
// holding value. It returns nil and false if no such node exists. Find never
// mutates the tree.
func (n *Node[T]) Find(value T) (*Node[T], bool) {
	found, ok := n.idx.nodes[value]
	if !ok || !found.isWithin(n) {
		return nil, false
	}
	return found, true
}

// Contains reports whether value exists anywhere in n's tree, not only in
// the subtree rooted at n.
func (n *Node[T]) Contains(value T) bool {
	_, ok := n.idx.nodes[value]
	return ok
}

// Remove unlinks the descendant of n holding value and returns it as the
// root of an independent tree. n itself is never removed; asking for n's own
// value, or for a value outside n's subtree, returns nil and false.
func (n *Node[T]) Remove(value T) (*Node[T], bool) {
	found, ok := n.Find(value)
	if !ok || found == n {
		return nil, false
	}
	found.Detach()
	return found, true
}

// Detach removes n from its parent, making it the root of a new tree that
// contains exactly n's subtree. Detach on a root is a no-op.
func (n *Node[T]) Detach() {
	if n.parent == nil {
		return
	}
	n.unlink()
	n.reindex(newIndex[T]())
}

// Root returns the root of n's tree.
func (n *Node[T]) Root() *Node[T] {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Depth returns the number of edges between n and its root.
func (n *Node[T]) Depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Path returns the values from the root down to n, inclusive.
func (n *Node[T]) Path() []T {
	path := make([]T, 0, n.Depth()+1)
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur.value)
	}
	slices.Reverse(path)
	return path
}

// Size returns the number of nodes in the subtree rooted at n, including n.
func (n *Node[T]) Size() int {
	size := 0
	for range n.All() {
		size++
	}
	return size
}

// isWithin reports whether n is ancestor or one of its descendants.
func (n *Node[T]) isWithin(ancestor *Node[T]) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// unlink removes n from its parent's children and clears the parent
// reference. The index is left untouched.
func (n *Node[T]) unlink() {
	p := n.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = nil
}

// reindex moves every value of n's subtree from its current index into to.
func (n *Node[T]) reindex(to *index[T]) {
	from := n.idx
	stale := false
	for c := range n.All() {
		if from.nodes[c.value] == c {
			delete(from.nodes, c.value)
		} else {
			// A value that is not equal to itself (NaN) cannot be deleted by key.
			stale = true
		}
		to.nodes[c.value] = c
		c.idx = to
	}
	if stale {
		from.compact()
	}
}
