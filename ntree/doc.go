// Package ntree provides a generic N-ary tree whose nodes keep a reference
// back to their parent.
//
// # Ownership
//
// Every node is owned by exactly one parent, or by the caller when it is a
// root. Children are kept in insertion order, which is also the iteration
// and display order. The parent reference never participates in ownership:
// it is set when a node is attached and cleared when it is detached, so
// Parent and Children can never disagree.
//
// # Uniqueness
//
// All values in one tree are pairwise distinct. Each tree carries an index of
// its values that is shared by all of its nodes. AddChild and AddLeaf consult
// it before mutating anything and reject a duplicate with ErrDuplicateValue,
// leaving the tree unchanged. Find uses the same index. Values that are not
// equal to themselves, such as a floating-point NaN, never conflict and can
// never be found.
//
// # Depth
//
// Traversals use an explicit stack instead of recursion, so very deep trees
// are bounded by memory rather than by the goroutine stack.
//
// # Thread-Safety
//
// A tree is not safe for concurrent use. Callers that share a tree between
// goroutines must serialize all reads and writes themselves.
//
// # Usage
//
//	root := ntree.New(10)
//	_ = root.AddChild(ntree.New(20))
//	thirty, _ := root.AddLeaf(30)
//	_, _ = root.AddLeaf(40)
//	_, _ = thirty.AddLeaf(21)
//
//	n, ok := root.Find(21)
//	// ok == true, n.Parent().Value() == 30
package ntree
