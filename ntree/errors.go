package ntree

import "errors"

// Tree errors.
var (
	// ErrDuplicateValue is returned when an insertion would introduce a value
	// that already exists in the receiver's tree.
	ErrDuplicateValue = errors.New("value already exists in tree")
	// ErrCycle is returned when a node would be attached under itself or
	// under one of its own descendants.
	ErrCycle = errors.New("node cannot be attached under its own subtree")
	// ErrNilNode is returned by AddChild when the child is nil.
	ErrNilNode = errors.New("node is nil")
)
