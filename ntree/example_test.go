package ntree_test

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/ntree/ntree"
)

func Example() {
	root := ntree.New(10)
	_ = root.AddChild(ntree.New(20))
	thirty, _ := root.AddLeaf(30)
	_, _ = root.AddLeaf(40)
	_, _ = thirty.AddLeaf(21)

	var order []int
	for n := range root.All() {
		order = append(order, n.Value())
	}
	fmt.Println(order)

	leaf, ok := root.Find(21)
	fmt.Println(ok, leaf.Parent().Value(), leaf.Path())

	_, err := root.AddLeaf(21)
	fmt.Println(errors.Is(err, ntree.ErrDuplicateValue))
	// Output:
	// [10 20 30 21 40]
	// true 30 [10 30 21]
	// true
}
