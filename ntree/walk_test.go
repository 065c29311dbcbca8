package ntree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_PreOrder(t *testing.T) {
	root := buildExampleTree(t)

	var got []int
	for n := range root.All() {
		got = append(got, n.Value())
	}
	assert.Equal(t, []int{10, 20, 30, 21, 40}, got)
}

func TestAll_Subtree(t *testing.T) {
	root := buildExampleTree(t)
	thirty, _ := root.Find(30)

	var got []int
	for n := range thirty.All() {
		got = append(got, n.Value())
	}
	assert.Equal(t, []int{30, 21}, got)
}

func TestAll_StopsEarly(t *testing.T) {
	root := buildExampleTree(t)

	var got []int
	for n := range root.All() {
		got = append(got, n.Value())
		if n.Value() == 30 {
			break
		}
	}
	assert.Equal(t, []int{10, 20, 30}, got)
}

func TestAncestors(t *testing.T) {
	root := buildExampleTree(t)
	leaf, ok := root.Find(21)
	require.True(t, ok)

	var got []int
	for a := range leaf.Ancestors() {
		got = append(got, a.Value())
	}
	assert.Equal(t, []int{30, 10}, got)

	for range root.Ancestors() {
		t.Fatal("a root has no ancestors")
	}
}
