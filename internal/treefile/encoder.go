package treefile

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/ntree/ntree"
)

// pending is a node waiting to be written into the body of its parent block.
type pending struct {
	node *ntree.Node[string]
	body *hclwrite.Body
}

// Encode renders the subtree rooted at root as a tree file. Every value is
// written as a block label, so Encode output loads back into an identical
// tree.
func Encode(root *ntree.Node[string]) []byte {
	f := hclwrite.NewEmptyFile()

	stack := arraystack.New()
	stack.Push(pending{node: root, body: f.Body()})
	for !stack.Empty() {
		top, _ := stack.Pop()
		p := top.(pending)

		block := p.body.AppendNewBlock(nodeBlockType, []string{p.node.Value()})
		children := p.node.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack.Push(pending{node: children[i], body: block.Body()})
		}
	}

	return f.Bytes()
}
