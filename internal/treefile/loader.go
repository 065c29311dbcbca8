package treefile

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/ntree/internal/ctxlog"
	"github.com/specialistvlad/ntree/ntree"
	"github.com/zclconf/go-cty/cty"
)

// Loader errors.
var (
	ErrNoRoot        = errors.New("tree file has no top-level node block")
	ErrMultipleRoots = errors.New("tree file has more than one top-level node block")
)

const nodeBlockType = "node"

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: nodeBlockType, LabelNames: []string{"value"}},
	},
}

var nodeSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "value"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: nodeBlockType, LabelNames: []string{"value"}},
	},
}

// Loader builds trees from HCL tree files.
type Loader struct {
	vars map[string]cty.Value
}

// NewLoader creates a loader whose value expressions can refer to the given
// variables as var.<name>.
func NewLoader(vars map[string]string) *Loader {
	ctyVars := make(map[string]cty.Value, len(vars))
	for name, v := range vars {
		ctyVars[name] = cty.StringVal(v)
	}
	return &Loader{vars: ctyVars}
}

// Load parses the tree file at path.
func (l *Loader) Load(ctx context.Context, path string) (*ntree.Node[string], error) {
	ctxlog.FromContext(ctx).Debug("Loading tree file.", "path", path)

	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse tree file %s: %w", path, diags)
	}
	return l.decodeFile(ctx, file, path)
}

// Parse builds a tree from in-memory HCL source. filename is only used in
// error messages.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*ntree.Node[string], error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse tree file %s: %w", filename, diags)
	}
	return l.decodeFile(ctx, file, filename)
}

func (l *Loader) decodeFile(ctx context.Context, file *hcl.File, filename string) (*ntree.Node[string], error) {
	logger := ctxlog.FromContext(ctx)

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode tree file %s: %w", filename, diags)
	}

	switch len(content.Blocks) {
	case 0:
		return nil, fmt.Errorf("%s: %w", filename, ErrNoRoot)
	case 1:
	default:
		return nil, fmt.Errorf("%s: %w (found %d)", content.Blocks[1].DefRange, ErrMultipleRoots, len(content.Blocks))
	}

	root, err := l.decodeNode(ctx, nil, content.Blocks[0])
	if err != nil {
		return nil, err
	}

	logger.Debug("Tree file loaded.", "path", filename, "root", root.Value(), "size", root.Size())
	return root, nil
}

// decodeNode turns one node block into a node. It attaches the node under
// parent, or returns a new root when parent is nil.
func (l *Loader) decodeNode(ctx context.Context, parent *ntree.Node[string], block *hcl.Block) (*ntree.Node[string], error) {
	content, diags := block.Body.Content(nodeSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	value := block.Labels[0]
	if attr, ok := content.Attributes["value"]; ok {
		if diags := gohcl.DecodeExpression(attr.Expr, l.evalContext(), &value); diags.HasErrors() {
			return nil, diags
		}
		ctxlog.FromContext(ctx).Debug("Node value overridden by expression.", "label", block.Labels[0], "value", value)
	}

	var n *ntree.Node[string]
	if parent == nil {
		n = ntree.New(value)
	} else {
		leaf, err := parent.AddLeaf(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", block.DefRange, err)
		}
		n = leaf
	}

	for _, child := range content.Blocks {
		if _, err := l.decodeNode(ctx, n, child); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (l *Loader) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": cty.ObjectVal(l.vars),
		},
	}
}
