package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/ntree/internal/ctxlog"
	"github.com/specialistvlad/ntree/internal/render"
	"github.com/specialistvlad/ntree/internal/treefile"
	"github.com/specialistvlad/ntree/ntree"
)

// ErrValueNotFound is returned by Run when the value asked for with Find is
// not in the tree.
var ErrValueNotFound = errors.New("value not found in tree")

// Run loads the configured tree file and prints either the tree or the path
// to the requested value.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	root, err := a.loader.Load(ctx, a.config.TreePath)
	if err != nil {
		return fmt.Errorf("failed to load tree: %w", err)
	}
	a.logger.Info("Tree loaded.", "path", a.config.TreePath, "root", root.Value(), "nodes", root.Size())

	if a.config.Find != "" {
		return a.printPath(root, a.config.Find)
	}

	switch a.config.Output {
	case OutputHCL:
		_, err = a.outW.Write(treefile.Encode(root))
	default:
		_, err = fmt.Fprint(a.outW, render.Sprint(root))
	}
	if err != nil {
		return fmt.Errorf("failed to write tree: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) printPath(root *ntree.Node[string], value string) error {
	n, ok := root.Find(value)
	if !ok {
		a.logger.Warn("Value not found.", "value", value)
		return fmt.Errorf("%w: %q", ErrValueNotFound, value)
	}
	a.logger.Info("Value found.", "value", value, "depth", n.Depth(), "children", n.Len())

	_, err := fmt.Fprintln(a.outW, strings.Join(n.Path(), " > "))
	return err
}
