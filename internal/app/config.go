package app

import (
	"errors"
	"fmt"
)

// Output formats.
const (
	OutputTree = "tree"
	OutputHCL  = "hcl"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	TreePath string // hcl tree file
	Find     string // value to locate; empty prints the whole tree
	Output   string
	Vars     map[string]string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults, returning a copy ready for NewApp.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.TreePath == "" {
		return nil, errors.New("TreePath is a required configuration field and cannot be empty")
	}

	switch cfg.Output {
	case "":
		cfg.Output = OutputTree
	case OutputTree, OutputHCL:
	default:
		return nil, fmt.Errorf("invalid output format %q: must be '%s' or '%s'", cfg.Output, OutputTree, OutputHCL)
	}

	return &cfg, nil
}
