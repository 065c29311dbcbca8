package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/ntree/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"tree.hcl"}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, "tree.hcl", cfg.TreePath)
	assert.Equal(t, app.OutputTree, cfg.Output)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.Find)
	assert.Empty(t, cfg.Vars)
}

func TestParse_AllFlags(t *testing.T) {
	args := []string{
		"-t", "short.hcl",
		"-find", "21",
		"-output", "HCL",
		"-var", "env=prod",
		"-var", "region=eu=west",
		"-log-format", "JSON",
		"-log-level", "Debug",
	}

	cfg, shouldExit, err := Parse(args, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, "short.hcl", cfg.TreePath)
	assert.Equal(t, "21", cfg.Find)
	assert.Equal(t, app.OutputHCL, cfg.Output)
	assert.Equal(t, map[string]string{"env": "prod", "region": "eu=west"}, cfg.Vars)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_TreeFlagWins(t *testing.T) {
	cfg, _, err := Parse([]string{"-tree", "long.hcl", "-t", "short.hcl", "positional.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "long.hcl", cfg.TreePath)
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse(nil, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"-nope", "tree.hcl"}, "flag provided but not defined"},
		{"bad log format", []string{"-log-format", "xml", "tree.hcl"}, "invalid log-format"},
		{"bad log level", []string{"-log-level", "trace", "tree.hcl"}, "invalid log-level"},
		{"bad output", []string{"-output", "yaml", "tree.hcl"}, "invalid output format"},
		{"bad var", []string{"-var", "novalue", "tree.hcl"}, "expected name=value"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, shouldExit, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.False(t, shouldExit)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.want)
		})
	}
}

func TestVarsFlag_String(t *testing.T) {
	v := varsFlag{"b": "2", "a": "1"}
	assert.Equal(t, "a=1,b=2", v.String())
}
