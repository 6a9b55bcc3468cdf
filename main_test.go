package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/primestack/docstream/cmd"
	"github.com/primestack/docstream/pkg/config"
)

func TestRunReturnsZeroOnSuccess(t *testing.T) {
	t.Setenv(config.EnvConfigPathVar, t.TempDir())
	cmd.RootCmd.SetOut(io.Discard)
	cmd.RootCmd.SetErr(io.Discard)
	cmd.RootCmd.SetArgs([]string{"version"})

	assert.Equal(t, 0, run())
}

func TestRunReturnsNonZeroOnFailure(t *testing.T) {
	t.Setenv(config.EnvConfigPathVar, t.TempDir())
	cmd.RootCmd.SetOut(io.Discard)
	cmd.RootCmd.SetErr(io.Discard)
	cmd.RootCmd.SetArgs([]string{"cat", filepath.Join(t.TempDir(), "absent.yaml")})

	assert.Equal(t, 1, run())
}

func TestRunReturnsNonZeroOnUnknownCommand(t *testing.T) {
	t.Setenv(config.EnvConfigPathVar, t.TempDir())
	cmd.RootCmd.SetOut(io.Discard)
	cmd.RootCmd.SetErr(io.Discard)
	cmd.RootCmd.SetArgs([]string{"definitely-not-a-command"})

	assert.Equal(t, 1, run())
}
