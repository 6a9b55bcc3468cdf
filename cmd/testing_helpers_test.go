package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/primestack/docstream/pkg/config"
)

// executeCommand runs the root command with the given arguments and returns
// everything it wrote to stdout. Command state is reset so tests do not leak
// flag values into each other.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeCommandWithInput(t, "", args...)
}

// executeCommandWithInput is executeCommand with stdin contents.
func executeCommandWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	// Point the config search at an empty dir so machine-local config files
	// do not leak into the assertions.
	t.Setenv(config.EnvConfigPathVar, t.TempDir())

	catOutputFile = ""
	catTmpFile = false

	buf := &bytes.Buffer{}
	RootCmd.SetOut(buf)
	RootCmd.SetErr(io.Discard)
	RootCmd.SetIn(strings.NewReader(input))
	RootCmd.SetArgs(args)

	err := RootCmd.Execute()
	return buf.String(), err
}
