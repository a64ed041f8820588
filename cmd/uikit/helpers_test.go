package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
)

// Commands set the process-wide document theme, so command tests do not run
// in parallel.

type commandResult struct {
	stdout string
	stderr string
}

func executeCommand(t *testing.T, args ...string) (commandResult, error) {
	t.Helper()

	previous := components.DocumentTheme()
	t.Cleanup(func() { components.SetDocumentTheme(previous) })

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"--cache-dir", t.TempDir()}, args...))

	err := root.Execute()
	return commandResult{stdout: stdout.String(), stderr: stderr.String()}, err
}

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
