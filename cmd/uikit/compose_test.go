package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeButtonOverrideWins(t *testing.T) {
	res, err := executeCommand(t, "compose", "button", "--variant", "secondary", "--size", "lg", "--class", "px-2")
	require.NoError(t, err)

	classes := strings.Fields(res.stdout)
	assert.Contains(t, classes, "bg-secondary")
	assert.Contains(t, classes, "h-12")
	assert.Contains(t, classes, "after:bg-primary")
	assert.Contains(t, classes, "px-2")
	assert.NotContains(t, classes, "px-8")
	assert.Equal(t, "px-2", classes[len(classes)-1])
}

func TestComposeOutlineHasNoUnderline(t *testing.T) {
	res, err := executeCommand(t, "compose", "button", "--variant", "outline")
	require.NoError(t, err)

	assert.Contains(t, res.stdout, "border-border")
	assert.NotContains(t, res.stdout, "after:")
}

func TestComposeInputError(t *testing.T) {
	res, err := executeCommand(t, "compose", "input", "--error")
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "border-accent")
	assert.NotContains(t, strings.Fields(res.stdout), "border-border")
}

func TestComposeTokensExplain(t *testing.T) {
	res, err := executeCommand(t, "compose", "tokens", "dialog.sm", "p-4", "--class", "p-2", "--explain")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "dialog.sm: max-w-sm", lines[0])
	assert.Equal(t, "p-4: p-4", lines[1])
	assert.Equal(t, "override: p-2", lines[2])
	assert.Equal(t, "max-w-sm p-2", lines[3])
}

func TestComposeUsesConfiguredTokens(t *testing.T) {
	cfg := writeTempFile(t, "uikit.yaml", "tokens:\n  button.default: \"bg-accent text-white\"\n")

	res, err := executeCommand(t, "--config", cfg, "compose", "button")
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "bg-accent")
	assert.NotContains(t, res.stdout, "bg-primary ")
}

func TestComposeUnknownKind(t *testing.T) {
	_, err := executeCommand(t, "compose", "slider")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown component kind "slider"`)
}

func TestExplicitMissingConfigFails(t *testing.T) {
	_, err := executeCommand(t, "--config", "does-not-exist.yaml", "compose", "button")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading does-not-exist.yaml")
}
