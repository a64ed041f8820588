package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oceanConfig = `theme: ocean
themes:
  - name: ocean
    base: dark
    colors:
      background: "#001f3f"
`

func TestThemesListTable(t *testing.T) {
	cfg := writeTempFile(t, "uikit.yaml", oceanConfig)

	res, err := executeCommand(t, "--config", cfg, "themes", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"NAME", "MODE", "BACKGROUND", "FOREGROUND", "ACTIVE"}, strings.Fields(lines[0]))
	assert.Equal(t, "light", strings.Fields(lines[1])[0])
	assert.Equal(t, "dark", strings.Fields(lines[2])[0])

	ocean := strings.Fields(lines[3])
	assert.Equal(t, []string{"ocean", "dark", "#001f3f"}, ocean[:3])
	assert.Equal(t, "*", ocean[len(ocean)-1])
}

func TestThemesListJSON(t *testing.T) {
	res, err := executeCommand(t, "themes", "list", "--json")
	require.NoError(t, err)

	var payload []themeJSON
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &payload))
	require.Len(t, payload, 2)
	assert.Equal(t, "light", payload[0].Name)
	assert.True(t, payload[0].Active)
	assert.Equal(t, "dark", payload[1].Mode)
	assert.False(t, payload[1].Active)
}

func TestThemesCSS(t *testing.T) {
	cfg := writeTempFile(t, "uikit.yaml", oceanConfig)

	res, err := executeCommand(t, "--config", cfg, "themes", "css")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.stdout, `:root, :root[data-theme="light"] {`))
	assert.Contains(t, res.stdout, `:root[data-theme="ocean"] { --bg: #001f3f;`)
}

func TestThemesFetch(t *testing.T) {
	repo := t.TempDir()
	commitThemeFile(t, repo, "themes/paper.yaml", "name: paper\ncolors:\n  surface: \"#fafaf5\"\n")

	cfg := writeTempFile(t, "uikit.yaml", "theme_sources:\n  - name: shared\n    url: "+repo+"\n    path: themes\n")
	cacheDir := t.TempDir()

	res, err := executeCommand(t, "--config", cfg, "--cache-dir", cacheDir, "themes", "fetch")
	require.NoError(t, err)
	assert.Equal(t, "shared: 1 theme(s) from "+repo+"\n", res.stdout)
	assert.DirExists(t, filepath.Join(cacheDir, "shared", ".git"))

	res, err = executeCommand(t, "--config", cfg, "--cache-dir", cacheDir, "themes", "list")
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "paper")
}

func TestThemesFetchUnknownSource(t *testing.T) {
	_, err := executeCommand(t, "themes", "fetch", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown theme source "missing"`)
}

func TestThemesFetchWithoutSources(t *testing.T) {
	res, err := executeCommand(t, "themes", "fetch")
	require.NoError(t, err)
	assert.Equal(t, "No theme sources configured.\n", res.stdout)
}

func TestThemesListSkipsUnfetchedSources(t *testing.T) {
	cfg := writeTempFile(t, "uikit.yaml", "theme_sources:\n  - name: shared\n    url: https://example.com/themes.git\n")

	res, err := executeCommand(t, "--config", cfg, "themes", "list")
	require.NoError(t, err)
	assert.Contains(t, res.stderr, "theme source not fetched")
}

func commitThemeFile(t *testing.T, dir, name, contents string) {
	t.Helper()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	_, err = wt.Add(name)
	require.NoError(t, err)
	_, err = wt.Commit("add "+name, &git.CommitOptions{
		Author: &object.Signature{Name: "uikit", Email: "uikit@example.com", When: time.Now()},
	})
	require.NoError(t, err)
}
