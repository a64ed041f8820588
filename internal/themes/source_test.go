package themes

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/uikit/internal/config"
	uierrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

type themeRepo struct {
	dir string
	wt  *git.Worktree
}

func initThemeRepo(t *testing.T) *themeRepo {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	r := &themeRepo{dir: dir, wt: wt}
	r.commit(t, "themes/ocean.yaml", "name: ocean\nbase: dark\ncolors:\n  background: \"#001f3f\"\n")
	return r
}

func (r *themeRepo) commit(t *testing.T, name, contents string) {
	t.Helper()

	writeFile(t, filepath.Join(r.dir, name), contents)
	_, err := r.wt.Add(name)
	require.NoError(t, err)

	_, err = r.wt.Commit("add "+name, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "uikit",
			Email: "uikit@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)
}

func TestFetcherClonesAndPulls(t *testing.T) {
	t.Parallel()

	repo := initThemeRepo(t)
	fetcher := NewFetcher(t.TempDir(), nil)
	src := config.ThemeSource{Name: "shared", URL: repo.dir, Path: "themes"}

	defs, err := fetcher.Load(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "ocean", defs[0].Name)
	assert.DirExists(t, filepath.Join(fetcher.CloneDir(src), ".git"))

	defs, err = fetcher.Load(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, defs, 1)

	repo.commit(t, "themes/paper.yaml", "name: paper\n")

	defs, err = fetcher.LoadAll(context.Background(), []config.ThemeSource{src})
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "paper", defs[1].Name)
}

func TestFetcherReclonesWhenOriginChanges(t *testing.T) {
	t.Parallel()

	first := initThemeRepo(t)
	second := initThemeRepo(t)
	second.commit(t, "themes/paper.yaml", "name: paper\n")

	fetcher := NewFetcher(t.TempDir(), nil)
	_, err := fetcher.Load(context.Background(), config.ThemeSource{Name: "shared", URL: first.dir, Path: "themes"})
	require.NoError(t, err)

	defs, err := fetcher.Load(context.Background(), config.ThemeSource{Name: "shared", URL: second.dir, Path: "themes"})
	require.NoError(t, err)
	assert.Len(t, defs, 2)
}

func TestFetcherReportsSourceErrors(t *testing.T) {
	t.Parallel()

	fetcher := NewFetcher(t.TempDir(), nil)
	src := config.ThemeSource{Name: "missing", URL: filepath.Join(t.TempDir(), "nope")}

	_, err := fetcher.Fetch(context.Background(), src)
	var sourceErr *uierrors.SourceError
	require.ErrorAs(t, err, &sourceErr)
	assert.Equal(t, "missing", sourceErr.Source)
	assert.NoDirExists(t, fetcher.CloneDir(src))
}

func TestFetcherHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFetcher(t.TempDir(), nil).Fetch(ctx, config.ThemeSource{Name: "x", URL: "/tmp/x"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestFetcherRejectsPathOutsideRepository(t *testing.T) {
	t.Parallel()

	repo := initThemeRepo(t)
	fetcher := NewFetcher(t.TempDir(), nil)
	src := config.ThemeSource{Name: "ocean", URL: repo.dir, Path: "../../etc"}

	_, err := fetcher.Fetch(context.Background(), src)
	var sourceErr *uierrors.SourceError
	require.ErrorAs(t, err, &sourceErr)
	assert.Contains(t, err.Error(), "must stay inside the repository")
	assert.NoDirExists(t, fetcher.CloneDir(src))
}
