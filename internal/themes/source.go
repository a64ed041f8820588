package themes

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/alexisbeaulieu97/uikit/internal/config"
	"github.com/alexisbeaulieu97/uikit/internal/logger"
	uierrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

// Fetcher keeps local clones of theme source repositories under a cache
// directory, one subdirectory per source.
type Fetcher struct {
	cacheDir string
	log      *logger.Logger
}

// NewFetcher creates a fetcher caching clones under cacheDir.
func NewFetcher(cacheDir string, log *logger.Logger) *Fetcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Fetcher{cacheDir: cacheDir, log: log}
}

// DefaultCacheDir returns the per-user cache location for theme sources.
func DefaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "uikit", "themes"), nil
}

// CloneDir returns where src is cloned.
func (f *Fetcher) CloneDir(src config.ThemeSource) string {
	return filepath.Join(f.cacheDir, src.Name)
}

// Fetch clones src, or pulls it when a clone already exists, and returns
// the directory holding its theme files.
func (f *Fetcher) Fetch(ctx context.Context, src config.ThemeSource) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !config.IsSourcePath(src.Path) {
		return "", uierrors.NewSourceError(src.Name, fmt.Errorf("path %q must stay inside the repository", src.Path))
	}

	dest := f.CloneDir(src)
	log := f.log.WithFields(map[string]any{"source": src.Name, "url": src.URL})

	repo, err := git.PlainOpen(dest)
	switch {
	case err == nil && originMatches(repo, src.URL):
		if pullErr := f.pull(ctx, repo, src); pullErr != nil {
			log.Warn("pull failed, recloning", "error", pullErr.Error())
			if err := f.clone(ctx, dest, src); err != nil {
				return "", err
			}
		}
	case err == nil || errors.Is(err, git.ErrRepositoryNotExists):
		if err == nil {
			log.Info("origin changed, recloning")
		}
		if err := f.clone(ctx, dest, src); err != nil {
			return "", err
		}
	default:
		return "", uierrors.NewSourceError(src.Name, fmt.Errorf("open clone: %w", err))
	}

	log.Info("theme source ready", "dir", dest)
	return filepath.Join(dest, src.Path), nil
}

// Load fetches src and parses its theme files.
func (f *Fetcher) Load(ctx context.Context, src config.ThemeSource) ([]config.ThemeDefinition, error) {
	dir, err := f.Fetch(ctx, src)
	if err != nil {
		return nil, err
	}
	defs, err := LoadDir(dir)
	if err != nil {
		return nil, uierrors.NewSourceError(src.Name, err)
	}
	return defs, nil
}

// LoadAll loads every source in order and concatenates their themes.
func (f *Fetcher) LoadAll(ctx context.Context, sources []config.ThemeSource) ([]config.ThemeDefinition, error) {
	var defs []config.ThemeDefinition
	for _, src := range sources {
		loaded, err := f.Load(ctx, src)
		if err != nil {
			return nil, err
		}
		defs = append(defs, loaded...)
	}
	return defs, nil
}

func (f *Fetcher) clone(ctx context.Context, dest string, src config.ThemeSource) error {
	if err := os.RemoveAll(dest); err != nil {
		return uierrors.NewSourceError(src.Name, fmt.Errorf("remove stale clone: %w", err))
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return uierrors.NewSourceError(src.Name, fmt.Errorf("create cache directory: %w", err))
	}

	opts := &git.CloneOptions{URL: src.URL, SingleBranch: true}
	if src.Ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(src.Ref)
	}

	if _, err := git.PlainCloneContext(ctx, dest, false, opts); err != nil {
		_ = os.RemoveAll(dest)
		return uierrors.NewSourceError(src.Name, fmt.Errorf("clone: %w", err))
	}
	return nil
}

func (f *Fetcher) pull(ctx context.Context, repo *git.Repository, src config.ThemeSource) error {
	wt, err := repo.Worktree()
	if err != nil {
		return err
	}

	opts := &git.PullOptions{RemoteName: git.DefaultRemoteName, SingleBranch: true}
	if src.Ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(src.Ref)
	}

	err = wt.PullContext(ctx, opts)
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	return err
}

func originMatches(repo *git.Repository, url string) bool {
	remote, err := repo.Remote(git.DefaultRemoteName)
	if err != nil {
		return false
	}
	urls := remote.Config().URLs
	return len(urls) > 0 && urls[0] == url
}
