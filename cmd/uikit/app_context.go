package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uikit/internal/config"
	"github.com/alexisbeaulieu97/uikit/internal/logger"
	"github.com/alexisbeaulieu97/uikit/internal/style"
	"github.com/alexisbeaulieu97/uikit/internal/themes"
	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
	"github.com/alexisbeaulieu97/uikit/internal/ui/variant"
)

// AppContext bundles the project configuration and the services built from
// it for one command invocation.
type AppContext struct {
	Config  *config.Config
	Logger  *logger.Logger
	Sheet   style.Sheet
	Fetcher *themes.Fetcher
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.Human || flags.verbose,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "creating logger", err, "Use one of debug, info, warn or error.")
	}
	log = log.WithFields(map[string]any{"command": cmd.Name()})

	cacheDir := flags.cacheDir
	if cacheDir == "" {
		cacheDir, err = themes.DefaultCacheDir()
		if err != nil {
			return nil, newCommandError(cmd.Name(), "determining theme cache directory", err, "Pass --cache-dir explicitly.")
		}
	}

	if cfg.Theme != "" {
		components.SetDocumentTheme(cfg.Theme)
	}

	return &AppContext{
		Config:  cfg,
		Logger:  log,
		Sheet:   variant.DefaultSheet().With(cfg.Tokens),
		Fetcher: themes.NewFetcher(cacheDir, log),
	}, nil
}

// loadConfig reads the project file. A missing file at the default path
// yields the default configuration.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	path := flags.configPath
	if path == "" {
		path = defaultConfigPath
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("config") {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.ParseConfig(path)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading "+path, err, "Fix the configuration file and try again.")
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	return cfg, nil
}

// ThemeSet builds the configured themes plus those of every theme source.
// With fetch set, sources are cloned or pulled first; otherwise only
// existing clones are read and missing ones are skipped.
func (a *AppContext) ThemeSet(ctx context.Context, fetch bool) (*components.ThemeSet, error) {
	defs := append([]config.ThemeDefinition(nil), a.Config.Themes...)

	for _, src := range a.Config.ThemeSources {
		var (
			loaded []config.ThemeDefinition
			err    error
		)
		if fetch {
			loaded, err = a.Fetcher.Load(ctx, src)
		} else {
			dir := filepath.Join(a.Fetcher.CloneDir(src), src.Path)
			if _, statErr := os.Stat(dir); statErr != nil {
				a.Logger.Warn("theme source not fetched", "source", src.Name)
				continue
			}
			loaded, err = themes.LoadDir(dir)
		}
		if err != nil {
			return nil, err
		}
		a.Logger.Debug("loaded theme source", "source", src.Name, "themes", len(loaded))
		defs = append(defs, loaded...)
	}

	set, err := themes.NewSet(defs...)
	if err != nil {
		return nil, err
	}

	if name := a.Config.Theme; name != "" {
		if _, ok := set.Get(name); !ok {
			a.Logger.Warn("configured theme not found, using light", "theme", name)
			components.SetDocumentTheme(string(components.ModeLight))
		}
	}
	return set, nil
}

// RenderContext returns a terminal render context for the named theme, or
// the document theme when name is empty.
func (a *AppContext) RenderContext(set *components.ThemeSet, name string) components.RenderContext {
	if name == "" {
		name = components.DocumentTheme()
	}
	return components.DefaultContext().WithTheme(set.Resolve(name)).WithSheet(a.Sheet)
}
