package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/uikit/internal/showcase"
)

type showcaseOptions struct {
	snapshot bool
	width    int
}

func newShowcaseCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &showcaseOptions{}

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Browse the components interactively in the terminal",
		Long: `Launch the interactive component showcase. When stdout is not a terminal,
or with --snapshot, a static rendering of every theme is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}
			return runShowcase(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.snapshot, "snapshot", false, "Print a static rendering instead of starting the interactive showcase")
	cmd.Flags().IntVar(&opts.width, "width", 80, "Width of the static rendering")

	return cmd
}

func runShowcase(cmd *cobra.Command, app *AppContext, opts *showcaseOptions) error {
	set, err := app.ThemeSet(cmd.Context(), false)
	if err != nil {
		return newCommandError("run showcase", "loading themes", err, "")
	}

	if opts.snapshot || !isTerminal(cmd.OutOrStdout()) {
		fmt.Fprintln(cmd.OutOrStdout(), showcase.Snapshot(set, opts.width))
		return nil
	}

	app.Logger.Info("launching showcase", "themes", len(set.Names()))
	p := tea.NewProgram(showcase.NewModel(set, app.Logger), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		app.Logger.Error(err, "showcase execution failed")
		return newCommandError("run showcase", "running the terminal program", err, "")
	}
	app.Logger.Info("showcase closed")
	return nil
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
