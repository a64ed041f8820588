package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uikit/internal/config"
	"github.com/alexisbeaulieu97/uikit/internal/page"
	"github.com/alexisbeaulieu97/uikit/pkg/diff"
)

type pageOptions struct {
	output string
	theme  string
	fetch  bool
	check  bool
}

func newPageCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &pageOptions{}

	cmd := &cobra.Command{
		Use:   "page <page.yaml>",
		Short: "Render a page file into a standalone HTML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}
			return runPage(cmd, app, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the document to this file instead of stdout")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Override the page's theme")
	cmd.Flags().BoolVar(&opts.fetch, "fetch", false, "Fetch theme sources before rendering")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Compare with the --output file instead of writing it and fail when they differ")

	return cmd
}

func runPage(cmd *cobra.Command, app *AppContext, opts *pageOptions, path string) error {
	p, err := config.ParsePage(path)
	if err != nil {
		return newCommandError("render page", "loading "+path, err, "Fix the page file and try again.")
	}
	if opts.theme != "" {
		p.Theme = opts.theme
	}

	set, err := app.ThemeSet(cmd.Context(), opts.fetch)
	if err != nil {
		return newCommandError("render page", "loading themes", err, "Check theme_sources in the configuration.")
	}
	if p.Theme != "" {
		if _, ok := set.Get(p.Theme); !ok {
			return newCommandError("render page", "resolving theme", fmt.Errorf("unknown theme %q", p.Theme), "Run 'uikit themes list' to see the available themes.")
		}
	}

	doc, err := page.NewBuilder(app.Sheet).Document(p, set)
	if err != nil {
		return newCommandError("render page", "building components", err, "")
	}

	var buf bytes.Buffer
	if err := doc.Render(cmd.Context(), &buf); err != nil {
		return newCommandError("render page", "writing HTML", err, "")
	}
	buf.WriteByte('\n')

	if opts.check {
		return checkPage(cmd, opts.output, buf.String())
	}
	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
		return newCommandError("render page", "writing "+opts.output, err, "Check that the output directory exists.")
	}
	app.Logger.Info("page rendered", "path", path, "output", opts.output, "components", len(p.Components))
	return nil
}

// checkPage reports whether the file at path already holds rendered.
func checkPage(cmd *cobra.Command, path, rendered string) error {
	if path == "" {
		return newCommandError("check page", "choosing the file to compare", fmt.Errorf("--check requires --output"), "Pass the committed HTML file with --output.")
	}

	existing, err := os.ReadFile(path)
	if err != nil {
		return newCommandError("check page", "reading "+path, err, "Render the page once without --check.")
	}

	out := diff.Unified(diff.MarkupLines(string(existing)), diff.MarkupLines(rendered), path, "rendered")
	if out == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", path)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return newCommandError("check page", path+" is out of date", fmt.Errorf("rendered page differs"), "Run 'uikit page' without --check to regenerate it.")
}
