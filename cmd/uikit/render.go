package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uikit/internal/config"
	"github.com/alexisbeaulieu97/uikit/internal/page"
	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
)

const (
	formatHTML = "html"
	formatTerm = "term"
)

type renderOptions struct {
	spec    config.ComponentSpec
	noClose bool
	format  string
	theme   string
	width   int
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <button|input|dialog>",
		Short: "Render a single component as HTML or for the terminal",
		Example: `  uikit render button --label Save --variant secondary --size lg
  uikit render button --label Docs --href /docs --class "px-2"
  uikit render input --id email --label Email --error --error-message "Required"
  uikit render dialog --title "Delete?" --open --format term`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{config.KindButton, config.KindInput, config.KindDialog},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}
			opts.spec.Kind = strings.ToLower(args[0])
			return runRender(cmd, app, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.spec.ID, "id", "", "Element id")
	f.StringVar(&opts.spec.Label, "label", "", "Button text or input label")
	f.StringVar(&opts.spec.Class, "class", "", "Caller class override")
	f.BoolVar(&opts.spec.Disabled, "disabled", false, "Render the component disabled")
	f.StringVar(&opts.spec.Variant, "variant", "", "Button variant (default, secondary, outline, ghost)")
	f.StringVar(&opts.spec.Size, "size", "", "Button or dialog size (sm, md, lg)")
	f.StringVar(&opts.spec.Href, "href", "", "Render the button onto an anchor with this href")
	f.StringVar(&opts.spec.Name, "name", "", "Input name")
	f.StringVar(&opts.spec.Type, "type", "", "Input type")
	f.StringVar(&opts.spec.Placeholder, "placeholder", "", "Input placeholder")
	f.StringVar(&opts.spec.Value, "value", "", "Input value")
	f.BoolVar(&opts.spec.Error, "error", false, "Mark the input invalid")
	f.StringVar(&opts.spec.ErrorMessage, "error-message", "", "Message shown under an invalid input")
	f.StringVar(&opts.spec.Title, "title", "", "Dialog title")
	f.StringVar(&opts.spec.Description, "description", "", "Dialog description")
	f.BoolVar(&opts.spec.Open, "open", false, "Render the dialog open")
	f.BoolVar(&opts.noClose, "no-close", false, "Omit the dialog close button")
	f.StringVar(&opts.spec.Trigger, "trigger", "", "Dialog trigger button label")
	f.StringVar(&opts.spec.Body, "body", "", "Dialog body text")
	f.StringVarP(&opts.format, "format", "f", formatHTML, "Output format (html, term)")
	f.StringVar(&opts.theme, "theme", "", "Theme used for terminal output")
	f.IntVar(&opts.width, "width", 0, "Maximum width for terminal output")

	return cmd
}

func runRender(cmd *cobra.Command, app *AppContext, opts *renderOptions) error {
	spec := opts.spec
	if opts.noClose {
		show := false
		spec.ShowClose = &show
	}

	if err := config.ValidatePage(&config.Page{Title: "render", Components: []config.ComponentSpec{spec}}); err != nil {
		return newCommandError("render", "validating "+spec.Kind+" flags", err, "Run 'uikit render --help' for the accepted flags.")
	}

	part, err := page.NewBuilder(app.Sheet).Build(spec)
	if err != nil {
		return newCommandError("render", "building "+spec.Kind, err, "")
	}

	out := cmd.OutOrStdout()
	switch opts.format {
	case formatHTML:
		if err := part.Render(cmd.Context(), out); err != nil {
			return newCommandError("render", "writing HTML", err, "")
		}
		fmt.Fprintln(out)
	case formatTerm:
		set, err := app.ThemeSet(cmd.Context(), false)
		if err != nil {
			return newCommandError("render", "loading themes", err, "")
		}
		ctx := app.RenderContext(set, opts.theme)
		if opts.width > 0 {
			ctx = ctx.WithConstraints(components.WithMaxWidth(opts.width))
		}
		fmt.Fprintln(out, part.ViewWithContext(ctx))
	default:
		return newCommandError("render", "choosing output format", fmt.Errorf("unknown format %q", opts.format), "Use --format html or --format term.")
	}

	app.Logger.Debug("rendered component", "kind", spec.Kind, "format", opts.format)
	return nil
}
