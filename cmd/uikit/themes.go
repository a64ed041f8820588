package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
)

func newThemesCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Inspect and fetch themes",
	}

	cmd.AddCommand(newThemesListCmd(rootFlags))
	cmd.AddCommand(newThemesFetchCmd(rootFlags))
	cmd.AddCommand(newThemesCSSCmd(rootFlags))

	return cmd
}

type themesListOptions struct {
	jsonOutput bool
}

func newThemesListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &themesListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}
			set, err := app.ThemeSet(cmd.Context(), false)
			if err != nil {
				return newCommandError("list themes", "loading themes", err, "")
			}
			if opts.jsonOutput {
				return renderThemesJSON(cmd, set)
			}
			return renderThemesTable(cmd, set)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type themeJSON struct {
	Name       string `json:"name"`
	Mode       string `json:"mode"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Active     bool   `json:"active"`
}

func renderThemesJSON(cmd *cobra.Command, set *components.ThemeSet) error {
	active := components.DocumentTheme()
	payload := make([]themeJSON, 0, len(set.Names()))
	for _, t := range set.Themes() {
		payload = append(payload, themeJSON{
			Name:       t.Name,
			Mode:       string(t.Mode),
			Background: string(t.Palette.Background),
			Foreground: string(t.Palette.Foreground),
			Active:     t.Name == active,
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func renderThemesTable(cmd *cobra.Command, set *components.ThemeSet) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tMODE\tBACKGROUND\tFOREGROUND\tACTIVE")

	swatches := isTerminal(cmd.OutOrStdout())
	active := components.DocumentTheme()
	for _, t := range set.Themes() {
		marker := ""
		if t.Name == active {
			marker = "*"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			t.Name,
			t.Mode,
			swatch(t.Palette.Background, swatches),
			swatch(t.Palette.Foreground, swatches),
			marker,
		)
	}
	return writer.Flush()
}

func swatch(c lipgloss.Color, enabled bool) string {
	if !enabled {
		return string(c)
	}
	return lipgloss.NewStyle().Background(c).Render("  ") + " " + string(c)
}

func newThemesFetchCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch [source...]",
		Short: "Clone or update the configured theme sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}

			known := make(map[string]bool, len(app.Config.ThemeSources))
			for _, src := range app.Config.ThemeSources {
				known[src.Name] = true
			}
			wanted := make(map[string]bool, len(args))
			for _, name := range args {
				if !known[name] {
					return newCommandError("fetch themes", "selecting sources", fmt.Errorf("unknown theme source %q", name), "List sources under theme_sources in the configuration.")
				}
				wanted[name] = true
			}

			fetched := 0
			for _, src := range app.Config.ThemeSources {
				if len(wanted) > 0 && !wanted[src.Name] {
					continue
				}

				defs, err := app.Fetcher.Load(cmd.Context(), src)
				if err != nil {
					return newCommandError("fetch themes", "fetching "+src.Name, err, "Check the source URL and your network connection.")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d theme(s) from %s\n", src.Name, len(defs), src.URL)
				fetched++
			}

			if fetched == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No theme sources configured.")
			}
			return nil
		},
	}

	return cmd
}

func newThemesCSSCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the stylesheet declaring every theme's CSS variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}
			set, err := app.ThemeSet(cmd.Context(), false)
			if err != nil {
				return newCommandError("print theme CSS", "loading themes", err, "")
			}
			fmt.Fprint(cmd.OutOrStdout(), components.ThemeCSS(set))
			return nil
		},
	}

	return cmd
}
