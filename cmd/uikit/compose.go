package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uikit/internal/style"
	"github.com/alexisbeaulieu97/uikit/internal/ui/variant"
)

type composeOptions struct {
	variant string
	size    string
	invalid bool
	class   string
	explain bool
}

func newComposeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &composeOptions{}

	cmd := &cobra.Command{
		Use:   "compose <button|input|dialog|tokens> [token...]",
		Short: "Print the class string a component resolves to",
		Long: `Resolve a component's props to its style tokens, look them up in the
configured token sheet and merge the result with --class. The override always
wins over token classes that set the same property.

With the "tokens" kind, the remaining arguments are token names composed in order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags)
			if err != nil {
				return err
			}
			return runCompose(cmd, app, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.variant, "variant", "", "Button variant (default, secondary, outline, ghost)")
	cmd.Flags().StringVar(&opts.size, "size", "", "Button or dialog size (sm, md, lg)")
	cmd.Flags().BoolVar(&opts.invalid, "error", false, "Resolve the input in its error state")
	cmd.Flags().StringVar(&opts.class, "class", "", "Caller class override")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "List the active tokens before the class string")

	return cmd
}

func runCompose(cmd *cobra.Command, app *AppContext, opts *composeOptions, args []string) error {
	tokens, err := composeTokens(args[0], opts, args[1:])
	if err != nil {
		return newCommandError("compose", "resolving tokens", err, "Use one of button, input, dialog or tokens.")
	}

	for _, name := range style.ActiveNames(tokens) {
		if _, ok := app.Sheet[name]; !ok {
			app.Logger.Debug("token not in sheet, using it as literal classes", "token", name)
		}
	}

	out := cmd.OutOrStdout()
	if opts.explain {
		for _, name := range style.ActiveNames(tokens) {
			fmt.Fprintf(out, "%s: %s\n", name, app.Sheet.Classes(name))
		}
		if opts.class != "" {
			fmt.Fprintf(out, "override: %s\n", opts.class)
		}
	}
	fmt.Fprintln(out, style.Compose(app.Sheet, tokens, opts.class))
	return nil
}

func composeTokens(kind string, opts *composeOptions, names []string) ([]style.Token, error) {
	switch strings.ToLower(kind) {
	case "button":
		return variant.ResolveButton(variant.ButtonProps{
			Variant: variant.ButtonVariant(opts.variant),
			Size:    variant.Size(opts.size),
		}), nil
	case "input":
		return variant.ResolveInput(variant.InputProps{Error: opts.invalid}), nil
	case "dialog":
		return variant.ResolveDialog(variant.DialogProps{Size: variant.Size(opts.size)}), nil
	case "tokens":
		tokens := make([]style.Token, 0, len(names))
		for _, name := range names {
			tokens = append(tokens, style.On(name))
		}
		return tokens, nil
	default:
		return nil, fmt.Errorf("unknown component kind %q", kind)
	}
}
