package main

import (
	"github.com/spf13/cobra"
)

const defaultConfigPath = "uikit.yaml"

type rootFlags struct {
	configPath string
	logLevel   string
	verbose    bool
	cacheDir   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "uikit",
		Short:         "uikit renders themed UI components as HTML or in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", defaultConfigPath, "Path to the uikit.yaml project file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.cacheDir, "cache-dir", "", "Directory holding theme source clones")

	cmd.AddCommand(newComposeCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newPageCmd(flags))
	cmd.AddCommand(newShowcaseCmd(flags))
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
