package config

import (
	"github.com/isaacphi/gptsmith/internal/appState"
	"github.com/spf13/cobra"
)

var (
	includeSources bool

	ConfigCmd = &cobra.Command{
		Use:   "config [prefix]",
		Short: "View configuration",
		Long:  "Read configuration. If prefix is included, only show configuration under that path. E.g. gptsmith config keyMap",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appState.Get().Config

			prefix := ""
			if len(args) > 0 {
				prefix = args[0]
			}
			return cfg.PrintConfig(cmd.OutOrStdout(), prefix, includeSources)
		},
	}
)

func init() {
	ConfigCmd.Flags().BoolVarP(&includeSources, "include-sources", "s", false, "Show source file for each configuration value")
}
