package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/isaacphi/gptsmith/internal/appState"
	"github.com/isaacphi/gptsmith/internal/config"
	"github.com/isaacphi/gptsmith/internal/ui/cli/assistant"
	configCmd "github.com/isaacphi/gptsmith/internal/ui/cli/config"
	"github.com/isaacphi/gptsmith/internal/ui/cli/fields"
	"github.com/isaacphi/gptsmith/internal/ui/cli/tools"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	logFile    string
	dbPath     string
	schemaPath string
)

var rootCmd = &cobra.Command{
	Use:               "gptsmith",
	Short:             "Build assistant configurations in the terminal",
	Long:              `gptsmith renders an assistant configuration form from a schema document and stores the result locally`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
}

func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up the root command to use this context
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set logging level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (defaults to stdout, discarded while the form is open)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "Assistant database path")
	rootCmd.PersistentFlags().StringVar(&schemaPath, "schema", "", "Assistant schema document (defaults to the built-in schema)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		overrides := &config.RuntimeOverrides{}
		if logLevel != "" {
			overrides.LogLevel = &logLevel
		}
		if logFile != "" {
			overrides.LogFile = &logFile
		}
		if dbPath != "" {
			overrides.DBPath = &dbPath
		}
		if schemaPath != "" {
			overrides.SchemaPath = &schemaPath
		}
		return appState.Initialize(overrides)
	}

	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return appState.Cleanup()
	}

	// Remove "completions" command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		assistant.NewCmd,
		assistant.ShowCmd,
		assistant.ListCmd,
		assistant.RemoveCmd,
		assistant.LinkCmd,
		tools.ToolsCmd,
		fields.FieldsCmd,
		configCmd.ConfigCmd,
	)
}
