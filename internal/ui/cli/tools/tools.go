// Package tools lists the tool catalog.
package tools

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/isaacphi/gptsmith/internal/appState"
	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/isaacphi/gptsmith/internal/form"
	"github.com/isaacphi/gptsmith/internal/shared"
	"github.com/spf13/cobra"
)

var verboseFlag bool

var ToolsCmd = &cobra.Command{
	Use:   "tools [query]",
	Short: "List the tools that can be added to an agent",
	Long:  "List the tool catalog: files from toolsDir, the built-in tools and tools served by configured MCP servers. A query filters by name.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := shared.NewCatalog(appState.Get().Config)
		tools, err := src.Tools(cmd.Context())
		if err != nil {
			if len(tools) == 0 {
				return err
			}
			// Partial catalogs are still listed.
			slog.Warn("some tool sources failed", "error", err)
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}

		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		return printTools(cmd.OutOrStdout(), form.FilterCatalog(tools, query), verboseFlag)
	},
}

func printTools(out io.Writer, tools []domain.ToolSchema, verbose bool) error {
	if len(tools) == 0 {
		_, err := fmt.Fprintln(out, "No tools found")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tType\tName\tSettings")
	for _, t := range tools {
		settings := strings.Join(t.PropertyNames(), ", ")
		if settings == "" {
			settings = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Type, t.Name, settings)
		if verbose && t.Description != "" {
			fmt.Fprintf(w, "\t\t  %s\t\n", t.Description)
		}
	}
	return w.Flush()
}

func init() {
	ToolsCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show tool descriptions")
}
