package assistant

import (
	"fmt"
	"strings"

	"github.com/isaacphi/gptsmith/internal/appState"
	"github.com/isaacphi/gptsmith/internal/shared"
	"github.com/spf13/cobra"
)

var RemoveCmd = &cobra.Command{
	Use:   "rm [assistant_id]",
	Short: "Delete an assistant and its files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := shared.InitializeAssistantService(appState.Get().Config)
		if err != nil {
			return err
		}

		// Find assistant by partial ID
		a, err := svc.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "About to delete:")
		printSummary(out, a)

		if !forceFlag {
			fmt.Fprint(out, "\nAre you sure you want to delete this assistant? [y/N] ")
			var response string
			fmt.Fscanln(cmd.InOrStdin(), &response)

			response = strings.ToLower(strings.TrimSpace(response))
			if response != "y" && response != "yes" {
				fmt.Fprintln(out, "Operation cancelled")
				return nil
			}
		}

		if _, err := svc.Delete(cmd.Context(), a.ID.String()); err != nil {
			return err
		}

		fmt.Fprintln(out, "Assistant deleted successfully")
		return nil
	},
}

func init() {
	RemoveCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Delete without confirmation")
}
