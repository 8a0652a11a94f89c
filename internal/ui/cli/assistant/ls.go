package assistant

import (
	"time"

	"github.com/isaacphi/gptsmith/internal/appState"
	"github.com/isaacphi/gptsmith/internal/shared"
	"github.com/spf13/cobra"
)

var ListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List saved assistants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := shared.InitializeAssistantService(appState.Get().Config)
		if err != nil {
			return err
		}

		assistants, err := svc.List(cmd.Context(), limitFlag)
		if err != nil {
			return err
		}
		return printAssistants(cmd.OutOrStdout(), assistants, time.Now())
	},
}

func init() {
	ListCmd.Flags().IntVarP(&limitFlag, "limit", "n", 0, "Limit the number of assistants to show (0 for all)")
}
