package assistant

import (
	"fmt"

	"github.com/isaacphi/gptsmith/internal/appState"
	"github.com/isaacphi/gptsmith/internal/shared"
	"github.com/spf13/cobra"
)

var LinkCmd = &cobra.Command{
	Use:   "link [assistant_id]",
	Short: "Print the public link of an assistant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := shared.InitializeAssistantService(appState.Get().Config)
		if err != nil {
			return err
		}
		a, err := svc.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		link, err := svc.PublicLink(a)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), link)
		return nil
	},
}
