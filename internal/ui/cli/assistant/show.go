package assistant

import (
	"fmt"

	"github.com/isaacphi/gptsmith/internal/appState"
	"github.com/isaacphi/gptsmith/internal/form"
	"github.com/isaacphi/gptsmith/internal/shared"
	"github.com/isaacphi/gptsmith/internal/ui/tui"
	screen "github.com/isaacphi/gptsmith/internal/ui/tui/screens/assistant"
	"github.com/isaacphi/gptsmith/internal/ui/tui/theme"
	"github.com/spf13/cobra"
)

var ShowCmd = &cobra.Command{
	Use:   "show [assistant_id]",
	Short: "Show a saved assistant read-only",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg := appState.Get().Config

		svc, err := shared.InitializeAssistantService(cfg)
		if err != nil {
			return err
		}
		a, err := svc.Get(ctx, args[0])
		if err != nil {
			return err
		}

		if jsonFlag {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.Config)
			return err
		}

		schema, err := shared.LoadSchema(cfg)
		if err != nil {
			return err
		}
		opts, err := svc.FormOptions(a, true)
		if err != nil {
			return err
		}
		f, err := form.New(schema, opts)
		if err != nil {
			return err
		}

		var link string
		if a.Public {
			if link, err = svc.PublicLink(a); err != nil {
				return err
			}
		}

		_, err = tui.Run(ctx, screen.Options{
			Form:        f,
			Keys:        &cfg.KeyMap,
			Theme:       theme.DefaultTheme(),
			Name:        a.Name,
			LoadCatalog: shared.NewCatalog(cfg).Tools,
			Link:        link,
		})
		return err
	},
}

func init() {
	ShowCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the stored configuration as JSON instead of opening the form")
}
