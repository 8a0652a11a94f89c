package assistant

import (
	"context"
	"fmt"

	"github.com/isaacphi/gptsmith/internal/appState"
	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/isaacphi/gptsmith/internal/form"
	"github.com/isaacphi/gptsmith/internal/shared"
	"github.com/isaacphi/gptsmith/internal/ui/tui"
	screen "github.com/isaacphi/gptsmith/internal/ui/tui/screens/assistant"
	"github.com/isaacphi/gptsmith/internal/ui/tui/theme"
	"github.com/spf13/cobra"
)

var NewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create an assistant in the form",
	Long: `Open the assistant form. Files given with --file are attached up front, which
needs a type that accepts files (--type chat_retrieval or --type agent).
With --from the form starts as an editable copy of a saved assistant.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg := appState.Get().Config

		svc, err := shared.InitializeAssistantService(cfg)
		if err != nil {
			return err
		}
		schema, err := shared.LoadSchema(cfg)
		if err != nil {
			return err
		}

		opts := form.Options{Public: publicFlag}
		name := nameFlag
		if fromFlag != "" {
			source, err := svc.Get(ctx, fromFlag)
			if err != nil {
				return err
			}
			if opts, err = svc.FormOptions(source, false); err != nil {
				return err
			}
			opts.Public = opts.Public || publicFlag
			if name == "" {
				name = source.Name + " (copy)"
			}
		}

		f, err := form.New(schema, opts)
		if err != nil {
			return err
		}
		if typeFlag != "" {
			if err := f.SetType(typeFlag); err != nil {
				return err
			}
		}
		if err := attachFiles(f, fileFlags); err != nil {
			return err
		}

		var created *domain.Assistant
		save := func(ctx context.Context, name string, tree domain.ConfigTree, files []form.Attachment, public bool) error {
			a, err := svc.Create(ctx, name, tree, files, public)
			if err != nil {
				return err
			}
			created = a
			return nil
		}

		saved, err := tui.Run(ctx, screen.Options{
			Form:        f,
			Keys:        &cfg.KeyMap,
			Theme:       theme.DefaultTheme(),
			Name:        name,
			Save:        save,
			LoadCatalog: shared.NewCatalog(cfg).Tools,
		})
		if err != nil {
			return err
		}
		if !saved || created == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing saved")
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Saved assistant %s (%s)\n", created.ID, created.Name)
		if created.Public {
			link, err := svc.PublicLink(created)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Public link: %s\n", link)
		}
		return nil
	},
}

func attachFiles(f *form.Form, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	files := make([]form.Attachment, 0, len(paths))
	for _, p := range paths {
		a, err := form.ReadAttachment(p)
		if err != nil {
			return err
		}
		files = append(files, a)
	}
	if err := f.AttachFiles(files...); err != nil {
		return fmt.Errorf("cannot attach files: %w (choose a type with --type)", err)
	}
	return nil
}

func init() {
	NewCmd.Flags().StringVar(&nameFlag, "name", "", "Assistant name")
	NewCmd.Flags().StringVar(&typeFlag, "type", "", "Initial bot type (chatbot, chat_retrieval, agent)")
	NewCmd.Flags().BoolVar(&publicFlag, "public", false, "Make the assistant public")
	NewCmd.Flags().StringArrayVar(&fileFlags, "file", nil, "Attach a file (repeatable)")
	NewCmd.Flags().StringVar(&fromFlag, "from", "", "Start from a saved assistant's configuration")
}
