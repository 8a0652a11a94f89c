// Package fields prints the form fields that a configuration would show.
package fields

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/isaacphi/gptsmith/internal/appState"
	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/isaacphi/gptsmith/internal/form"
	"github.com/isaacphi/gptsmith/internal/shared"
	"github.com/spf13/cobra"
)

var (
	setFlags  []string
	filesFlag bool
)

var FieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Print the visible fields for a configuration",
	Long: `Print the fields the form shows for a configuration, in display order.
Values are applied in order with --set, so set the type first:
  gptsmith fields --set type=agent --set type==agent/interrupt_before_action=Yes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := shared.LoadSchema(appState.Get().Config)
		if err != nil {
			return err
		}
		f, err := form.New(schema, form.Options{AssumeFiles: filesFlag})
		if err != nil {
			return err
		}
		if err := applyAssignments(f, setFlags); err != nil {
			return err
		}
		return printFields(cmd.OutOrStdout(), f)
	},
}

// applyAssignments writes key=value pairs to the form.
func applyAssignments(f *form.Form, assignments []string) error {
	for _, a := range assignments {
		path, value, ok := splitAssignment(a)
		if !ok {
			return fmt.Errorf("invalid assignment %q, expected path=value", a)
		}
		var err error
		if path == form.TypeKey {
			err = f.SetType(value)
		} else {
			err = f.SetField(path, value)
		}
		if err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// splitAssignment cuts a path=value pair at the first "=" past the path's leading
// "key==value/" condition, so values may contain "=" themselves.
func splitAssignment(a string) (path, value string, ok bool) {
	start := 0
	if slash := strings.Index(a, "/"); slash > 0 && strings.Contains(a[:slash], "==") {
		start = slash
	}
	i := strings.Index(a[start:], "=")
	if i < 0 {
		return "", "", false
	}
	i += start
	if i == 0 {
		return "", "", false
	}
	return a[:i], a[i+1:], true
}

func printFields(out io.Writer, f *form.Form) error {
	tree := f.Tree()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Path\tKind\tValue")
	for _, field := range f.Fields() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", field.Path, field.Kind, fieldValue(f, field, tree))
	}
	return w.Flush()
}

func fieldValue(f *form.Form, field domain.FieldDescriptor, tree domain.ConfigTree) string {
	switch field.Kind {
	case domain.FieldKindEnum, domain.FieldKindBoolean:
		return f.Store().Choice(field)
	case domain.FieldKindTools:
		ids := make([]string, 0)
		for _, t := range f.Tools().Selected() {
			ids = append(ids, t.ID)
		}
		return "[" + strings.Join(ids, ", ") + "]"
	default:
		return shared.Ellipsize(strings.ReplaceAll(tree.StringValue(field.Path), "\n", " "), 50)
	}
}

func init() {
	FieldsCmd.Flags().StringArrayVar(&setFlags, "set", nil, "Set a field, path=value (repeatable, applied in order)")
	FieldsCmd.Flags().BoolVar(&filesFlag, "files", false, "Show fields that appear once files are attached")
}
