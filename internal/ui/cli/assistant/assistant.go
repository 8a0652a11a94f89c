// Package assistant holds the commands that create, show and manage saved assistants.
package assistant

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/isaacphi/gptsmith/internal/form"
	"github.com/isaacphi/gptsmith/internal/shared"
)

var (
	limitFlag  int
	forceFlag  bool
	nameFlag   string
	typeFlag   string
	publicFlag bool
	fileFlags  []string
	fromFlag   string
	jsonFlag   bool
)

func shortID(a *domain.Assistant) string {
	return a.ID.String()[:8]
}

func botType(a *domain.Assistant) string {
	tree, err := a.Tree()
	if err != nil {
		return "?"
	}
	bt, _ := form.LookupBotType(tree.StringValue(form.TypeKey))
	return bt.Title
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func preview(s string) string {
	return shared.Ellipsize(s, 50)
}

// printAssistants writes one row per assistant.
func printAssistants(out io.Writer, assistants []*domain.Assistant, now time.Time) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCreated\tType\tPublic\tFiles\tName")
	for _, a := range assistants {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			shortID(a),
			humanize.RelTime(a.CreatedAt, now, "ago", "from now"),
			botType(a),
			yesNo(a.Public),
			len(a.Files),
			preview(a.Name),
		)
	}
	return w.Flush()
}

// printSummary describes a single assistant, as shown before deletion.
func printSummary(out io.Writer, a *domain.Assistant) {
	fmt.Fprintf(out, "Assistant %s: %s\n", shortID(a), a.Name)
	fmt.Fprintf(out, "Created: %s\n", a.CreatedAt.Format(time.RFC822))
	fmt.Fprintf(out, "Type: %s\n", botType(a))
	fmt.Fprintf(out, "Public: %s\n", yesNo(a.Public))
	for _, f := range a.Files {
		fmt.Fprintf(out, "File: %s (%s)\n", f.Name, humanize.Bytes(uint64(f.Size)))
	}
}
