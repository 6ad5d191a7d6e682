package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taskrig/taskrig/core/task"
)

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered tasks and their scheduling metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := a.reg.Tasks()
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks registered.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tHOSTS\tROLES\tFLAGS\tSUMMARY")
			for _, t := range tasks {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					t.Name,
					orDash(strings.Join(t.Meta.Hosts, ",")),
					orDash(strings.Join(t.Meta.Roles, ",")),
					orDash(flagSummary(t.Meta)),
					t.Summary,
				)
			}
			return w.Flush()
		},
	}
}

func flagSummary(m task.Metadata) string {
	var flags []string
	if m.EnsureOrder {
		if m.Sorted {
			flags = append(flags, "ordered+sorted")
		} else {
			flags = append(flags, "ordered")
		}
	}
	if len(m.Settings) > 0 {
		flags = append(flags, fmt.Sprintf("settings(%d)", len(m.Settings)))
	}
	return strings.Join(flags, ",")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
