package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/taskrig/taskrig/core/hostspec"
)

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <task>",
		Short: "Show the full metadata attached to one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := a.reg.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown task %q", args[0])
			}
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Task: %s\n", t.Name)
			if t.Summary != "" {
				fmt.Fprintf(out, "Summary: %s\n", t.Summary)
			}

			if len(t.Meta.Hosts) == 0 {
				fmt.Fprintln(out, "Hosts: (none — engine defaults apply)")
			} else {
				fmt.Fprintln(out, "Hosts:")
				for _, h := range t.Meta.Hosts {
					spec, err := hostspec.Parse(h)
					if err != nil {
						fmt.Fprintf(out, "  %s (unparseable: %v)\n", h, err)
						continue
					}
					fmt.Fprintf(out, "  %s\n", describeSpec(spec))
				}
			}

			if len(t.Meta.Roles) > 0 {
				fmt.Fprintln(out, "Roles:")
				for _, r := range t.Meta.Roles {
					fmt.Fprintf(out, "  %s (resolved by the execution engine)\n", r)
				}
			}

			switch {
			case t.Meta.EnsureOrder && t.Meta.Sorted:
				fmt.Fprintln(out, "Order: combined order preserved, then sorted")
			case t.Meta.EnsureOrder:
				fmt.Fprintln(out, "Order: combined order preserved")
			default:
				fmt.Fprintln(out, "Order: deduplicated, order unspecified")
			}

			if len(t.Meta.Settings) > 0 {
				fmt.Fprintln(out, "Settings overrides:")
				keys := make([]string, 0, len(t.Meta.Settings))
				for k := range t.Meta.Settings {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintf(out, "  %s: %v\n", k, t.Meta.Settings[k])
				}
			}
			return nil
		},
	}
}

func describeSpec(s hostspec.Spec) string {
	out := s.Host
	if s.User != "" {
		out += " as " + s.User
	}
	if s.Port != 0 {
		out += fmt.Sprintf(" on port %d", s.Port)
	}
	return out
}
