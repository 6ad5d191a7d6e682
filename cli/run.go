package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (a *app) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <task> [args...]",
		Short: "Run a task body once, locally",
		Long:  "run invokes the task body on this machine with run-once and settings annotations honored. Host dispatch is the execution engine's job; this is for exercising a task without one.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := a.reg.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown task %q", args[0])
			}

			start := time.Now()
			result, err := t.Run(cmd.Context(), args[1:]...)
			if err != nil {
				if a.store.GetBool("warn_only") {
					a.log.Warn().Str("task", t.Name).Err(err).Msg("task failed (warn_only)")
					return nil
				}
				return fmt.Errorf("task %s: %w", t.Name, err)
			}

			a.log.Debug().Str("task", t.Name).Dur("elapsed", time.Since(start)).Msg("task finished")
			if result != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%v\n", result)
			}
			return nil
		},
	}
}
