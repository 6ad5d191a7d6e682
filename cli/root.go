// Package cli is the registry-inspection command surface. Embedding programs
// compile their task packages in (registration happens from init) and hand
// the registry and settings store to NewRootCmd.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/taskrig/taskrig/core/task"
	"github.com/taskrig/taskrig/pkg/logx"
	"github.com/taskrig/taskrig/runtime/settings"
)

type app struct {
	reg   *task.Registry
	store *settings.Store
	log   zerolog.Logger

	settingsFile string
	debug        bool
}

// NewRootCmd builds the taskrig command tree over the given registry and
// settings store.
func NewRootCmd(reg *task.Registry, store *settings.Store) *cobra.Command {
	a := &app{reg: reg, store: store, log: logx.Nop()}

	rootCmd := &cobra.Command{
		Use:           "taskrig",
		Short:         "Inspect and run annotated tasks",
		Long:          "taskrig lists the tasks a program registered, shows the scheduling metadata attached to them, and runs a task body locally.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "info"
			if a.debug {
				level = "debug"
			}
			a.log = logx.New(os.Stderr, level, true)
			if a.settingsFile != "" {
				if err := a.store.LoadFile(a.settingsFile); err != nil {
					return err
				}
				a.log.Debug().Str("path", a.settingsFile).Msg("settings loaded")
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.settingsFile, "settings", "", "Path to a YAML settings defaults file")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug output")

	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(a.newShowCmd())
	rootCmd.AddCommand(a.newRunCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}
