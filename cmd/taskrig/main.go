package main

import (
	"fmt"
	"os"

	"github.com/taskrig/taskrig/cli"
	"github.com/taskrig/taskrig/core/task"
	"github.com/taskrig/taskrig/runtime/settings"
)

func main() {
	rootCmd := cli.NewRootCmd(task.Global(), settings.Default())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
