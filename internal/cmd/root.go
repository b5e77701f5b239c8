// Package cmd holds the taskforce command tree.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the taskforce command and its subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "taskforce",
		Short: "AI TaskForce dashboard and assignment trigger",
		Long: `TaskForce manages a team roster and a backlog of expected tasks, hands the
backlog to an external assignment workflow, and shows the resulting task
board.

Configuration comes from the environment (and a .env file when present).`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(
		newServeCmd(),
		newMembersCmd(),
		newBacklogCmd(),
		newTasksCmd(),
		newTriggerCmd(),
	)
	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
