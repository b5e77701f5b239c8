package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yukikurage/taskforce/internal/services"
	"github.com/yukikurage/taskforce/internal/utils"
	"github.com/yukikurage/taskforce/internal/views"
)

func newBacklogCmd() *cobra.Command {
	backlogCmd := &cobra.Command{
		Use:   "backlog",
		Short: "Manage expected tasks awaiting assignment",
	}
	backlogCmd.AddCommand(newBacklogListCmd(), newBacklogAddCmd(), newBacklogRemoveCmd())
	return backlogCmd
}

func newBacklogView(a *app) *views.BacklogView {
	// The CLI never triggers from a backlog view; see the trigger command.
	return views.NewBacklogView(a.backlog, nil, a.logger)
}

func newBacklogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the backlog, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			view := newBacklogView(a)
			if err := view.Refresh(cmd.Context()); err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDESCRIPTION\tNOTE\tDEADLINE")
			for _, t := range view.Tasks() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.ID, t.Description, utils.Deref(t.Note), utils.FormatBacklogDate(t.Deadline))
			}
			return w.Flush()
		},
	}
}

func newBacklogAddCmd() *cobra.Command {
	var input services.AddTaskInput

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an expected task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := newBacklogView(a).AddTask(cmd.Context(), input); err != nil {
				return fmt.Errorf("error adding task: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %q to the backlog\n", input.Description)
			return nil
		},
	}
	addCmd.Flags().StringVar(&input.Description, "description", "", "what needs to be done (required)")
	addCmd.Flags().StringVar(&input.Deadline, "deadline", "", "deadline, RFC 3339 or YYYY-MM-DDTHH:MM")
	addCmd.Flags().StringVar(&input.Note, "note", "", "extra details")
	return addCmd
}

func newBacklogRemoveCmd() *cobra.Command {
	var yes bool

	removeCmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an expected task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			confirmed := yes || confirm(cmd, "Delete this expected task?")
			if err := newBacklogView(a).RemoveTask(cmd.Context(), id, confirmed); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed expected task %d\n", id)
			return nil
		},
	}
	removeCmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return removeCmd
}
