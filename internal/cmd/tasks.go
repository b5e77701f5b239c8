package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yukikurage/taskforce/internal/utils"
	"github.com/yukikurage/taskforce/internal/views"
)

func newTasksCmd() *cobra.Command {
	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "Show assigned tasks",
	}
	tasksCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List assigned tasks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			view := views.NewStatusView(a.tasks, a.logger)
			if err := view.Refresh(cmd.Context()); err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTASK\tASSIGNEE\tSTATUS\tSTART\tEND\tDEADLINE")
			for _, t := range view.Tasks() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					t.ID,
					utils.Deref(t.TaskName),
					utils.Deref(t.Assignee),
					utils.Deref(t.Status),
					utils.FormatStatusDate(t.Start),
					utils.FormatStatusDate(t.End),
					utils.FormatStatusDate(t.Deadline),
				)
			}
			return w.Flush()
		},
	})
	return tasksCmd
}
