package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yukikurage/taskforce/internal/models"
	"github.com/yukikurage/taskforce/internal/services"
	"github.com/yukikurage/taskforce/internal/views"
)

func newMembersCmd() *cobra.Command {
	membersCmd := &cobra.Command{
		Use:   "members",
		Short: "Manage the team roster",
	}
	membersCmd.AddCommand(newMembersListCmd(), newMembersAddCmd(), newMembersRemoveCmd())
	return membersCmd
}

func newMembersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List members, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			view := views.NewMemberView(a.members, a.logger)
			if err := view.Refresh(cmd.Context()); err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSKILLS\tSTATUS")
			for _, m := range view.Members() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", m.ID, m.FullName, m.Email, m.Skills, m.Status)
			}
			return w.Flush()
		},
	}
}

func newMembersAddCmd() *cobra.Command {
	var input services.AddMemberInput
	var status string

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			input.Status = models.MemberStatus(status)
			view := views.NewMemberView(a.members, a.logger)
			if err := view.AddMember(cmd.Context(), input); err != nil {
				return fmt.Errorf("error adding member: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s <%s>\n", input.FullName, input.Email)
			return nil
		},
	}
	addCmd.Flags().StringVar(&input.FullName, "name", "", "full name (required)")
	addCmd.Flags().StringVar(&input.Email, "email", "", "email address (required)")
	addCmd.Flags().StringVar(&input.Skills, "skills", "", "comma-separated skills")
	addCmd.Flags().StringVar(&status, "status", string(models.MemberStatusActive), "Active or Inactive")
	return addCmd
}

func newMembersRemoveCmd() *cobra.Command {
	var yes bool

	removeCmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid member id %q", args[0])
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			confirmed := yes || confirm(cmd, "Are you sure?")
			view := views.NewMemberView(a.members, a.logger)
			if err := view.RemoveMember(cmd.Context(), id, confirmed); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed member %d\n", id)
			return nil
		},
	}
	removeCmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return removeCmd
}
