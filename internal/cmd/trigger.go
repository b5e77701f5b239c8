package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/yukikurage/taskforce/internal/config"
	"github.com/yukikurage/taskforce/internal/constants"
	"github.com/yukikurage/taskforce/internal/trigger"
)

func newTriggerCmd() *cobra.Command {
	var serverURL string

	triggerCmd := &cobra.Command{
		Use:   "trigger",
		Short: "Ask a running server to assign the whole backlog",
		Long: `Trigger calls GET /api/trigger-ai on a running taskforce server, which in
turn fires the assignment workflow. Every task in the backlog is assigned.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if serverURL == "" {
				serverURL = "http://localhost" + config.Load().Addr()
			}

			client := trigger.NewProxyClient(serverURL, &http.Client{Timeout: constants.DefaultTriggerTimeout + 10*time.Second})
			result, err := client.TriggerAssignment(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to trigger: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), constants.TriggerSuccessMessage)
			if len(result.Data) > 0 && string(result.Data) != "null" {
				fmt.Fprintln(cmd.OutOrStdout(), string(result.Data))
			}
			return nil
		},
	}
	triggerCmd.Flags().StringVar(&serverURL, "server", "", "base URL of the taskforce server (default http://localhost:$PORT)")
	return triggerCmd
}
