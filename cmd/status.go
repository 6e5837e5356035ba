package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the dashboard: active session progress and recent action steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dashboard := app.service.Dashboard()
			if asJSON {
				return writeJSON(cmd, dashboard)
			}

			rendered, err := app.dashboardRenderer(dashboard)
			if err != nil {
				return fmt.Errorf("render dashboard: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
