package cmd

import (
	"fmt"

	"github.com/bnema/thinkday/internal/application"
	"github.com/bnema/thinkday/internal/domain"
	"github.com/spf13/cobra"
)

type insightsOutput struct {
	SessionID       domain.SessionID
	Insights        application.Insights
	Recommendations []application.Recommendation
}

func newInsightsCmd(app *app) *cobra.Command {
	var sessionID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show insights and recommendations for a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, insights, err := app.service.Insights(domain.SessionID(sessionID))
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, insightsOutput{
					SessionID:       session.ID,
					Insights:        insights,
					Recommendations: insights.Recommendations(),
				})
			}

			rendered, err := app.insightsRenderer(session, insights)
			if err != nil {
				return fmt.Errorf("render insights: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	addSessionFlag(cmd.Flags(), &sessionID)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
