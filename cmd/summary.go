package cmd

import (
	"github.com/bnema/thinkday/internal/adapters/export/textsummary"
	"github.com/bnema/thinkday/internal/domain"
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *app) *cobra.Command {
	var sessionID string
	var output string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Export a plain-text summary of a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, insights, err := app.service.Insights(domain.SessionID(sessionID))
			if err != nil {
				return err
			}

			text := textsummary.Render(session, insights, nil) + "\n"
			path, err := writeArtifact(cmd, output, textsummary.FileName(session, nil), []byte(text))
			if err != nil {
				return err
			}
			reportWritten(cmd, path)
			return nil
		},
	}

	addSessionFlag(cmd.Flags(), &sessionID)
	addOutputFlag(cmd.Flags(), &output, "summary")

	return cmd
}
