package cmd

import (
	"fmt"
	"strconv"

	"github.com/bnema/thinkday/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Start, navigate, and finish reflection sessions",
	}

	cmd.AddCommand(
		newSessionStartCmd(app),
		newSessionNextCmd(app),
		newSessionPrevCmd(app),
		newSessionCompleteCmd(app),
		newSessionEndCmd(app),
		newSessionShowCmd(app),
		newSessionRateCmd(app),
	)

	return cmd
}

func newSessionStartCmd(app *app) *cobra.Command {
	var guided bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new session, discarding any unfinished one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := app.service.StartSession(guided)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "started session %s\n", session.ID)
			if guided {
				return printWizard(cmd, app)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&guided, "guided", false, "Walk through the five steps in order")

	return cmd
}

func newSessionNextCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Move to the next step; completes the session on the last step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			completed, err := app.service.Next()
			if err != nil {
				return err
			}
			if completed {
				return printCompleted(cmd, app)
			}
			return printWizard(cmd, app)
		},
	}
}

func newSessionPrevCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prev",
		Short: "Move to the previous step; leaves the session on the first step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ended, err := app.service.Previous()
			if err != nil {
				return err
			}
			if ended {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "session ended")
				return nil
			}
			return printWizard(cmd, app)
		},
	}
}

func newSessionCompleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete",
		Short: "Mark the current session complete and move it to history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.service.Complete(); err != nil {
				return err
			}
			return printCompleted(cmd, app)
		},
	}
}

func newSessionEndCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "Discard the current session without saving it to history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.End(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "session ended")
			return nil
		},
	}
}

func newSessionShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current session and wizard position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := app.service.Wizard()
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, status)
			}
			return printWizard(cmd, app)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newSessionRateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <1-10>",
		Short: "Rate the current session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse rating %q: %w", args[0], err)
			}
			if err := app.service.RateSession(rating); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rated session %d/%d\n", rating, domain.MaxRating)
			return nil
		},
	}
}

func printWizard(cmd *cobra.Command, app *app) error {
	status, err := app.service.Wizard()
	if err != nil {
		return err
	}

	rendered, err := app.wizardRenderer(status)
	if err != nil {
		return fmt.Errorf("render wizard: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func printCompleted(cmd *cobra.Command, app *app) error {
	session, insights, err := app.service.Insights("")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "completed session %s\n", session.ID)

	rendered, err := app.insightsRenderer(session, insights)
	if err != nil {
		return fmt.Errorf("render insights: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
