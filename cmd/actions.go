package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bnema/thinkday/internal/adapters/export/ics"
	"github.com/bnema/thinkday/internal/domain"
	"github.com/spf13/cobra"
)

const reviewDateLayout = "2006-01-02"

var errNoReviewDate = errors.New("no review date set; run `td actions review` first")

func newActionsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actions",
		Short: "Write the action plan and schedule its review",
	}

	cmd.AddCommand(
		newActionsSetCmd(app),
		newActionsTemplateCmd(),
		newActionsItemsCmd(app),
		newActionsReviewCmd(app),
		newActionsICSCmd(app),
	)

	return cmd
}

func newActionsSetCmd(app *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "set [text]",
		Short: "Replace the action plan of the current session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := actionPlanText(cmd, file, args)
			if err != nil {
				return err
			}
			if err := app.service.SetActionSteps(text); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "action plan saved (%d action items)\n", len(domain.ActionItems(text)))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Read the plan from a file, or - for stdin")

	return cmd
}

func actionPlanText(cmd *cobra.Command, file string, args []string) (string, error) {
	switch {
	case file != "" && len(args) > 0:
		return "", errors.New("pass the plan as an argument or with --file, not both")
	case file == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read action plan from stdin: %w", err)
		}
		return string(data), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read action plan file: %w", err)
		}
		return string(data), nil
	case len(args) == 1:
		return args[0], nil
	default:
		return "", errors.New("pass the plan as an argument or with --file")
	}
}

func newActionsTemplateCmd() *cobra.Command {
	return withoutState(&cobra.Command{
		Use:   "template",
		Short: "Print a starting template for the action plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), domain.ActionPlanTemplate)
			return err
		},
	})
}

func newActionsItemsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: "Print the numbered and bulleted lines of the action plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := app.service.ActionItems()
			if err != nil {
				return err
			}
			if len(items) == 0 {
				return errors.New("no action points found")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(items, "\n"))
			return err
		},
	}
}

func newActionsReviewCmd(app *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Schedule the review of this plan (default: 30 days from now)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var at time.Time
			if date != "" {
				parsed, err := time.Parse(reviewDateLayout, date)
				if err != nil {
					return fmt.Errorf("parse review date %q: %w", date, err)
				}
				at = parsed
			}

			scheduled, err := app.service.ScheduleReview(at)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "review scheduled for %s\n", scheduled.Format(reviewDateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Review date as YYYY-MM-DD")

	return cmd
}

func newActionsICSCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Export the review date as an iCalendar reminder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.service.Session("")
			if err != nil {
				return err
			}
			if session.ReviewDate == nil {
				return errNoReviewDate
			}

			path, err := writeArtifact(cmd, output, ics.FileName, ics.Reminder(session.ID, *session.ReviewDate, app.now()))
			if err != nil {
				return err
			}
			reportWritten(cmd, path)
			return nil
		},
	}

	addOutputFlag(cmd.Flags(), &output, "calendar file")

	return cmd
}
