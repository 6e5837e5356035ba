package cmd

import (
	"fmt"

	"github.com/bnema/thinkday/internal/application"
	"github.com/spf13/cobra"
)

func newWheelCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wheel",
		Short: "Score the Wheel of Life for the current session",
	}

	cmd.AddCommand(
		newWheelSetCmd(app),
		newWheelShowCmd(app),
	)

	return cmd
}

func newWheelSetCmd(app *app) *cobra.Command {
	var scores map[string]int
	var satisfaction map[string]int
	var notes string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set category scores (1-10); unrated categories keep their value or default to 5",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wheel, err := app.service.SetWheelScores(application.WheelScoresCommand{
				Scores:       scores,
				Satisfaction: satisfaction,
				Notes:        notes,
			})
			if err != nil {
				return err
			}

			for i, category := range wheel.Categories {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tscore %d\tsatisfaction %d\n", category, wheel.Scores[i], wheel.Satisfaction[i])
			}
			return nil
		},
	}

	cmd.Flags().StringToIntVar(&scores, "score", nil, "Category score, e.g. --score Mission=8 (repeatable)")
	cmd.Flags().StringToIntVar(&satisfaction, "satisfaction", nil, "Category satisfaction, e.g. --satisfaction Joy=6 (repeatable)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes about the wheel")

	return cmd
}

func newWheelShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the wheel of the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.service.Session("")
			if err != nil {
				return err
			}
			if session.WheelOfLife == nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Wheel of Life not completed")
				return nil
			}

			wheel := session.WheelOfLife
			for i, category := range wheel.Categories {
				if i >= len(wheel.Scores) || i >= len(wheel.Satisfaction) {
					break
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tscore %d\tsatisfaction %d\n", category, wheel.Scores[i], wheel.Satisfaction[i])
			}
			if wheel.Notes != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "notes: %s\n", wheel.Notes)
			}
			return nil
		},
	}
}
