package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/thinkday/internal/application"
	"github.com/bnema/thinkday/internal/domain"
	"github.com/spf13/cobra"
)

func newFearCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fear",
		Short: "Work through Fear Setting for the current session",
	}

	cmd.AddCommand(
		newFearCatalystCmd(app),
		newFearAddCmd(app),
		newFearBenefitsCmd(app),
		newFearCostsCmd(app),
	)

	return cmd
}

func newFearCatalystCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalyst <text>",
		Short: "Describe the decision or change you are afraid of",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.service.SetFearCatalyst(strings.Join(args, " ")); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "catalyst saved")
			return nil
		},
	}
}

func newFearAddCmd(app *app) *cobra.Command {
	var fear domain.Fear

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Define a fear, how to prevent it, and how to repair it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.AddFear(fear); err != nil {
				return err
			}
			priority := ""
			if fear.IsHighPriority() {
				priority = " (high priority)"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "fear added%s\n", priority)
			return nil
		},
	}

	cmd.Flags().StringVar(&fear.Fear, "fear", "", "What you are afraid of")
	cmd.Flags().StringVar(&fear.Prevent, "prevent", "", "What you could do to prevent it")
	cmd.Flags().StringVar(&fear.Repair, "repair", "", "How you could repair the damage")
	cmd.Flags().IntVar(&fear.Likelihood, "likelihood", 5, "Likelihood (1-10)")
	cmd.Flags().IntVar(&fear.Impact, "impact", 5, "Impact (1-10)")
	_ = cmd.MarkFlagRequired("fear")

	return cmd
}

func newFearBenefitsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "benefits <text>",
		Short: "Describe the benefits of an attempt or partial success",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.service.SetFearBenefits(strings.Join(args, " ")); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "benefits saved")
			return nil
		},
	}
}

func newFearCostsCmd(app *app) *cobra.Command {
	var sixMonths, oneYear, threeYears string

	cmd := &cobra.Command{
		Use:   "costs",
		Short: "Describe the cost of inaction over time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			costs := application.FearCostsCommand{}
			if cmd.Flags().Changed("six-months") {
				costs.SixMonths = &sixMonths
			}
			if cmd.Flags().Changed("one-year") {
				costs.OneYear = &oneYear
			}
			if cmd.Flags().Changed("three-years") {
				costs.ThreeYears = &threeYears
			}
			if costs.SixMonths == nil && costs.OneYear == nil && costs.ThreeYears == nil {
				return fmt.Errorf("set at least one of --six-months, --one-year, --three-years")
			}

			if err := app.service.SetFearCosts(costs); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "costs saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&sixMonths, "six-months", "", "Cost of inaction in 6 months")
	cmd.Flags().StringVar(&oneYear, "one-year", "", "Cost of inaction in 1 year")
	cmd.Flags().StringVar(&threeYears, "three-years", "", "Cost of inaction in 3 years")

	return cmd
}
