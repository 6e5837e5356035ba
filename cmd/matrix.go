package cmd

import (
	"fmt"

	"github.com/bnema/thinkday/internal/domain"
	"github.com/spf13/cobra"
)

func newMatrixCmd() *cobra.Command {
	var impact, effort int

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Place an action on the impact/effort priority matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateMatrixRating("impact", impact); err != nil {
				return err
			}
			if err := validateMatrixRating("effort", effort); err != nil {
				return err
			}

			quadrant := domain.CalculatePriority(impact, effort)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", quadrant.Label(), quadrant)
			return err
		},
	}

	cmd.Flags().IntVar(&impact, "impact", 0, "Impact (1-10)")
	cmd.Flags().IntVar(&effort, "effort", 0, "Effort (1-10)")
	_ = cmd.MarkFlagRequired("impact")
	_ = cmd.MarkFlagRequired("effort")

	return withoutState(cmd)
}

func validateMatrixRating(name string, value int) error {
	if value < domain.MinRating || value > domain.MaxRating {
		return fmt.Errorf("%s: %w: %d not in [%d, %d]", name, domain.ErrInvalidRating, value, domain.MinRating, domain.MaxRating)
	}
	return nil
}
