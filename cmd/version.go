package cmd

import (
	"fmt"

	"github.com/bnema/thinkday/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return withoutState(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Version)
			return err
		},
	})
}
