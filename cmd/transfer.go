package cmd

import (
	"fmt"
	"os"

	"github.com/bnema/thinkday/internal/adapters/codec/jsonstate"
	"github.com/bnema/thinkday/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole journal as a JSON backup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := app.service.Export()
			if err != nil {
				return err
			}

			path, err := writeArtifact(cmd, output, jsonstate.BackupFileName(app.now()), data)
			if err != nil {
				return err
			}
			reportWritten(cmd, path)
			return nil
		},
	}

	addOutputFlag(cmd.Flags(), &output, "backup")

	return cmd
}

func newImportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the journal with a JSON backup",
		Long:  "Replace the journal with a JSON backup, including files exported by the browser version. A backup that fails to parse leaves the journal untouched.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}

			imported, err := app.service.Import(data)
			if err != nil {
				return err
			}

			app.logger.Info("imported backup", zap.String("path", args[0]), zap.Int("completed_sessions", len(imported.CompletedSessions)))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d completed sessions\n", len(imported.CompletedSessions))
			if imported.CurrentSession != nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "active session %s at step %d of %d\n", imported.CurrentSession.ID, int(imported.CurrentStep)+1, domain.StepCount)
			}
			return nil
		},
	}
}
