package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "td",
		Short:         "Think Day Sanctuary (td): guided reflection sessions in the terminal",
		Long:          "td walks you through a Think Day: score your Wheel of Life, work through Fear Setting, journal on prompts, commit to action steps, and review the insights. Everything is stored locally.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			wired, err := wireApp(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return app.close()
		},
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newStatusCmd(app),
		newSessionCmd(app),
		newWheelCmd(app),
		newFearCmd(app),
		newJournalCmd(app),
		newActionsCmd(app),
		newInsightsCmd(app),
		newSummaryCmd(app),
		newSettingsCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newMatrixCmd(),
	)

	return rootCmd
}

// withoutState skips loading and saving the journal for commands that do not
// touch it.
func withoutState(cmd *cobra.Command) *cobra.Command {
	skip := func(*cobra.Command, []string) error { return nil }
	cmd.PersistentPreRunE = skip
	cmd.PersistentPostRunE = skip
	return cmd
}
