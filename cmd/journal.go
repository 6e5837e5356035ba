package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/thinkday/internal/application"
	"github.com/bnema/thinkday/internal/domain"
	"github.com/spf13/cobra"
)

const historySeparator = " • "

func newJournalCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Answer reflection prompts and browse past sessions",
	}

	cmd.AddCommand(
		newJournalPromptsCmd(app),
		newJournalAddCmd(app),
		newJournalHistoryCmd(app),
	)

	return cmd
}

func newJournalPromptsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prompts",
		Short: "List the configured prompts, marking answered ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := app.service.State()
			answered := map[string]bool{}
			if state.CurrentSession != nil {
				for _, entry := range state.CurrentSession.JournalEntries {
					answered[entry.Prompt] = true
				}
			}

			for i, prompt := range state.Settings.JournalPrompts {
				marker := " "
				if answered[prompt] {
					marker = "x"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %d. %s\n", marker, i+1, prompt)
			}
			return nil
		},
	}
}

func newJournalAddCmd(app *app) *cobra.Command {
	var prompt, response, category string
	var index, priority int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a response to a prompt; answering the same prompt again replaces it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entry := application.JournalEntryCommand{
				Prompt:   prompt,
				Response: response,
				Category: domain.JournalCategory(strings.ToLower(strings.TrimSpace(category))),
			}
			if cmd.Flags().Changed("index") {
				zeroBased := index - 1
				entry.PromptIndex = &zeroBased
			}
			if cmd.Flags().Changed("priority") {
				entry.Priority = &priority
			}

			saved, err := app.service.AddJournalEntry(entry)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved response to %q\n", saved.Prompt)
			return nil
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "", "Prompt text")
	cmd.Flags().IntVar(&index, "index", 0, "Prompt number as listed by `td journal prompts`")
	cmd.Flags().StringVar(&response, "response", "", "Your response")
	cmd.Flags().IntVar(&priority, "priority", 0, "Insight priority (1-5)")
	cmd.Flags().StringVar(&category, "category", "", "reflection, growth, relationship, career, health, or financial")
	cmd.MarkFlagsOneRequired("prompt", "index")
	cmd.MarkFlagsMutuallyExclusive("prompt", "index")
	_ = cmd.MarkFlagRequired("response")

	return cmd
}

func newJournalHistoryCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List completed sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			history := app.service.History()
			if len(history) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No completed sessions yet.")
				return nil
			}

			for _, entry := range history {
				components := strings.Join(entry.Components, historySeparator)
				if components == "" {
					components = "empty"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", entry.SessionID, entry.Date.Local().Format("2006-01-02"), components)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\t%s\n", entry.FirstStep)
			}
			return nil
		},
	}
}
