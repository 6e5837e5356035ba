package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	contenttoml "github.com/bnema/thinkday/internal/adapters/content/toml"
	"github.com/bnema/thinkday/internal/config"
	"github.com/spf13/cobra"
)

const contentFileName = "content.toml"

func newSettingsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Customize wheel categories and journal prompts",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsCategoryCmd(app),
		newSettingsPromptCmd(app),
		newSettingsContentCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List wheel categories and journal prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := app.service.State().Settings
			if asJSON {
				return writeJSON(cmd, settings)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Wheel categories:")
			for _, category := range settings.WheelCategories {
				_, _ = fmt.Fprintf(out, "  %s\n", category)
			}
			_, _ = fmt.Fprintln(out, "Journal prompts:")
			for i, prompt := range settings.JournalPrompts {
				_, _ = fmt.Fprintf(out, "  %d. %s\n", i+1, prompt)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newSettingsCategoryCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Add, rename, or remove wheel categories",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <name>",
			Short: "Add a wheel category",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				name := strings.Join(args, " ")
				if err := app.service.AddWheelCategory(name); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added category %q\n", strings.TrimSpace(name))
				return nil
			},
		},
		&cobra.Command{
			Use:   "rename <from> <to>",
			Short: "Rename a wheel category in place",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.service.RenameWheelCategory(args[0], args[1]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "renamed category %q to %q\n", args[0], strings.TrimSpace(args[1]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <name>",
			Short: "Remove a wheel category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.service.RemoveWheelCategory(args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed category %q\n", args[0])
				return nil
			},
		},
	)

	return cmd
}

func newSettingsPromptCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Add or remove journal prompts",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <text>",
			Short: "Append a journal prompt",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.service.AddJournalPrompt(strings.Join(args, " ")); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added prompt %d\n", len(app.service.State().Settings.JournalPrompts))
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <number>",
			Short: "Remove a journal prompt by its number in `td settings show`",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				number, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("parse prompt number %q: %w", args[0], err)
				}
				if err := app.service.RemoveJournalPrompt(number - 1); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed prompt %d\n", number)
				return nil
			},
		},
	)

	return cmd
}

func newSettingsContentCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "content",
		Short: "Write the current categories and prompts as a TOML content file",
		Long:  "Write the current categories and prompts as a TOML content file. Point content.path at it to seed new journals with the same content.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := output
			if path == "" {
				path = filepath.Join(app.config.Storage.Dir, contentFileName)
			}

			if err := contenttoml.Write(path, app.service.State().Settings); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			if app.config.Content.Path != path {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "set content.path = %q in ~/%s/config.toml to use it\n", path, config.DataDirName)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Content file path (default: <storage.dir>/content.toml)")

	return cmd
}
