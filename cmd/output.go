package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const exportFileMode = 0o600

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeArtifact prints data when output is empty. Otherwise it writes a file,
// using defaultName inside output when output is a directory, and returns the
// path written.
func writeArtifact(cmd *cobra.Command, output, defaultName string, data []byte) (string, error) {
	if output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return "", err
	}

	if info, err := os.Stat(output); err == nil && info.IsDir() {
		output = filepath.Join(output, defaultName)
	}

	if err := os.WriteFile(output, data, exportFileMode); err != nil {
		return "", fmt.Errorf("write %s: %w", output, err)
	}
	return output, nil
}

func reportWritten(cmd *cobra.Command, path string) {
	if path != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	}
}

func addOutputFlag(flags *pflag.FlagSet, target *string, what string) {
	flags.StringVarP(target, "output", "o", "", fmt.Sprintf("Write the %s to this file or directory instead of stdout", what))
}

func addSessionFlag(flags *pflag.FlagSet, target *string) {
	flags.StringVar(target, "session", "", "Session ID (default: current session, else the most recent completed one)")
}
