package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionDoesNotTouchState(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
	assert.NoDirExists(t, filepath.Join(home, ".thinkday"))
}

func TestStatusWithoutSession(t *testing.T) {
	home := t.TempDir()

	stdout, stderr, err := executeCLI(t, home, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "completed sessions: 0")
	assert.Contains(t, stdout, "No active session.")
	assert.Empty(t, stderr)
}

func TestGuidedSessionFlowPersistsAcrossInvocations(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "session", "start", "--guided")
	require.NoError(t, err)
	assert.Contains(t, stdout, "started session")
	assert.Contains(t, stdout, "Step 1 of 5")

	_, _, err = executeCLI(t, home, "wheel", "set", "--score", "Mission=9", "--score", "Money=3", "--satisfaction", "Joy=8")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "session", "next")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Step 2 of 5")

	_, _, err = executeCLI(t, home, "fear", "catalyst", "Take", "a", "sabbatical")
	require.NoError(t, err)
	stdout, _, err = executeCLI(t, home, "fear", "add", "--fear", "Career stalls", "--likelihood", "7", "--impact", "8")
	require.NoError(t, err)
	assert.Contains(t, stdout, "fear added (high priority)")
	_, _, err = executeCLI(t, home, "fear", "costs", "--one-year", "Burnout")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "session", "next")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "journal", "add", "--index", "1", "--response", "Build a school", "--priority", "5", "--category", "career")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "journal", "prompts")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[x] 1. What would I do if money were no object?")
	assert.Contains(t, stdout, "[ ] 2. ")

	_, _, err = executeCLI(t, home, "session", "next")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "actions", "set", "Before today...\n1. Talk to my manager\n- Book the cabin")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "actions", "items")
	require.NoError(t, err)
	assert.Equal(t, "1. Talk to my manager\n- Book the cabin\n", stdout)

	stdout, _, err = executeCLI(t, home, "session", "next")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Step 5 of 5")
	assert.Contains(t, stdout, "100% Complete")

	stdout, _, err = executeCLI(t, home, "session", "next")
	require.NoError(t, err)
	assert.Contains(t, stdout, "completed session")
	assert.Contains(t, stdout, "Focus on Growth Areas")
	assert.Contains(t, stdout, "Address Critical Fears")

	stdout, _, err = executeCLI(t, home, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "completed sessions: 1")
	assert.Contains(t, stdout, "Before today...")

	stdout, _, err = executeCLI(t, home, "journal", "history")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wheel of Life • Fear Setting • 1 Journal Entries • Action Steps")
}

func TestSessionPrevOnFirstStepEndsSession(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "session", "start", "--guided")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "session", "prev")
	require.NoError(t, err)
	assert.Contains(t, stdout, "session ended")

	_, _, err = executeCLI(t, home, "session", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active session")
}

func TestCommandsRequireActiveSession(t *testing.T) {
	home := t.TempDir()

	for _, args := range [][]string{
		{"session", "next"},
		{"wheel", "set", "--score", "Mission=5"},
		{"fear", "catalyst", "x"},
		{"journal", "add", "--prompt", "p", "--response", "r"},
		{"actions", "set", "x"},
		{"session", "rate", "7"},
	} {
		_, _, err := executeCLI(t, home, args...)
		require.Error(t, err, strings.Join(args, " "))
		assert.Contains(t, err.Error(), "no active session", strings.Join(args, " "))
	}
}

func TestWheelSetRejectsUnknownCategory(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "session", "start")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "wheel", "set", "--score", "Hobbies=4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown wheel category: "Hobbies"`)
}

func TestInsightsJSONOutput(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "session", "start")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "wheel", "set", "--score", "Mission=10")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "insights", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, `"TopStrengths": [`)
	assert.Contains(t, stdout, `"Mission"`)
	assert.Contains(t, stdout, `"Recommendations"`)
}

func TestExportImportRoundTrip(t *testing.T) {
	home := t.TempDir()
	outDir := t.TempDir()

	_, _, err := executeCLI(t, home, "session", "start")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "actions", "set", "1. Export")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "session", "complete")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "export", "--output", outDir)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "wrote "))
	backupPath := strings.TrimSpace(strings.TrimPrefix(stdout, "wrote "))
	assert.Regexp(t, `think-day-sanctuary-backup-\d{4}-\d{2}-\d{2}\.json$`, backupPath)

	otherHome := t.TempDir()
	stdout, _, err = executeCLI(t, otherHome, "import", backupPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "imported 1 completed sessions")

	stdout, _, err = executeCLI(t, otherHome, "journal", "history")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1. Export")
}

func TestImportRejectsMalformedBackupAndKeepsState(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "session", "start")
	require.NoError(t, err)

	backup := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(backup, []byte(`{"completedSessions": "nope"}`), 0o600))

	_, _, err = executeCLI(t, home, "import", backup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid backup")

	stdout, _, err := executeCLI(t, home, "session", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Step 1 of 5")
}

func TestCorruptSlotWarnsAndStartsFresh(t *testing.T) {
	home := t.TempDir()
	dataDir := filepath.Join(home, ".thinkday")
	require.NoError(t, os.MkdirAll(dataDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "thinkDaySanctuaryState.json"), []byte("{broken"), 0o600))

	stdout, stderr, err := executeCLI(t, home, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "completed sessions: 0")
	assert.Contains(t, stderr, "warning: Error loading data: Starting with a fresh session.")
}

func TestSQLiteBackendPersists(t *testing.T) {
	home := t.TempDir()
	t.Setenv("THINKDAY_STORAGE_BACKEND", "sqlite")

	_, _, err := executeCLI(t, home, "session", "start", "--guided")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "session", "next")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "session", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Step 2 of 5")
	assert.FileExists(t, filepath.Join(home, ".thinkday", "thinkday.db"))
}

func TestSettingsEditing(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "settings", "category", "add", "Travel")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "settings", "category", "rename", "Joy", "Play")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "settings", "prompt", "add", "What am I avoiding?")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "settings", "prompt", "remove", "1")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "  Travel\n")
	assert.Contains(t, stdout, "  Play\n")
	assert.NotContains(t, stdout, "  Joy\n")
	assert.Contains(t, stdout, "14. What am I avoiding?")
	assert.NotContains(t, stdout, "What would I do if money were no object?")

	_, _, err = executeCLI(t, home, "settings", "category", "add", "Travel")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate wheel category")
}

func TestSettingsContentSeedsNewJournal(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "settings", "category", "add", "Travel")
	require.NoError(t, err)

	contentPath := filepath.Join(t.TempDir(), "content.toml")
	_, _, err = executeCLI(t, home, "settings", "content", "--output", contentPath)
	require.NoError(t, err)

	otherHome := t.TempDir()
	t.Setenv("THINKDAY_CONTENT_PATH", contentPath)
	stdout, _, err := executeCLI(t, otherHome, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "  Travel\n")
}

func TestReviewAndICSExport(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "session", "start")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "actions", "ics")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no review date set")

	stdout, _, err := executeCLI(t, home, "actions", "review", "--date", "2026-11-13")
	require.NoError(t, err)
	assert.Contains(t, stdout, "review scheduled for 2026-11-13")

	stdout, _, err = executeCLI(t, home, "actions", "ics")
	require.NoError(t, err)
	assert.Contains(t, stdout, "DTSTART;VALUE=DATE:20261113")
	assert.Contains(t, stdout, "SUMMARY:Review Think Day Action Plan")
}

func TestSummaryWritesFile(t *testing.T) {
	home := t.TempDir()
	outDir := t.TempDir()

	_, _, err := executeCLI(t, home, "session", "start")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "fear", "catalyst", "Move cities")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "summary", "--output", outDir)
	require.NoError(t, err)
	path := strings.TrimSpace(strings.TrimPrefix(stdout, "wrote "))
	assert.Regexp(t, `think-day-session-\d{1,2}-\d{1,2}-\d{4}\.txt$`, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "THINK DAY SANCTUARY - SESSION SUMMARY\n"))
	assert.Contains(t, string(data), "Catalyst: Move cities")
}

func TestMatrix(t *testing.T) {
	home := t.TempDir()

	tests := []struct {
		impact, effort string
		want           string
	}{
		{impact: "8", effort: "2", want: "Quick win (quick-win)\n"},
		{impact: "9", effort: "9", want: "Major project (major-project)\n"},
		{impact: "3", effort: "4", want: "Fill-in (fill-in)\n"},
		{impact: "2", effort: "8", want: "Thankless task (thankless)\n"},
	}

	for _, tc := range tests {
		stdout, _, err := executeCLI(t, home, "matrix", "--impact", tc.impact, "--effort", tc.effort)
		require.NoError(t, err)
		assert.Equal(t, tc.want, stdout)
	}

	_, _, err := executeCLI(t, home, "matrix", "--impact", "11", "--effort", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rating out of range")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
