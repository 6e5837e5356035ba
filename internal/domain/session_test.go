package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestWheelOfLifeValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		wheel   WheelOfLife
		wantErr string
	}{
		{
			name:  "valid",
			wheel: WheelOfLife{Categories: []string{"A", "B"}, Scores: []int{1, 10}, Satisfaction: []int{5, 5}},
		},
		{
			name:    "misaligned scores",
			wheel:   WheelOfLife{Categories: []string{"A", "B"}, Scores: []int{1}, Satisfaction: []int{5, 5}},
			wantErr: "scores length 1 does not match 2 categories",
		},
		{
			name:    "misaligned satisfaction",
			wheel:   WheelOfLife{Categories: []string{"A"}, Scores: []int{1}, Satisfaction: nil},
			wantErr: "satisfaction length 0 does not match 1 categories",
		},
		{
			name:    "duplicate category",
			wheel:   WheelOfLife{Categories: []string{"A", "A"}, Scores: []int{1, 1}, Satisfaction: []int{1, 1}},
			wantErr: "duplicate wheel category",
		},
		{
			name:    "score out of range",
			wheel:   WheelOfLife{Categories: []string{"A"}, Scores: []int{11}, Satisfaction: []int{1}},
			wantErr: "rating out of range",
		},
		{
			name:    "satisfaction out of range",
			wheel:   WheelOfLife{Categories: []string{"A"}, Scores: []int{3}, Satisfaction: []int{0}},
			wantErr: "satisfaction for \"A\"",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.wheel.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestFearValidate(t *testing.T) {
	assert.NoError(t, Fear{Fear: "Run out of money", Likelihood: 3, Impact: 8}.Validate())
	assert.ErrorContains(t, Fear{Likelihood: 3, Impact: 8}.Validate(), "fear is required")
	assert.ErrorIs(t, Fear{Fear: "x", Likelihood: 0, Impact: 8}.Validate(), ErrInvalidRating)
	assert.ErrorContains(t, Fear{Fear: "x", Likelihood: 2, Impact: 11}.Validate(), "impact")
}

func TestJournalEntryValidate(t *testing.T) {
	assert.NoError(t, JournalEntry{Prompt: "p", Priority: intPtr(5), Category: JournalCategoryGrowth}.Validate())
	assert.NoError(t, JournalEntry{Prompt: "p"}.Validate())
	assert.ErrorContains(t, JournalEntry{Prompt: " "}.Validate(), "prompt is required")
	assert.ErrorIs(t, JournalEntry{Prompt: "p", Priority: intPtr(6)}.Validate(), ErrInvalidRating)
	assert.ErrorContains(t, JournalEntry{Prompt: "p", Category: "hobby"}.Validate(), "unsupported journal category")
}

func TestSessionComponents(t *testing.T) {
	session := NewSession("s-1", time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC))
	assert.Empty(t, session.Components())

	session.WheelOfLife = &WheelOfLife{}
	session.JournalEntries = []JournalEntry{{Prompt: "a"}, {Prompt: "b"}}
	session.ActionSteps = "1. go"

	assert.Equal(t, []string{"Wheel of Life", "2 Journal Entries", "Action Steps"}, session.Components())
}

func TestWheelOfLifeScoreOf(t *testing.T) {
	wheel := WheelOfLife{Categories: []string{"A", "B"}, Scores: []int{4, 9}}

	score, ok := wheel.ScoreOf("B")
	require.True(t, ok)
	assert.Equal(t, 9, score)

	_, ok = wheel.ScoreOf("C")
	assert.False(t, ok)
}

func TestAppStateCloneIsDeep(t *testing.T) {
	reviewDate := time.Date(2026, 11, 13, 0, 0, 0, 0, time.UTC)
	current := NewSession("s-2", time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC))
	current.WheelOfLife = &WheelOfLife{Categories: []string{"A"}, Scores: []int{7}, Satisfaction: []int{6}}
	current.FearSetting = &FearSetting{Fears: []Fear{{Fear: "f", Likelihood: 2, Impact: 2}}}
	current.JournalEntries = []JournalEntry{{Prompt: "p", Priority: intPtr(4)}}
	current.ReviewDate = &reviewDate

	state := NewAppState(DefaultSettings())
	state.CurrentSession = &current
	state.CompletedSessions = []Session{NewSession("s-1", time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))}

	clone := state.Clone()
	require.Equal(t, state, clone)

	clone.CurrentSession.WheelOfLife.Scores[0] = 1
	clone.CurrentSession.FearSetting.Fears[0].Fear = "changed"
	*clone.CurrentSession.JournalEntries[0].Priority = 1
	clone.Settings.WheelCategories[0] = "changed"
	clone.CompletedSessions[0].ActionSteps = "changed"

	assert.Equal(t, 7, state.CurrentSession.WheelOfLife.Scores[0])
	assert.Equal(t, "f", state.CurrentSession.FearSetting.Fears[0].Fear)
	assert.Equal(t, 4, *state.CurrentSession.JournalEntries[0].Priority)
	assert.Equal(t, "Mission", state.Settings.WheelCategories[0])
	assert.Empty(t, state.CompletedSessions[0].ActionSteps)
}

func TestStepNamesAndProgress(t *testing.T) {
	assert.Equal(t, "Wheel of Life", StepWheelOfLife.Name())
	assert.Equal(t, "Session Summary", StepSessionSummary.Name())
	assert.Equal(t, "", Step(7).Name())
	assert.InDelta(t, 0.2, StepWheelOfLife.Progress(), 1e-9)
	assert.InDelta(t, 1.0, StepSessionSummary.Progress(), 1e-9)
	assert.True(t, StepWheelOfLife.IsFirst())
	assert.True(t, StepSessionSummary.IsLast())
	assert.Equal(t, 5, StepCount)
}

func TestDefaultSettingsReturnsIndependentCopies(t *testing.T) {
	first := DefaultSettings()
	first.WheelCategories[0] = "changed"

	second := DefaultSettings()
	assert.Equal(t, "Mission", second.WheelCategories[0])
	assert.Len(t, second.WheelCategories, 10)
	assert.Len(t, second.JournalPrompts, 14)
}

func TestFearIsHighPriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		likelihood, impact int
		want               bool
	}{
		{likelihood: 6, impact: 7, want: true},
		{likelihood: 10, impact: 10, want: true},
		{likelihood: 5, impact: 10, want: false},
		{likelihood: 10, impact: 6, want: false},
	}

	for _, tc := range tests {
		fear := Fear{Fear: "x", Likelihood: tc.likelihood, Impact: tc.impact}
		assert.Equal(t, tc.want, fear.IsHighPriority(), "likelihood %d impact %d", tc.likelihood, tc.impact)
	}
}
