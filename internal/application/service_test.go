package application

import (
	"fmt"
	"testing"
	"time"

	"github.com/bnema/thinkday/internal/adapters/codec/jsonstate"
	"github.com/bnema/thinkday/internal/domain"
	"github.com/bnema/thinkday/internal/ports/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sequenceIDs struct {
	next int
}

func (s *sequenceIDs) NewSessionID() domain.SessionID {
	s.next++
	return domain.SessionID(fmt.Sprintf("session-%d", s.next))
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(testStartedAt.Add(1500 * time.Microsecond)).Maybe()

	store := NewStore(domain.NewAppState(domain.DefaultSettings()), nil)
	return NewService(store, jsonstate.Codec{}, clock, &sequenceIDs{}, nil)
}

func TestServiceStartSessionUsesClockAndIDs(t *testing.T) {
	t.Parallel()

	service := newTestService(t)

	session := service.StartSession(true)

	assert.Equal(t, domain.SessionID("session-1"), session.ID)
	assert.Equal(t, testStartedAt.Add(time.Millisecond), session.Date)
	assert.True(t, service.State().IsGuidedSession)
}

func TestServiceRequiresActiveSession(t *testing.T) {
	t.Parallel()

	service := newTestService(t)

	_, err := service.Next()
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
	_, err = service.Previous()
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
	_, err = service.Complete()
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
	assert.ErrorIs(t, service.End(), domain.ErrNoActiveSession)
	_, err = service.SetWheelScores(WheelScoresCommand{})
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
	assert.ErrorIs(t, service.SetFearCatalyst("x"), domain.ErrNoActiveSession)
	assert.ErrorIs(t, service.AddFear(domain.Fear{Fear: "x", Likelihood: 1, Impact: 1}), domain.ErrNoActiveSession)
	_, err = service.AddJournalEntry(JournalEntryCommand{Prompt: "p"})
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
	assert.ErrorIs(t, service.SetActionSteps("x"), domain.ErrNoActiveSession)
	_, err = service.ScheduleReview(time.Time{})
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
	assert.ErrorIs(t, service.RateSession(5), domain.ErrNoActiveSession)
	_, err = service.Wizard()
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestServiceNextCompletesOnLastStep(t *testing.T) {
	t.Parallel()

	service := newTestService(t)
	service.StartSession(true)

	for range domain.StepCount - 1 {
		completed, err := service.Next()
		require.NoError(t, err)
		require.False(t, completed)
	}
	assert.Equal(t, domain.LastStep, service.State().CurrentStep)

	completed, err := service.Next()
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Nil(t, service.State().CurrentSession)
	assert.Len(t, service.State().CompletedSessions, 1)
}

func TestServicePreviousEndsOnFirstStep(t *testing.T) {
	t.Parallel()

	service := newTestService(t)
	service.StartSession(true)
	_, err := service.Next()
	require.NoError(t, err)

	ended, err := service.Previous()
	require.NoError(t, err)
	assert.False(t, ended)

	ended, err = service.Previous()
	require.NoError(t, err)
	assert.True(t, ended)
	assert.Nil(t, service.State().CurrentSession)
	assert.Empty(t, service.State().CompletedSessions)
}

func TestServiceSetWheelScoresFillsDefaultsAndKeepsPrevious(t *testing.T) {
	t.Parallel()

	service := newTestService(t)
	service.StartSession(false)

	wheel, err := service.SetWheelScores(WheelScoresCommand{
		Scores:       map[string]int{"Mission": 9},
		Satisfaction: map[string]int{"Joy": 2},
		Notes:        "first pass",
	})
	require.NoError(t, err)
	require.Len(t, wheel.Scores, 10)
	assert.Equal(t, 9, wheel.Scores[0])
	assert.Equal(t, domain.DefaultWheelScore, wheel.Scores[1])
	assert.Equal(t, 2, wheel.Satisfaction[9])

	wheel, err = service.SetWheelScores(WheelScoresCommand{Scores: map[string]int{"Family": 7}})
	require.NoError(t, err)
	assert.Equal(t, 9, wheel.Scores[0])
	assert.Equal(t, 7, wheel.Scores[1])
	assert.Equal(t, 2, wheel.Satisfaction[9])
	assert.Equal(t, "first pass", wheel.Notes)
	assert.Equal(t, &wheel, service.State().CurrentSession.WheelOfLife)
}

func TestServiceSetWheelScoresRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	service := newTestService(t)
	service.StartSession(false)

	_, err := service.SetWheelScores(WheelScoresCommand{Scores: map[string]int{"Hobbies": 3}})
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)

	_, err = service.SetWheelScores(WheelScoresCommand{Scores: map[string]int{"Mission": 11}})
	assert.ErrorIs(t, err, domain.ErrInvalidRating)
	assert.Nil(t, service.State().CurrentSession.WheelOfLife)
}

func TestServiceFearSettingEdits(t *testing.T) {
	t.Parallel()

	service := newTestService(t)
	service.StartSession(false)

	require.NoError(t, service.SetFearCatalyst("Start a company"))
	require.NoError(t, service.AddFear(domain.Fear{Fear: "Fail publicly", Prevent: "Validate early", Repair: "Get a job", Likelihood: 6, Impact: 8}))
	require.NoError(t, service.AddFear(domain.Fear{Fear: "Burn savings", Likelihood: 4, Impact: 6}))
	require.NoError(t, service.SetFearBenefits("Autonomy"))
	require.NoError(t, service.SetFearCosts(FearCostsCommand{SixMonths: stringPtr("Boredom")}))
	require.NoError(t, service.SetFearCosts(FearCostsCommand{ThreeYears: stringPtr("Regret")}))

	assert.Error(t, service.AddFear(domain.Fear{Fear: "", Likelihood: 5, Impact: 5}))
	assert.ErrorIs(t, service.AddFear(domain.Fear{Fear: "x", Likelihood: 0, Impact: 5}), domain.ErrInvalidRating)

	fear := service.State().CurrentSession.FearSetting
	require.NotNil(t, fear)
	assert.Equal(t, "Start a company", fear.Catalyst)
	assert.Equal(t, "Autonomy", fear.Benefits)
	assert.Len(t, fear.Fears, 2)
	assert.Equal(t, domain.Costs{SixMonths: "Boredom", ThreeYears: "Regret"}, fear.Costs)
}

func TestServiceAddJournalEntryResolvesPromptIndex(t *testing.T) {
	t.Parallel()

	service := newTestService(t)
	service.StartSession(false)
	prompts := service.State().Settings.JournalPrompts

	entry, err := service.AddJournalEntry(JournalEntryCommand{
		PromptIndex: intPtr(1),
		Response:    "Teach",
		Priority:    intPtr(4),
		Category:    domain.JournalCategoryCareer,
	})
	require.NoError(t, err)
	assert.Equal(t, prompts[1], entry.Prompt)

	_, err = service.AddJournalEntry(JournalEntryCommand{PromptIndex: intPtr(len(prompts)), Response: "x"})
	assert.ErrorIs(t, err, domain.ErrUnknownPrompt)

	_, err = service.AddJournalEntry(JournalEntryCommand{Prompt: "Custom", Priority: intPtr(6)})
	assert.ErrorIs(t, err, domain.ErrInvalidRating)

	assert.Equal(t, []domain.JournalEntry{entry}, service.State().CurrentSession.JournalEntries)
}

func TestServiceScheduleReviewDefaultsToThirtyDays(t *testing.T) {
	t.Parallel()

	service := newTestService(t)
	service.StartSession(false)

	at, err := service.ScheduleReview(time.Time{})
	require.NoError(t, err)
	assert.Equal(t, testStartedAt.Add(time.Millisecond).AddDate(0, 0, 30), at)

	explicit := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	at, err = service.ScheduleReview(explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, *service.State().CurrentSession.ReviewDate)
	assert.Equal(t, explicit, at)
}

func TestServiceRateSessionValidates(t *testing.T) {
	t.Parallel()

	service := newTestService(t)
	service.StartSession(false)

	assert.ErrorIs(t, service.RateSession(0), domain.ErrInvalidRating)
	require.NoError(t, service.RateSession(10))
	assert.Equal(t, 10, *service.State().CurrentSession.SessionRating)
}

func TestServiceWheelCategorySettings(t *testing.T) {
	t.Parallel()

	service := newTestService(t)

	require.NoError(t, service.AddWheelCategory("  Travel "))
	assert.Contains(t, service.State().Settings.WheelCategories, "Travel")
	assert.ErrorIs(t, service.AddWheelCategory("Travel"), domain.ErrDuplicateCategory)
	assert.ErrorIs(t, service.AddWheelCategory(" "), domain.ErrEmptyValue)

	require.NoError(t, service.RenameWheelCategory("Joy", "Play"))
	categories := service.State().Settings.WheelCategories
	assert.Equal(t, "Play", categories[9])
	assert.ErrorIs(t, service.RenameWheelCategory("Joy", "Fun"), domain.ErrUnknownCategory)
	assert.ErrorIs(t, service.RenameWheelCategory("Play", "Money"), domain.ErrDuplicateCategory)

	require.NoError(t, service.RemoveWheelCategory("Travel"))
	assert.NotContains(t, service.State().Settings.WheelCategories, "Travel")
	assert.ErrorIs(t, service.RemoveWheelCategory("Travel"), domain.ErrUnknownCategory)

	for _, category := range service.State().Settings.WheelCategories[1:] {
		require.NoError(t, service.RemoveWheelCategory(category))
	}
	assert.ErrorIs(t, service.RemoveWheelCategory("Mission"), domain.ErrLastCategory)
	assert.Equal(t, []string{"Mission"}, service.State().Settings.WheelCategories)
}

func TestServiceJournalPromptSettings(t *testing.T) {
	t.Parallel()

	service := newTestService(t)
	before := len(service.State().Settings.JournalPrompts)

	require.NoError(t, service.AddJournalPrompt("What am I avoiding?"))
	prompts := service.State().Settings.JournalPrompts
	require.Len(t, prompts, before+1)
	assert.Equal(t, "What am I avoiding?", prompts[before])

	require.NoError(t, service.RemoveJournalPrompt(0))
	assert.Len(t, service.State().Settings.JournalPrompts, before)
	assert.ErrorIs(t, service.RemoveJournalPrompt(before), domain.ErrUnknownPrompt)
	assert.ErrorIs(t, service.AddJournalPrompt(""), domain.ErrEmptyValue)
}

func TestServiceExportImportRoundTrip(t *testing.T) {
	t.Parallel()

	source := newTestService(t)
	source.StartSession(false)
	require.NoError(t, source.SetActionSteps("1. Ship it"))
	_, err := source.Complete()
	require.NoError(t, err)
	source.StartSession(true)

	data, err := source.Export()
	require.NoError(t, err)

	target := newTestService(t)
	imported, err := target.Import(data)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(source.State(), imported))
	assert.Empty(t, cmp.Diff(source.State(), target.State()))
}

func TestServiceImportRejectsInvalidBackup(t *testing.T) {
	t.Parallel()

	service := newTestService(t)
	service.StartSession(false)
	before := service.State()

	_, err := service.Import([]byte(`{"currentStep": "two"}`))

	require.ErrorIs(t, err, domain.ErrInvalidBackup)
	assert.Empty(t, cmp.Diff(before, service.State()))
}

func TestServiceSessionLookup(t *testing.T) {
	t.Parallel()

	service := newTestService(t)

	_, err := service.Session("")
	assert.ErrorIs(t, err, domain.ErrNoSessionData)

	service.StartSession(false)
	first, err := service.Complete()
	require.NoError(t, err)

	session, err := service.Session("")
	require.NoError(t, err)
	assert.Equal(t, first.ID, session.ID)

	current := service.StartSession(false)
	session, err = service.Session("")
	require.NoError(t, err)
	assert.Equal(t, current.ID, session.ID)

	session, err = service.Session(first.ID)
	require.NoError(t, err)
	assert.True(t, session.IsComplete)

	_, err = service.Session("missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestServiceSessionReturnsCopy(t *testing.T) {
	t.Parallel()

	service := newTestService(t)
	service.StartSession(false)
	_, err := service.SetWheelScores(WheelScoresCommand{Scores: map[string]int{"Mission": 9}})
	require.NoError(t, err)

	session, err := service.Session("")
	require.NoError(t, err)
	session.ActionSteps = "edited outside"
	session.WheelOfLife.Scores[0] = 1

	current := service.State().CurrentSession
	require.NotNil(t, current)
	assert.Empty(t, current.ActionSteps)
	assert.Equal(t, 9, current.WheelOfLife.Scores[0])

	viewed, _, err := service.Insights("")
	require.NoError(t, err)
	viewed.WheelOfLife.Scores[0] = 2
	assert.Equal(t, 9, service.State().CurrentSession.WheelOfLife.Scores[0])
}

func TestServiceDashboardAndHistory(t *testing.T) {
	t.Parallel()

	service := newTestService(t)
	for i := range 4 {
		service.StartSession(false)
		require.NoError(t, service.SetActionSteps(fmt.Sprintf("\nStep %d\nmore", i)))
		_, err := service.Complete()
		require.NoError(t, err)
	}
	service.StartSession(true)
	_, err := service.Next()
	require.NoError(t, err)

	dashboard := service.Dashboard()

	assert.Equal(t, 4, dashboard.CompletedSessions)
	require.Len(t, dashboard.RecentActions, 3)
	assert.Equal(t, "Step 3", dashboard.RecentActions[0].ActionStep)
	assert.Equal(t, domain.SessionID("session-4"), dashboard.RecentActions[0].SessionID)
	require.NotNil(t, dashboard.Wizard)
	assert.Equal(t, domain.StepFearSetting, dashboard.Wizard.Step)
	assert.InDelta(t, 0.4, dashboard.Wizard.Progress, 0.001)

	history := service.History()
	require.Len(t, history, 4)
	assert.Equal(t, []string{"Action Steps"}, history[0].Components)
	assert.Equal(t, "Step 0", history[3].FirstStep)
}

func TestServiceInsightsAndActionItems(t *testing.T) {
	t.Parallel()

	service := newTestService(t)
	service.StartSession(false)
	_, err := service.SetWheelScores(WheelScoresCommand{Scores: map[string]int{"Mission": 9}})
	require.NoError(t, err)
	require.NoError(t, service.SetActionSteps("Intro\n1. Call Sam\n  - book flights\nnot an item"))

	session, insights, err := service.Insights("")
	require.NoError(t, err)
	assert.Equal(t, service.State().CurrentSession.ID, session.ID)
	assert.Equal(t, []string{"Mission"}, insights.TopStrengths)
	require.NotNil(t, insights.AverageScore)
	assert.InDelta(t, 5.4, *insights.AverageScore, 0.001)

	items, err := service.ActionItems()
	require.NoError(t, err)
	assert.Equal(t, []string{"1. Call Sam", "- book flights"}, items)
}
