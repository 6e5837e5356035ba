package application

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/bnema/thinkday/internal/domain"
	"github.com/bnema/thinkday/internal/ports"
	"go.uber.org/zap"
)

const recentActionLimit = 3

// Service exposes the reflection use cases on top of a Store. State changes go
// through Dispatch only; the service checks preconditions so callers get an
// error where the reducer would silently do nothing.
type Service struct {
	store  *Store
	codec  ports.StateCodec
	clock  ports.Clock
	ids    ports.IDGenerator
	logger *zap.Logger
	memo   InsightsMemo
}

func NewService(store *Store, codec ports.StateCodec, clock ports.Clock, ids ports.IDGenerator, logger *zap.Logger) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if ids == nil {
		ids = ports.TimeOrderedIDs{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		codec:  codec,
		clock:  clock,
		ids:    ids,
		logger: logger,
	}
}

func (s *Service) State() domain.AppState {
	return s.store.State()
}

func (s *Service) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Millisecond)
}

func (s *Service) StartSession(guided bool) domain.Session {
	id := s.ids.NewSessionID()
	startedAt := s.now()

	var action Action = StartNewSession{ID: id, StartedAt: startedAt}
	if guided {
		action = StartGuidedSession{ID: id, StartedAt: startedAt}
	}

	return *s.store.Dispatch(action).CurrentSession
}

// Next advances the wizard. completed reports that the last step was passed
// and the session moved to the completed list.
func (s *Service) Next() (completed bool, err error) {
	state, err := s.requireSession()
	if err != nil {
		return false, err
	}

	action := AdvanceAction(state)
	s.store.Dispatch(action)
	return action.Kind() == KindCompleteSession, nil
}

// Previous steps back. ended reports that the session was abandoned from the
// first step.
func (s *Service) Previous() (ended bool, err error) {
	state, err := s.requireSession()
	if err != nil {
		return false, err
	}

	action := RetreatAction(state)
	s.store.Dispatch(action)
	return action.Kind() == KindEndSession, nil
}

func (s *Service) Complete() (domain.Session, error) {
	if _, err := s.requireSession(); err != nil {
		return domain.Session{}, err
	}
	state := s.store.Dispatch(CompleteSession{})
	return state.CompletedSessions[0], nil
}

func (s *Service) End() error {
	if _, err := s.requireSession(); err != nil {
		return err
	}
	s.store.Dispatch(EndSession{})
	return nil
}

// SetWheelScores scores every configured category, defaulting missing ones.
func (s *Service) SetWheelScores(cmd WheelScoresCommand) (domain.WheelOfLife, error) {
	state, err := s.requireSession()
	if err != nil {
		return domain.WheelOfLife{}, err
	}

	categories := state.Settings.WheelCategories
	for _, ratings := range []map[string]int{cmd.Scores, cmd.Satisfaction} {
		for category := range ratings {
			if !slices.Contains(categories, category) {
				return domain.WheelOfLife{}, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
			}
		}
	}

	base := state.CurrentSession.WheelOfLife
	wheel := domain.WheelOfLife{
		Categories:   slices.Clone(categories),
		Scores:       make([]int, len(categories)),
		Satisfaction: make([]int, len(categories)),
		Notes:        cmd.Notes,
	}
	if cmd.Notes == "" && base != nil {
		wheel.Notes = base.Notes
	}
	for i, category := range categories {
		wheel.Scores[i] = rating(cmd.Scores, category, base, func(w domain.WheelOfLife) []int { return w.Scores })
		wheel.Satisfaction[i] = rating(cmd.Satisfaction, category, base, func(w domain.WheelOfLife) []int { return w.Satisfaction })
	}

	if err := wheel.Validate(); err != nil {
		return domain.WheelOfLife{}, err
	}

	s.store.Dispatch(UpdateWheelOfLife{WheelOfLife: wheel})
	return wheel, nil
}

// rating prefers the explicit value, then the value previously recorded for
// the same category name, then the default.
func rating(explicit map[string]int, category string, base *domain.WheelOfLife, values func(domain.WheelOfLife) []int) int {
	if value, ok := explicit[category]; ok {
		return value
	}
	if base != nil {
		previous := values(*base)
		for i, c := range base.Categories {
			if c == category && i < len(previous) {
				return previous[i]
			}
		}
	}
	return domain.DefaultWheelScore
}

func (s *Service) SetFearCatalyst(catalyst string) error {
	return s.patchFear(FearSettingPatch{}.WithCatalyst(catalyst))
}

func (s *Service) SetFearBenefits(benefits string) error {
	return s.patchFear(FearSettingPatch{}.WithBenefits(benefits))
}

func (s *Service) AddFear(fear domain.Fear) error {
	state, err := s.requireSession()
	if err != nil {
		return err
	}
	if err := fear.Validate(); err != nil {
		return err
	}

	var fears []domain.Fear
	if existing := state.CurrentSession.FearSetting; existing != nil {
		fears = slices.Clone(existing.Fears)
	}
	fears = append(fears, fear)

	s.store.Dispatch(UpdateFearSetting{Patch: FearSettingPatch{}.WithFears(fears)})
	return nil
}

// SetFearCosts changes only the horizons that are set in cmd.
func (s *Service) SetFearCosts(cmd FearCostsCommand) error {
	state, err := s.requireSession()
	if err != nil {
		return err
	}

	var costs domain.Costs
	if existing := state.CurrentSession.FearSetting; existing != nil {
		costs = existing.Costs
	}
	if cmd.SixMonths != nil {
		costs.SixMonths = *cmd.SixMonths
	}
	if cmd.OneYear != nil {
		costs.OneYear = *cmd.OneYear
	}
	if cmd.ThreeYears != nil {
		costs.ThreeYears = *cmd.ThreeYears
	}

	s.store.Dispatch(UpdateFearSetting{Patch: FearSettingPatch{}.WithCosts(costs)})
	return nil
}

func (s *Service) patchFear(patch FearSettingPatch) error {
	if _, err := s.requireSession(); err != nil {
		return err
	}
	s.store.Dispatch(UpdateFearSetting{Patch: patch})
	return nil
}

// AddJournalEntry upserts the response for a prompt, resolving PromptIndex
// against the configured prompts.
func (s *Service) AddJournalEntry(cmd JournalEntryCommand) (domain.JournalEntry, error) {
	state, err := s.requireSession()
	if err != nil {
		return domain.JournalEntry{}, err
	}

	prompt := cmd.Prompt
	if cmd.PromptIndex != nil {
		index := *cmd.PromptIndex
		if index < 0 || index >= len(state.Settings.JournalPrompts) {
			return domain.JournalEntry{}, fmt.Errorf("%w: index %d", domain.ErrUnknownPrompt, index)
		}
		prompt = state.Settings.JournalPrompts[index]
	}

	entry := domain.JournalEntry{
		Prompt:   prompt,
		Response: cmd.Response,
		Priority: cmd.Priority,
		Category: cmd.Category,
	}
	if err := entry.Validate(); err != nil {
		return domain.JournalEntry{}, err
	}

	s.store.Dispatch(AddJournalEntry{Entry: entry})
	return entry, nil
}

func (s *Service) SetActionSteps(actionSteps string) error {
	if _, err := s.requireSession(); err != nil {
		return err
	}
	s.store.Dispatch(UpdateActionSteps{ActionSteps: actionSteps})
	return nil
}

// ScheduleReview sets the review date, defaulting to domain.ReviewInterval
// days from now when at is zero.
func (s *Service) ScheduleReview(at time.Time) (time.Time, error) {
	if _, err := s.requireSession(); err != nil {
		return time.Time{}, err
	}
	if at.IsZero() {
		at = s.now().AddDate(0, 0, domain.ReviewInterval)
	}
	at = at.UTC()

	s.store.Dispatch(SetReviewDate{ReviewDate: at})
	return at, nil
}

func (s *Service) RateSession(rating int) error {
	if _, err := s.requireSession(); err != nil {
		return err
	}
	if err := domain.ValidateSessionRating(rating); err != nil {
		return err
	}
	s.store.Dispatch(RateSession{Rating: rating})
	return nil
}

func (s *Service) AddWheelCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return fmt.Errorf("wheel category: %w", domain.ErrEmptyValue)
	}
	categories := s.store.State().Settings.WheelCategories
	if slices.Contains(categories, category) {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateCategory, category)
	}

	s.updateSettings(SettingsPatch{}.WithWheelCategories(append(slices.Clone(categories), category)))
	return nil
}

// RenameWheelCategory edits a category in place. Existing wheel scores stay
// aligned by index, not by name.
func (s *Service) RenameWheelCategory(from, to string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return fmt.Errorf("wheel category: %w", domain.ErrEmptyValue)
	}
	categories := slices.Clone(s.store.State().Settings.WheelCategories)
	index := slices.Index(categories, from)
	if index < 0 {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, from)
	}
	if to != from && slices.Contains(categories, to) {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateCategory, to)
	}

	categories[index] = to
	s.updateSettings(SettingsPatch{}.WithWheelCategories(categories))
	return nil
}

func (s *Service) RemoveWheelCategory(category string) error {
	categories := s.store.State().Settings.WheelCategories
	index := slices.Index(categories, category)
	if index < 0 {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}
	if len(categories) <= 1 {
		return domain.ErrLastCategory
	}

	s.updateSettings(SettingsPatch{}.WithWheelCategories(slices.Delete(slices.Clone(categories), index, index+1)))
	return nil
}

func (s *Service) AddJournalPrompt(prompt string) error {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return fmt.Errorf("journal prompt: %w", domain.ErrEmptyValue)
	}
	prompts := s.store.State().Settings.JournalPrompts

	s.updateSettings(SettingsPatch{}.WithJournalPrompts(append(slices.Clone(prompts), prompt)))
	return nil
}

func (s *Service) RemoveJournalPrompt(index int) error {
	prompts := s.store.State().Settings.JournalPrompts
	if index < 0 || index >= len(prompts) {
		return fmt.Errorf("%w: index %d", domain.ErrUnknownPrompt, index)
	}

	s.updateSettings(SettingsPatch{}.WithJournalPrompts(slices.Delete(slices.Clone(prompts), index, index+1)))
	return nil
}

func (s *Service) updateSettings(patch SettingsPatch) {
	s.store.Dispatch(UpdateSettings{Patch: patch})
}

// Export encodes the whole state for backup.
func (s *Service) Export() ([]byte, error) {
	data, err := s.codec.Encode(s.store.State())
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return data, nil
}

// Import replaces the state with a decoded backup. A backup that fails to
// decode leaves the state untouched.
func (s *Service) Import(data []byte) (domain.AppState, error) {
	state, err := s.codec.Decode(data)
	if err != nil {
		s.logger.Warn("rejected backup import", zap.Error(err))
		return domain.AppState{}, fmt.Errorf("decode backup: %w", err)
	}
	return s.store.Dispatch(LoadState{State: state}), nil
}

// Session returns the completed session with id, or when id is empty the
// current session, falling back to the most recent completed one. The result
// is a copy; edits go through the Service.
func (s *Service) Session(id domain.SessionID) (*domain.Session, error) {
	session, err := findSession(s.store.State(), id)
	if err != nil {
		return nil, err
	}
	clone := session.Clone()
	return &clone, nil
}

func (s *Service) Insights(id domain.SessionID) (domain.Session, Insights, error) {
	session, err := findSession(s.store.State(), id)
	if err != nil {
		return domain.Session{}, Insights{}, err
	}
	return session.Clone(), s.memo.For(session), nil
}

// findSession points into state so the insights memo can key on identity.
func findSession(state domain.AppState, id domain.SessionID) (*domain.Session, error) {
	if id != "" {
		if current := state.CurrentSession; current != nil && current.ID == id {
			return current, nil
		}
		for i := range state.CompletedSessions {
			if state.CompletedSessions[i].ID == id {
				return &state.CompletedSessions[i], nil
			}
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	if state.CurrentSession != nil {
		return state.CurrentSession, nil
	}
	if len(state.CompletedSessions) > 0 {
		return &state.CompletedSessions[0], nil
	}
	return nil, domain.ErrNoSessionData
}

func (s *Service) Dashboard() Dashboard {
	state := s.store.State()
	dashboard := Dashboard{
		CompletedSessions: len(state.CompletedSessions),
		RecentActions:     make([]RecentAction, 0, recentActionLimit),
	}
	if state.CurrentSession != nil {
		wizard := s.wizardStatus(state)
		dashboard.Wizard = &wizard
	}
	for _, session := range state.CompletedSessions {
		if len(dashboard.RecentActions) == recentActionLimit {
			break
		}
		dashboard.RecentActions = append(dashboard.RecentActions, RecentAction{
			SessionID:  session.ID,
			Date:       session.Date,
			ActionStep: domain.FirstActionStep(session.ActionSteps),
		})
	}
	return dashboard
}

func (s *Service) Wizard() (WizardStatus, error) {
	state, err := s.requireSession()
	if err != nil {
		return WizardStatus{}, err
	}
	return s.wizardStatus(state), nil
}

func (s *Service) wizardStatus(state domain.AppState) WizardStatus {
	return WizardStatus{
		Step:     state.CurrentStep,
		Guided:   state.IsGuidedSession,
		Session:  *state.CurrentSession,
		Progress: state.CurrentStep.Progress(),
	}
}

func (s *Service) History() []HistoryEntry {
	state := s.store.State()
	entries := make([]HistoryEntry, 0, len(state.CompletedSessions))
	for _, session := range state.CompletedSessions {
		entries = append(entries, HistoryEntry{
			SessionID:  session.ID,
			Date:       session.Date,
			Components: session.Components(),
			FirstStep:  domain.FirstActionStep(session.ActionSteps),
		})
	}
	return entries
}

// ActionItems returns the list items of the current session's action plan.
func (s *Service) ActionItems() ([]string, error) {
	session, err := s.Session("")
	if err != nil {
		return nil, err
	}
	return domain.ActionItems(session.ActionSteps), nil
}

func (s *Service) requireSession() (domain.AppState, error) {
	state := s.store.State()
	if state.CurrentSession == nil {
		return state, domain.ErrNoActiveSession
	}
	return state, nil
}
