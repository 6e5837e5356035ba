package application

import (
	"slices"
	"time"

	"github.com/bnema/thinkday/internal/domain"
)

// Reduce applies action to state and returns the next state. It never mutates
// state: every modified branch is copied and untouched branches are shared.
// Unknown actions and actions that need a current session when there is none
// return state unchanged.
func Reduce(state domain.AppState, action Action) domain.AppState {
	switch a := action.(type) {
	case StartNewSession:
		return startSession(state, a.ID, a.StartedAt, false)
	case StartGuidedSession:
		return startSession(state, a.ID, a.StartedAt, true)
	case NextStep:
		state.CurrentStep = min(state.CurrentStep+1, domain.LastStep)
		return state
	case PrevStep:
		state.CurrentStep = max(state.CurrentStep-1, domain.FirstStep)
		return state
	case UpdateWheelOfLife:
		return withSession(state, func(session *domain.Session) {
			wheel := a.WheelOfLife.Clone()
			session.WheelOfLife = &wheel
		})
	case UpdateFearSetting:
		return withSession(state, func(session *domain.Session) {
			base := domain.FearSetting{}
			if session.FearSetting != nil {
				base = *session.FearSetting
			}
			merged := a.Patch.apply(base)
			session.FearSetting = &merged
		})
	case AddJournalEntry:
		return withSession(state, func(session *domain.Session) {
			session.JournalEntries = upsertJournalEntry(session.JournalEntries, a.Entry.Clone())
		})
	case UpdateActionSteps:
		return withSession(state, func(session *domain.Session) {
			session.ActionSteps = a.ActionSteps
		})
	case SetReviewDate:
		return withSession(state, func(session *domain.Session) {
			reviewDate := a.ReviewDate
			session.ReviewDate = &reviewDate
		})
	case RateSession:
		return withSession(state, func(session *domain.Session) {
			rating := a.Rating
			session.SessionRating = &rating
		})
	case CompleteSession:
		if state.CurrentSession == nil {
			return state
		}
		completed := *state.CurrentSession
		completed.IsComplete = true

		sessions := make([]domain.Session, 0, len(state.CompletedSessions)+1)
		sessions = append(sessions, completed)
		sessions = append(sessions, state.CompletedSessions...)

		state.CurrentSession = nil
		state.CompletedSessions = sessions
		state.IsGuidedSession = false
		state.CurrentStep = domain.FirstStep
		return state
	case EndSession:
		state.CurrentSession = nil
		state.IsGuidedSession = false
		state.CurrentStep = domain.FirstStep
		return state
	case UpdateSettings:
		state.Settings = a.Patch.apply(state.Settings)
		return state
	case LoadState:
		return a.State
	default:
		return state
	}
}

func startSession(state domain.AppState, id domain.SessionID, startedAt time.Time, guided bool) domain.AppState {
	session := domain.NewSession(id, startedAt)
	state.CurrentSession = &session
	state.IsGuidedSession = guided
	state.CurrentStep = domain.FirstStep
	return state
}

// withSession copies the current session, lets mutate edit the copy and
// installs it in a shallow copy of state.
func withSession(state domain.AppState, mutate func(*domain.Session)) domain.AppState {
	if state.CurrentSession == nil {
		return state
	}
	next := *state.CurrentSession
	mutate(&next)
	state.CurrentSession = &next
	return state
}

func upsertJournalEntry(entries []domain.JournalEntry, entry domain.JournalEntry) []domain.JournalEntry {
	updated := slices.Clone(entries)
	index := slices.IndexFunc(updated, func(existing domain.JournalEntry) bool {
		return existing.Prompt == entry.Prompt
	})
	if index >= 0 {
		updated[index] = entry
		return updated
	}
	return append(updated, entry)
}

func cloneFears(fears []domain.Fear) []domain.Fear {
	return slices.Clone(fears)
}

func cloneStrings(values []string) []string {
	return slices.Clone(values)
}
