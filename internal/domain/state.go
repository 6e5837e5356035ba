package domain

import "slices"

type Settings struct {
	WheelCategories []string
	JournalPrompts  []string
}

type AppState struct {
	CurrentSession    *Session
	CompletedSessions []Session
	Settings          Settings
	IsGuidedSession   bool
	CurrentStep       Step
}

func NewAppState(settings Settings) AppState {
	return AppState{
		CompletedSessions: []Session{},
		Settings:          settings,
	}
}

// FindCompleted returns the completed session with the given id.
func (s AppState) FindCompleted(id SessionID) (Session, error) {
	for _, session := range s.CompletedSessions {
		if session.ID == id {
			return session, nil
		}
	}
	return Session{}, ErrSessionNotFound
}

// Clone returns a deep copy. nil and empty slices are preserved as they are.
func (s AppState) Clone() AppState {
	out := s
	if s.CurrentSession != nil {
		current := s.CurrentSession.Clone()
		out.CurrentSession = &current
	}
	if s.CompletedSessions != nil {
		out.CompletedSessions = make([]Session, len(s.CompletedSessions))
		for i, session := range s.CompletedSessions {
			out.CompletedSessions[i] = session.Clone()
		}
	}
	out.Settings = s.Settings.Clone()
	return out
}

func (s Settings) Clone() Settings {
	return Settings{
		WheelCategories: slices.Clone(s.WheelCategories),
		JournalPrompts:  slices.Clone(s.JournalPrompts),
	}
}

func (s Session) Clone() Session {
	out := s
	if s.WheelOfLife != nil {
		wheel := s.WheelOfLife.Clone()
		out.WheelOfLife = &wheel
	}
	if s.FearSetting != nil {
		fear := s.FearSetting.Clone()
		out.FearSetting = &fear
	}
	if s.JournalEntries != nil {
		out.JournalEntries = make([]JournalEntry, len(s.JournalEntries))
		for i, entry := range s.JournalEntries {
			out.JournalEntries[i] = entry.Clone()
		}
	}
	if s.ReviewDate != nil {
		reviewDate := *s.ReviewDate
		out.ReviewDate = &reviewDate
	}
	if s.SessionRating != nil {
		rating := *s.SessionRating
		out.SessionRating = &rating
	}
	out.KeyInsights = slices.Clone(s.KeyInsights)
	return out
}

func (w WheelOfLife) Clone() WheelOfLife {
	return WheelOfLife{
		Categories:   slices.Clone(w.Categories),
		Scores:       slices.Clone(w.Scores),
		Satisfaction: slices.Clone(w.Satisfaction),
		Notes:        w.Notes,
	}
}

func (f FearSetting) Clone() FearSetting {
	out := f
	out.Fears = slices.Clone(f.Fears)
	return out
}

func (e JournalEntry) Clone() JournalEntry {
	out := e
	if e.Priority != nil {
		priority := *e.Priority
		out.Priority = &priority
	}
	return out
}
