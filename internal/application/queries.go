package application

import (
	"time"

	"github.com/bnema/thinkday/internal/domain"
)

// RecentAction is the dashboard line for a completed session.
type RecentAction struct {
	SessionID  domain.SessionID
	Date       time.Time
	ActionStep string
}

// HistoryEntry describes a completed session in the journal list.
type HistoryEntry struct {
	SessionID  domain.SessionID
	Date       time.Time
	Components []string
	FirstStep  string
}

// WizardStatus is the guided-session header.
type WizardStatus struct {
	Step     domain.Step
	Guided   bool
	Session  domain.Session
	Progress float64
}

type Dashboard struct {
	Wizard            *WizardStatus
	CompletedSessions int
	RecentActions     []RecentAction
}
