package jsonstate

import "fmt"

const currentSchemaVersion = 1

// stateSchema mirrors the backup files written by the browser app, plus a
// version field. Keys are camelCase for compatibility with those files.
type stateSchema struct {
	Version           int             `json:"version"`
	CurrentSession    *sessionSchema  `json:"currentSession"`
	CompletedSessions []sessionSchema `json:"completedSessions"`
	Settings          *settingsSchema `json:"settings"`
	IsGuidedSession   bool            `json:"isGuidedSession"`
	CurrentStep       int             `json:"currentStep"`
}

func (s *stateSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s stateSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("%d (current %d)", s.Version, currentSchemaVersion)
	}
	return nil
}

type settingsSchema struct {
	WheelCategories []string `json:"wheelCategories"`
	JournalPrompts  []string `json:"journalPrompts"`
}

type sessionSchema struct {
	ID             string               `json:"id"`
	Date           string               `json:"date"`
	WheelOfLife    *wheelOfLifeSchema   `json:"wheelOfLife,omitempty"`
	FearSetting    *fearSettingSchema   `json:"fearSetting,omitempty"`
	JournalEntries []journalEntrySchema `json:"journalEntries"`
	ActionSteps    string               `json:"actionSteps"`
	ReviewDate     string               `json:"reviewDate,omitempty"`
	IsComplete     bool                 `json:"isComplete"`
	SessionRating  *int                 `json:"sessionRating,omitempty"`
	KeyInsights    []string             `json:"keyInsights,omitempty"`
}

type wheelOfLifeSchema struct {
	Categories   []string `json:"categories"`
	Scores       []int    `json:"scores"`
	Satisfaction []int    `json:"satisfaction"`
	Notes        string   `json:"notes,omitempty"`
}

type fearSettingSchema struct {
	Catalyst string       `json:"catalyst"`
	Fears    []fearSchema `json:"fears"`
	Benefits string       `json:"benefits"`
	Costs    costsSchema  `json:"costs"`
}

type fearSchema struct {
	Fear       string `json:"fear"`
	Prevent    string `json:"prevent"`
	Repair     string `json:"repair"`
	Likelihood int    `json:"likelihood"`
	Impact     int    `json:"impact"`
}

type costsSchema struct {
	SixMonths  string `json:"sixMonths"`
	OneYear    string `json:"oneYear"`
	ThreeYears string `json:"threeYears"`
}

type journalEntrySchema struct {
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
	Priority *int   `json:"priority,omitempty"`
	Category string `json:"category,omitempty"`
}
