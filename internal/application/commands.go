package application

import "github.com/bnema/thinkday/internal/domain"

// WheelScoresCommand maps category names to ratings. Missing categories fall back
// to domain.DefaultWheelScore.
type WheelScoresCommand struct {
	Scores       map[string]int
	Satisfaction map[string]int
	Notes        string
}

type FearCostsCommand struct {
	SixMonths  *string
	OneYear    *string
	ThreeYears *string
}

type JournalEntryCommand struct {
	Prompt      string
	PromptIndex *int
	Response    string
	Priority    *int
	Category    domain.JournalCategory
}
