package domain

import (
	"fmt"
	"strings"
	"time"
)

type SessionID string

const (
	MinRating = 1
	MaxRating = 10

	MinInsightPriority = 1
	MaxInsightPriority = 5
)

type Session struct {
	ID             SessionID
	Date           time.Time
	WheelOfLife    *WheelOfLife
	FearSetting    *FearSetting
	JournalEntries []JournalEntry
	ActionSteps    string
	ReviewDate     *time.Time
	IsComplete     bool
	SessionRating  *int
	KeyInsights    []string
}

// NewSession returns an empty, incomplete session.
func NewSession(id SessionID, startedAt time.Time) Session {
	return Session{
		ID:             id,
		Date:           startedAt,
		JournalEntries: []JournalEntry{},
	}
}

// WheelOfLife keeps scores and satisfaction aligned by index with Categories.
type WheelOfLife struct {
	Categories   []string
	Scores       []int
	Satisfaction []int
	Notes        string
}

func (w WheelOfLife) Validate() error {
	if len(w.Scores) != len(w.Categories) {
		return fmt.Errorf("scores length %d does not match %d categories", len(w.Scores), len(w.Categories))
	}
	if len(w.Satisfaction) != len(w.Categories) {
		return fmt.Errorf("satisfaction length %d does not match %d categories", len(w.Satisfaction), len(w.Categories))
	}

	seen := make(map[string]struct{}, len(w.Categories))
	for i, category := range w.Categories {
		if strings.TrimSpace(category) == "" {
			return fmt.Errorf("category %d is empty", i)
		}
		if _, ok := seen[category]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateCategory, category)
		}
		seen[category] = struct{}{}

		if err := validateRating(w.Scores[i], MinRating, MaxRating); err != nil {
			return fmt.Errorf("score for %q: %w", category, err)
		}
		if err := validateRating(w.Satisfaction[i], MinRating, MaxRating); err != nil {
			return fmt.Errorf("satisfaction for %q: %w", category, err)
		}
	}

	return nil
}

// ScoreOf returns the score recorded for category, if any.
func (w WheelOfLife) ScoreOf(category string) (int, bool) {
	for i, c := range w.Categories {
		if c == category && i < len(w.Scores) {
			return w.Scores[i], true
		}
	}
	return 0, false
}

type FearSetting struct {
	Catalyst string
	Fears    []Fear
	Benefits string
	Costs    Costs
}

type Fear struct {
	Fear       string
	Prevent    string
	Repair     string
	Likelihood int
	Impact     int
}

func (f Fear) Validate() error {
	if strings.TrimSpace(f.Fear) == "" {
		return fmt.Errorf("fear is required")
	}
	if err := validateRating(f.Likelihood, MinRating, MaxRating); err != nil {
		return fmt.Errorf("likelihood: %w", err)
	}
	if err := validateRating(f.Impact, MinRating, MaxRating); err != nil {
		return fmt.Errorf("impact: %w", err)
	}
	return nil
}

const (
	highPriorityFearImpact     = 7
	highPriorityFearLikelihood = 6
)

// IsHighPriority reports whether the fear is both likely and damaging enough
// to need attention first.
func (f Fear) IsHighPriority() bool {
	return f.Impact >= highPriorityFearImpact && f.Likelihood >= highPriorityFearLikelihood
}

// Costs of inaction over increasing horizons.
type Costs struct {
	SixMonths  string
	OneYear    string
	ThreeYears string
}

type JournalCategory string

const (
	JournalCategoryReflection   JournalCategory = "reflection"
	JournalCategoryGrowth       JournalCategory = "growth"
	JournalCategoryRelationship JournalCategory = "relationship"
	JournalCategoryCareer       JournalCategory = "career"
	JournalCategoryHealth       JournalCategory = "health"
	JournalCategoryFinancial    JournalCategory = "financial"
)

func (c JournalCategory) Valid() bool {
	switch c {
	case "", JournalCategoryReflection, JournalCategoryGrowth, JournalCategoryRelationship,
		JournalCategoryCareer, JournalCategoryHealth, JournalCategoryFinancial:
		return true
	default:
		return false
	}
}

// JournalEntry is keyed by Prompt within a session.
type JournalEntry struct {
	Prompt   string
	Response string
	Priority *int
	Category JournalCategory
}

func (e JournalEntry) Validate() error {
	if strings.TrimSpace(e.Prompt) == "" {
		return fmt.Errorf("prompt is required")
	}
	if e.Priority != nil {
		if err := validateRating(*e.Priority, MinInsightPriority, MaxInsightPriority); err != nil {
			return fmt.Errorf("priority: %w", err)
		}
	}
	if !e.Category.Valid() {
		return fmt.Errorf("unsupported journal category %q", e.Category)
	}
	return nil
}

// Components lists the exercises that hold data, in wizard order.
func (s Session) Components() []string {
	components := make([]string, 0, 4)
	if s.WheelOfLife != nil {
		components = append(components, "Wheel of Life")
	}
	if s.FearSetting != nil {
		components = append(components, "Fear Setting")
	}
	if len(s.JournalEntries) > 0 {
		components = append(components, fmt.Sprintf("%d Journal Entries", len(s.JournalEntries)))
	}
	if s.ActionSteps != "" {
		components = append(components, "Action Steps")
	}
	return components
}

func ValidateSessionRating(rating int) error {
	return validateRating(rating, MinRating, MaxRating)
}

func validateRating(value, lo, hi int) error {
	if value < lo || value > hi {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidRating, value, lo, hi)
	}
	return nil
}
