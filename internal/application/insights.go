package application

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/thinkday/internal/domain"
)

const (
	strengthThreshold      = 8
	improvementThreshold   = 5
	journalInsightPriority = 4
	insightListCap         = 3
	recommendationCap      = 3
)

type RecommendationKind string

const (
	RecommendationImprovement RecommendationKind = "improvement"
	RecommendationFear        RecommendationKind = "fear"
	RecommendationStrength    RecommendationKind = "strength"
)

type Recommendation struct {
	Kind        RecommendationKind
	Title       string
	Description string
}

// Insights are derived from a session and never stored.
type Insights struct {
	// AverageScore is nil when the session has no wheel scores.
	AverageScore        *float64
	TopStrengths        []string
	ImprovementAreas    []string
	HighPriorityFears   int
	KeyJournalInsights  []domain.JournalEntry
	TotalJournalEntries int
}

func ComputeInsights(session domain.Session) Insights {
	insights := Insights{
		TopStrengths:        []string{},
		ImprovementAreas:    []string{},
		KeyJournalInsights:  []domain.JournalEntry{},
		TotalJournalEntries: len(session.JournalEntries),
	}

	if wheel := session.WheelOfLife; wheel != nil && len(wheel.Scores) > 0 {
		total := 0
		for i, score := range wheel.Scores {
			total += score
			category := categoryAt(wheel.Categories, i)
			if score >= strengthThreshold && len(insights.TopStrengths) < insightListCap {
				insights.TopStrengths = append(insights.TopStrengths, category)
			}
			if score <= improvementThreshold && len(insights.ImprovementAreas) < insightListCap {
				insights.ImprovementAreas = append(insights.ImprovementAreas, category)
			}
		}
		average := float64(total) / float64(len(wheel.Scores))
		insights.AverageScore = &average
	}

	if session.FearSetting != nil {
		for _, fear := range session.FearSetting.Fears {
			if fear.IsHighPriority() {
				insights.HighPriorityFears++
			}
		}
	}

	for _, entry := range session.JournalEntries {
		if len(insights.KeyJournalInsights) == insightListCap {
			break
		}
		if entry.Priority != nil && *entry.Priority >= journalInsightPriority {
			insights.KeyJournalInsights = append(insights.KeyJournalInsights, entry)
		}
	}

	return insights
}

// Recommendations are built in a fixed order (improvement, fear, strength)
// and truncated to the first three.
func (i Insights) Recommendations() []Recommendation {
	recommendations := make([]Recommendation, 0, 3)

	if len(i.ImprovementAreas) > 0 {
		recommendations = append(recommendations, Recommendation{
			Kind:        RecommendationImprovement,
			Title:       "Focus on Growth Areas",
			Description: "Prioritize development in: " + strings.Join(i.ImprovementAreas, ", "),
		})
	}
	if i.HighPriorityFears > 0 {
		recommendations = append(recommendations, Recommendation{
			Kind:        RecommendationFear,
			Title:       "Address Critical Fears",
			Description: fmt.Sprintf("%d high-impact fears need immediate attention", i.HighPriorityFears),
		})
	}
	if len(i.TopStrengths) > 0 {
		recommendations = append(recommendations, Recommendation{
			Kind:        RecommendationStrength,
			Title:       "Leverage Your Strengths",
			Description: "Build on your strong areas: " + strings.Join(i.TopStrengths, ", "),
		})
	}

	if len(recommendations) > recommendationCap {
		recommendations = recommendations[:recommendationCap]
	}
	return recommendations
}

// categoryAt tolerates scores longer than categories after settings edits.
func categoryAt(categories []string, index int) string {
	if index < len(categories) {
		return categories[index]
	}
	return fmt.Sprintf("Category %d", index+1)
}

// InsightsMemo caches the insights of the last session it saw. The reducer
// allocates a new session value on every change, so pointer identity is the
// cache key.
type InsightsMemo struct {
	mu       sync.Mutex
	session  *domain.Session
	insights Insights
}

func (m *InsightsMemo) For(session *domain.Session) Insights {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session == nil {
		return ComputeInsights(domain.Session{})
	}
	if m.session != session {
		m.session = session
		m.insights = ComputeInsights(*session)
	}
	return m.insights
}
