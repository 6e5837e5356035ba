package application

import (
	"testing"

	"github.com/bnema/thinkday/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeInsightsFromWheel(t *testing.T) {
	t.Parallel()

	session := domain.NewSession("s-1", testStartedAt)
	session.WheelOfLife = &domain.WheelOfLife{
		Categories:   []string{"A", "B", "C"},
		Scores:       []int{9, 5, 3},
		Satisfaction: []int{9, 5, 3},
	}

	insights := ComputeInsights(session)

	require.NotNil(t, insights.AverageScore)
	assert.InDelta(t, 5.67, *insights.AverageScore, 0.01)
	assert.Equal(t, []string{"A"}, insights.TopStrengths)
	assert.Equal(t, []string{"B", "C"}, insights.ImprovementAreas)
}

func TestComputeInsightsCapsListsAtThree(t *testing.T) {
	t.Parallel()

	session := domain.NewSession("s-1", testStartedAt)
	session.WheelOfLife = &domain.WheelOfLife{
		Categories: []string{"A", "B", "C", "D", "E", "F", "G", "H"},
		Scores:     []int{10, 9, 8, 8, 1, 2, 3, 4},
	}
	for _, prompt := range []string{"p1", "p2", "p3", "p4", "p5"} {
		session.JournalEntries = append(session.JournalEntries, domain.JournalEntry{Prompt: prompt, Response: "r", Priority: intPtr(5)})
	}

	insights := ComputeInsights(session)

	assert.Equal(t, []string{"A", "B", "C"}, insights.TopStrengths)
	assert.Equal(t, []string{"E", "F", "G"}, insights.ImprovementAreas)
	require.Len(t, insights.KeyJournalInsights, 3)
	assert.Equal(t, "p1", insights.KeyJournalInsights[0].Prompt)
	assert.Equal(t, 5, insights.TotalJournalEntries)
}

func TestComputeInsightsEmptySession(t *testing.T) {
	t.Parallel()

	insights := ComputeInsights(domain.NewSession("s-1", testStartedAt))

	assert.Nil(t, insights.AverageScore)
	assert.Empty(t, insights.TopStrengths)
	assert.Empty(t, insights.ImprovementAreas)
	assert.Zero(t, insights.HighPriorityFears)
	assert.Empty(t, insights.KeyJournalInsights)
	assert.Empty(t, insights.Recommendations())
}

func TestComputeInsightsFearsAndJournalThresholds(t *testing.T) {
	t.Parallel()

	session := domain.NewSession("s-1", testStartedAt)
	session.FearSetting = &domain.FearSetting{Fears: []domain.Fear{
		{Fear: "both high", Likelihood: 6, Impact: 7},
		{Fear: "impact only", Likelihood: 5, Impact: 10},
		{Fear: "likelihood only", Likelihood: 10, Impact: 6},
		{Fear: "max", Likelihood: 10, Impact: 10},
	}}
	session.JournalEntries = []domain.JournalEntry{
		{Prompt: "low", Response: "r", Priority: intPtr(3)},
		{Prompt: "none", Response: "r"},
		{Prompt: "high", Response: "r", Priority: intPtr(4)},
	}

	insights := ComputeInsights(session)

	assert.Equal(t, 2, insights.HighPriorityFears)
	require.Len(t, insights.KeyJournalInsights, 1)
	assert.Equal(t, "high", insights.KeyJournalInsights[0].Prompt)
}

func TestComputeInsightsLabelsUnnamedCategories(t *testing.T) {
	t.Parallel()

	session := domain.NewSession("s-1", testStartedAt)
	session.WheelOfLife = &domain.WheelOfLife{Categories: []string{"A"}, Scores: []int{5, 9}}

	insights := ComputeInsights(session)

	assert.Equal(t, []string{"Category 2"}, insights.TopStrengths)
	assert.Equal(t, []string{"A"}, insights.ImprovementAreas)
}

func TestRecommendationsOrder(t *testing.T) {
	t.Parallel()

	insights := Insights{
		TopStrengths:      []string{"Career"},
		ImprovementAreas:  []string{"Health", "Fun"},
		HighPriorityFears: 2,
	}

	recommendations := insights.Recommendations()

	require.Len(t, recommendations, 3)
	assert.Equal(t, Recommendation{
		Kind:        RecommendationImprovement,
		Title:       "Focus on Growth Areas",
		Description: "Prioritize development in: Health, Fun",
	}, recommendations[0])
	assert.Equal(t, Recommendation{
		Kind:        RecommendationFear,
		Title:       "Address Critical Fears",
		Description: "2 high-impact fears need immediate attention",
	}, recommendations[1])
	assert.Equal(t, Recommendation{
		Kind:        RecommendationStrength,
		Title:       "Leverage Your Strengths",
		Description: "Build on your strong areas: Career",
	}, recommendations[2])
}

func TestInsightsMemoRecomputesOnNewSessionValue(t *testing.T) {
	t.Parallel()

	var memo InsightsMemo
	state := Reduce(domain.NewAppState(domain.DefaultSettings()), StartNewSession{ID: "s-1", StartedAt: testStartedAt})

	first := memo.For(state.CurrentSession)
	assert.Nil(t, first.AverageScore)

	same := memo.For(state.CurrentSession)
	assert.Equal(t, first, same)

	state = Reduce(state, UpdateWheelOfLife{WheelOfLife: domain.WheelOfLife{Categories: []string{"A"}, Scores: []int{9}, Satisfaction: []int{9}}})
	updated := memo.For(state.CurrentSession)

	require.NotNil(t, updated.AverageScore)
	assert.InDelta(t, 9.0, *updated.AverageScore, 0.001)
}
