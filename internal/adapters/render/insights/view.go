package insights

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/thinkday/internal/application"
	"github.com/bnema/thinkday/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	scoreBarWidth    = 20
	journalPreviewAt = 100
)

func renderView(session domain.Session, insights application.Insights, s styles) string {
	lines := []string{
		s.title.Render("Session Insights"),
		s.header.Render(fmt.Sprintf("session: %s  date: %s", session.ID, session.Date.Local().Format("2006-01-02"))),
	}

	lines = append(lines, s.section.Render(renderWheel(session, insights, s)))
	lines = append(lines, s.section.Render(renderFears(insights, s)))
	lines = append(lines, s.section.Render(renderJournal(insights, s)))
	lines = append(lines, s.section.Render(renderRecommendations(insights.Recommendations(), s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderWheel(session domain.Session, insights application.Insights, s styles) string {
	parts := []string{s.heading.Render("Wheel of Life")}

	if insights.AverageScore == nil {
		parts = append(parts, s.empty.Render("Not completed."))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	average := *insights.AverageScore
	parts = append(parts, lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.detail.Render("average:"),
		" ",
		renderScoreBar(average, scoreBarWidth, s),
		" ",
		lipgloss.NewStyle().Foreground(interpolateColor(average, domain.MinRating, domain.MaxRating)).Render(fmt.Sprintf("%.1f/10", average)),
	))

	if wheel := session.WheelOfLife; wheel != nil {
		for i, category := range wheel.Categories {
			if i >= len(wheel.Scores) {
				break
			}
			parts = append(parts, s.detail.Render(fmt.Sprintf("  %-10s %2d/10", category, wheel.Scores[i])))
		}
	}

	parts = append(parts, labelledList("strengths:", insights.TopStrengths, s.strength, s))
	parts = append(parts, labelledList("growth areas:", insights.ImprovementAreas, s.growth, s))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func labelledList(label string, values []string, style lipgloss.Style, s styles) string {
	if len(values) == 0 {
		return s.detail.Render(label) + " " + s.empty.Render("none")
	}
	return s.detail.Render(label) + " " + style.Render(strings.Join(values, ", "))
}

func renderFears(insights application.Insights, s styles) string {
	parts := []string{s.heading.Render("Fear Setting")}
	if insights.HighPriorityFears == 0 {
		parts = append(parts, s.empty.Render("No high-priority fears."))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	parts = append(parts, s.warning.Render(fmt.Sprintf("%d high-priority fears", insights.HighPriorityFears)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderJournal(insights application.Insights, s styles) string {
	parts := []string{
		s.heading.Render("Journal"),
		s.header.Render(fmt.Sprintf("entries: %d", insights.TotalJournalEntries)),
	}
	if len(insights.KeyJournalInsights) == 0 {
		parts = append(parts, s.empty.Render("No key insights yet."))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	for _, entry := range insights.KeyJournalInsights {
		parts = append(parts, s.detail.Render("• "+entry.Prompt))
		parts = append(parts, s.empty.Render("  "+preview(entry.Response, journalPreviewAt)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderRecommendations(recommendations []application.Recommendation, s styles) string {
	parts := []string{s.heading.Render("Recommendations")}
	if len(recommendations) == 0 {
		parts = append(parts, s.empty.Render("Complete more exercises to get recommendations."))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	for _, recommendation := range recommendations {
		parts = append(parts, recommendationStyle(recommendation.Kind, s).Render(recommendation.Title))
		parts = append(parts, s.detail.Render("  "+recommendation.Description))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func recommendationStyle(kind application.RecommendationKind, s styles) lipgloss.Style {
	switch kind {
	case application.RecommendationFear:
		return s.warning
	case application.RecommendationStrength:
		return s.strength
	default:
		return s.growth
	}
}

func preview(text string, limit int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= limit {
		return string(runes)
	}
	return string(runes[:limit]) + "..."
}

func renderScoreBar(score float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	fraction := clamp(score, 0, domain.MaxRating) / domain.MaxRating
	filled := int(math.Round(float64(width) * fraction))
	filled = max(0, min(filled, width))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// interpolateColor maps value onto the 240..255 greyscale ramp.
func interpolateColor(value, lo, hi float64) lipgloss.Color {
	if hi == lo {
		return lipgloss.Color("255")
	}

	normalized := clamp((value-lo)/(hi-lo), 0, 1)
	colorCode := int(240.0 + 15.0*normalized)

	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}
