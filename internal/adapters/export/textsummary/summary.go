package textsummary

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/thinkday/internal/application"
	"github.com/bnema/thinkday/internal/domain"
)

const (
	responsePreviewLength = 100
	sessionDateLayout     = "1/2/2006"
	fileDateLayout        = "1-2-2006"
)

// Render formats a session as the plain-text summary users download.
// Dates are shown in loc, or in the local zone when loc is nil.
func Render(session domain.Session, insights application.Insights, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}

	sections := []string{
		"THINK DAY SANCTUARY - SESSION SUMMARY\nDate: " + session.Date.In(loc).Format(sessionDateLayout),
		"WHEEL OF LIFE SCORES:\n" + orDefault(wheelLines(session.WheelOfLife), "Not completed"),
		"FEAR SETTING INSIGHTS:\n" + fearLines(session.FearSetting, insights),
		"KEY JOURNAL INSIGHTS:\n" + orDefault(journalLines(session.JournalEntries), "No entries"),
		"ACTION STEPS:\n" + orDefault(session.ActionSteps, "Not defined"),
		"RECOMMENDATIONS:\n" + recommendationLines(insights.Recommendations()),
	}

	return strings.TrimSpace(strings.Join(sections, "\n\n"))
}

// FileName names the summary download for session.
func FileName(session domain.Session, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return "think-day-session-" + session.Date.In(loc).Format(fileDateLayout) + ".txt"
}

func wheelLines(wheel *domain.WheelOfLife) string {
	if wheel == nil {
		return ""
	}

	lines := make([]string, 0, len(wheel.Categories))
	for i, category := range wheel.Categories {
		score := "undefined"
		if i < len(wheel.Scores) {
			score = fmt.Sprintf("%d", wheel.Scores[i])
		}
		lines = append(lines, fmt.Sprintf("%s: %s/10", category, score))
	}
	return strings.Join(lines, "\n")
}

func fearLines(fear *domain.FearSetting, insights application.Insights) string {
	catalyst := ""
	if fear != nil {
		catalyst = fear.Catalyst
	}
	return fmt.Sprintf("Catalyst: %s\nHigh Priority Fears: %d", orDefault(catalyst, "Not specified"), insights.HighPriorityFears)
}

func journalLines(entries []domain.JournalEntry) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%s: %s...", entry.Prompt, truncate(entry.Response, responsePreviewLength)))
	}
	return strings.Join(lines, "\n\n")
}

func recommendationLines(recommendations []application.Recommendation) string {
	lines := make([]string, 0, len(recommendations))
	for _, recommendation := range recommendations {
		lines = append(lines, fmt.Sprintf("• %s: %s", recommendation.Title, recommendation.Description))
	}
	return strings.Join(lines, "\n")
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
