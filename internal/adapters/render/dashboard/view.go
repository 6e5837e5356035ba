package dashboard

import (
	"fmt"

	"github.com/bnema/thinkday/internal/application"
	"github.com/bnema/thinkday/internal/domain"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const (
	doneMarker    = "[x]"
	pendingMarker = "[ ]"
	currentMarker = "[>]"
)

func renderDashboard(dashboard application.Dashboard, s styles, bar progress.Model) string {
	lines := []string{
		s.title.Render("Think Day Sanctuary"),
		s.header.Render(fmt.Sprintf("completed sessions: %d", dashboard.CompletedSessions)),
	}

	if dashboard.Wizard != nil {
		lines = append(lines, s.section.Render(renderWizard(*dashboard.Wizard, s, bar)))
	} else {
		lines = append(lines, s.section.Render(s.empty.Render("No active session. Start one with `td session start`.")))
	}

	lines = append(lines, s.section.Render(renderRecentActions(dashboard.RecentActions, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderWizard(status application.WizardStatus, s styles, bar progress.Model) string {
	mode := "free-form session"
	if status.Guided {
		mode = "guided session"
	}

	parts := []string{
		s.header.Render(fmt.Sprintf("%s  %s", mode, status.Session.ID)),
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.step.Render(fmt.Sprintf("Step %d of %d", int(status.Step)+1, domain.StepCount)),
			"  ",
			s.detail.Render(fmt.Sprintf("%.0f%% Complete", status.Progress*100)),
		),
		bar.ViewAs(status.Progress),
	}

	for step := domain.FirstStep; step <= domain.LastStep; step++ {
		parts = append(parts, stepLine(step, status, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func stepLine(step domain.Step, status application.WizardStatus, s styles) string {
	switch {
	case step == status.Step:
		return s.step.Render(currentMarker + " " + step.Name())
	case step < status.Step:
		return s.done.Render(doneMarker + " " + step.Name())
	default:
		return s.pending.Render(pendingMarker + " " + step.Name())
	}
}

func renderRecentActions(actions []application.RecentAction, s styles) string {
	parts := []string{s.title.Render("Recent Action Steps")}
	if len(actions) == 0 {
		parts = append(parts, s.empty.Render("No completed sessions yet."))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	for _, action := range actions {
		parts = append(parts, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.header.Render(action.Date.Local().Format("2006-01-02")),
			"  ",
			s.detail.Render(action.ActionStep),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
