package dashboard

import (
	"errors"
	"io"

	"github.com/bnema/thinkday/internal/application"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

const progressWidth = 30

type renderReadyMsg struct{}

type model struct {
	view     func(styles, progress.Model) string
	styles   styles
	progress progress.Model
	output   string
}

func newModel(view func(styles, progress.Model) string) model {
	return model{
		view:     view,
		styles:   newStyles(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth), progress.WithoutPercentage()),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.view(m.styles, m.progress)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render draws the home dashboard: the active wizard, if any, and the most
// recent action steps.
func Render(dashboard application.Dashboard) (string, error) {
	return run(newModel(func(s styles, bar progress.Model) string {
		return renderDashboard(dashboard, s, bar)
	}))
}

// RenderWizard draws the guided-session header and the current step.
func RenderWizard(status application.WizardStatus) (string, error) {
	return run(newModel(func(s styles, bar progress.Model) string {
		return renderWizard(status, s, bar)
	}))
}

func run(m model) (string, error) {
	p := tea.NewProgram(
		m,
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
