package practice

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/obinna/prepcli/internal/api"
	"github.com/obinna/prepcli/internal/pricing"
	"github.com/obinna/prepcli/internal/router"
	"github.com/obinna/prepcli/internal/screen"
	"github.com/obinna/prepcli/internal/session"
	"github.com/obinna/prepcli/internal/ui/components"
	"github.com/obinna/prepcli/internal/ui/layout"
	"github.com/obinna/prepcli/internal/ui/theme"
)

const (
	fieldCount = iota
	fieldDuration
	fieldStart
)

// SetupScreen lets the student shape the test: how many questions and how
// long on the clock.
type SetupScreen struct {
	deps      *Deps
	exam      api.Exam
	subject   api.Subject
	available int
	setup     session.Setup
	field     int
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// NewSetup creates the setup screen. available is the subject's question
// count and caps the configurable test size.
func NewSetup(deps *Deps, exam api.Exam, subject api.Subject, available int) *SetupScreen {
	return &SetupScreen{
		deps:      deps,
		exam:      exam,
		subject:   subject,
		available: available,
		setup:     session.DefaultSetup(available),
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return s.subject.Name + " Setup"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Adjust"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.field > fieldCount {
			s.field--
		}
	case "down", "j", "tab":
		if s.field < fieldStart {
			s.field++
		}
	case "left", "h":
		s.adjust(-s.step())
	case "right", "l":
		s.adjust(s.step())
	case "enter":
		if s.field == fieldStart {
			return s, s.start()
		}
		s.field++
	}
	return s, nil
}

// step is 5 for question count, 10 for minutes.
func (s *SetupScreen) step() int {
	if s.field == fieldDuration {
		return 10
	}
	return 5
}

func (s *SetupScreen) adjust(delta int) {
	switch s.field {
	case fieldCount:
		s.setup.QuestionCount = session.ClampCount(s.setup.QuestionCount+delta, s.available)
	case fieldDuration:
		s.setup.DurationMinutes = session.ClampDuration(s.setup.DurationMinutes + delta)
	}
}

// start pushes the test screen. Pushing rather than replacing keeps the
// setup screen underneath, so a failed test registration lands back here.
func (s *SetupScreen) start() tea.Cmd {
	deps, exam, subject, setup := s.deps, s.exam, s.subject, s.setup
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: NewTest(deps, exam, subject, setup)}
	}
}

func (s *SetupScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("%s · %s", s.exam.Name, s.subject.Name))

	countLabel := fmt.Sprintf("Questions   ◂ %3d ▸", s.setup.QuestionCount)
	durLabel := fmt.Sprintf("Duration    ◂ %3d min ▸", s.setup.DurationMinutes)

	rows := []string{
		renderField(countLabel, s.field == fieldCount),
		renderField(durLabel, s.field == fieldDuration),
		"",
		components.PanelButton("START TEST", s.field == fieldStart, 24),
	}

	prices := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("check %s · explanation %s · example %s · submit %s",
			pricing.Naira(s.deps.Prices.Check),
			pricing.Naira(s.deps.Prices.Explanation),
			pricing.Naira(s.deps.Prices.Example),
			pricing.Naira(s.deps.Prices.Submit)))

	body := title + "\n\n" +
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(strings.Join(rows, "\n")) +
		"\n\n" + prices

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(components.Card(body, cw))
}

func renderField(label string, active bool) string {
	if active {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + label)
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render("  " + label)
}
