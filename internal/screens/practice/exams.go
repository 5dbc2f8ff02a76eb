package practice

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/obinna/prepcli/internal/api"
	"github.com/obinna/prepcli/internal/router"
	"github.com/obinna/prepcli/internal/screen"
	"github.com/obinna/prepcli/internal/ui/layout"
	"github.com/obinna/prepcli/internal/ui/theme"
)

// ExamsScreen lists the examination bodies to practice for.
type ExamsScreen struct {
	deps     *Deps
	exams    []api.Exam
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*ExamsScreen)(nil)
var _ screen.KeyHintProvider = (*ExamsScreen)(nil)

// NewExams creates the exam picker.
func NewExams(deps *Deps) *ExamsScreen {
	return &ExamsScreen{deps: deps}
}

func (s *ExamsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		exams, err := s.deps.Client.ListExams(context.Background())
		return examsLoadedMsg{Exams: exams, Err: err}
	}
}

func (s *ExamsScreen) Title() string {
	return "Choose Exam"
}

func (s *ExamsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ExamsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case examsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.exams = msg.Exams
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.exams)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.exams) {
				exam := s.exams[s.selected]
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: NewSubjects(s.deps, exam)}
				}
			}
		}
	}
	return s, nil
}

func (s *ExamsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if !s.loaded {
		return renderLoading(width, "Loading exams...")
	}
	if len(s.exams) == 0 {
		return renderEmpty(width, "No exams available.")
	}

	var b []string
	b = append(b, "")
	for i, e := range s.exams {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b = append(b, lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(fmt.Sprintf("%s%s", prefix, e.Name))))
	}
	out := ""
	for _, line := range b {
		out += line + "\n"
	}
	return out
}
