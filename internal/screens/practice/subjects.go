package practice

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/obinna/prepcli/internal/api"
	"github.com/obinna/prepcli/internal/bank"
	"github.com/obinna/prepcli/internal/router"
	"github.com/obinna/prepcli/internal/screen"
	"github.com/obinna/prepcli/internal/ui/layout"
	"github.com/obinna/prepcli/internal/ui/theme"
)

// SubjectsScreen lists the subjects under the chosen exam that actually
// have practice material.
type SubjectsScreen struct {
	deps     *Deps
	exam     api.Exam
	subjects []bank.SubjectCount
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*SubjectsScreen)(nil)
var _ screen.KeyHintProvider = (*SubjectsScreen)(nil)

// NewSubjects creates the subject picker for one exam.
func NewSubjects(deps *Deps, exam api.Exam) *SubjectsScreen {
	return &SubjectsScreen{deps: deps, exam: exam}
}

func (s *SubjectsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		subjects, err := s.deps.Loader.SubjectsWithQuestions(context.Background(), s.exam.ID)
		return subjectsLoadedMsg{Subjects: subjects, Err: err}
	}
}

func (s *SubjectsScreen) Title() string {
	return s.exam.Name + " Subjects"
}

func (s *SubjectsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SubjectsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case subjectsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.subjects = msg.Subjects
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
			if s.selected < len(s.subjects)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.subjects) {
				sc := s.subjects[s.selected]
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: NewSetup(s.deps, s.exam, sc.Subject, sc.Count)}
				}
			}
		}
	}
	return s, nil
}

func (s *SubjectsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if !s.loaded {
		return renderLoading(width, "Loading subjects...")
	}
	if len(s.subjects) == 0 {
		return renderEmpty(width, fmt.Sprintf("No subjects with questions for %s.", s.exam.Name))
	}

	out := "\n"
	for i, sc := range s.subjects {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		line := style.Render(prefix+sc.Subject.Name) +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %d questions", sc.Count))
		out += lipgloss.PlaceHorizontal(width, lipgloss.Center, line) + "\n"
	}
	return out
}
