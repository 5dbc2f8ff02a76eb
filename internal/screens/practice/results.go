package practice

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/obinna/prepcli/internal/reconcile"
	"github.com/obinna/prepcli/internal/router"
	"github.com/obinna/prepcli/internal/screen"
	"github.com/obinna/prepcli/internal/session"
	"github.com/obinna/prepcli/internal/ui/components"
	"github.com/obinna/prepcli/internal/ui/layout"
	"github.com/obinna/prepcli/internal/ui/theme"
)

// ResultsScreen shows the scored outcome of a finished test and how much
// of it made it upstream.
type ResultsScreen struct {
	state   *session.State
	result  session.Result
	outcome reconcile.Outcome
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// NewResults creates the results screen.
func NewResults(state *session.State, result session.Result, outcome reconcile.Outcome) *ResultsScreen {
	return &ResultsScreen{state: state, result: result, outcome: outcome}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	r := s.result

	var b strings.Builder
	b.WriteString("\n")

	headline := "Test complete!"
	if s.state != nil && s.state.TimeExpired {
		headline = "Time's up!"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(headline))
	b.WriteString("\n\n")

	if s.state != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%s · %s", s.state.ExamName, s.state.SubjectName)))
		b.WriteString("\n\n")
	}

	// Big score.
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	if r.Score < 50 {
		scoreStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(scoreStyle.Render(fmt.Sprintf("%.1f%%", r.Score))))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", r.Score/100, false, min(width-8, 48))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	mins := int(r.Duration.Minutes())
	secs := int(r.Duration.Seconds()) % 60
	stats := fmt.Sprintf("Questions: %d      Attempted: %d      Correct: %d      Time: %d:%02d",
		r.Total, r.Attempted, r.Correct, mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(stats))
	b.WriteString("\n\n")

	// Sync status.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60)))))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(s.syncLine()))
	b.WriteString("\n")

	return b.String()
}

// syncLine summarizes reconciliation for the footer of the results card.
func (s *ResultsScreen) syncLine() string {
	o := s.outcome
	if o.Skipped {
		return "Saved locally only (the test was never registered with the platform)."
	}
	score := "score saved"
	if !o.ScoreSaved {
		score = "score not saved"
	}
	return fmt.Sprintf("Synced: %s, %d/%d answers uploaded.", score, o.Sent, o.Total)
}
