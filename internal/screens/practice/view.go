package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/obinna/prepcli/internal/session"
	"github.com/obinna/prepcli/internal/ui/theme"
)

func (t *TestScreen) View(width, height int) string {
	if t.errMsg != "" {
		return renderError(width, t.errMsg)
	}
	if t.state == nil {
		return renderLoading(width, "Preparing your test...")
	}
	if t.state.Phase == session.PhaseSubmitting {
		return renderLoading(width, "Submitting your test...")
	}
	if t.confirmQuit {
		return renderConfirm(width, "Leave this test?",
			"Nothing will be scored or submitted.")
	}
	if t.confirmSubmit {
		return renderConfirm(width,
			fmt.Sprintf("Submit now for %d questions?", t.state.Answered()),
			fmt.Sprintf("Unanswered questions count as wrong. %d left blank.",
				len(t.state.Questions)-t.state.Answered()))
	}
	return t.renderQuestion(width, height)
}

func (t *TestScreen) renderQuestion(width, height int) string {
	state := t.state
	q := state.Question()

	var b strings.Builder

	// Info line: position and answered count on the left, countdown right.
	remaining := state.Remaining(t.now)
	mins := int(remaining.Minutes())
	secs := int(remaining.Seconds()) % 60
	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if remaining.Minutes() < 5 {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Q %d/%d", state.Current+1, len(state.Questions)))
	infoLeft += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("   %d answered", state.Answered()))

	infoRight := timerStyle.Render(fmt.Sprintf("%d:%02d", mins, secs))

	pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(infoLeft + strings.Repeat(" ", pad) + infoRight)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	// Topic tag.
	if q.Topic.Name != "" && q.Topic.Name != "Topic" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(q.Topic.Name))
		b.WriteString("\n")
	}

	// Question text.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(wrap(q.Text, min(width-8, 76))))
	b.WriteString("\n\n")

	// Options.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, t.options.View()))
	b.WriteString("\n")

	// Assist panel.
	if panel := t.renderPanel(width); panel != "" {
		b.WriteString("\n")
		b.WriteString(panel)
		b.WriteString("\n")
	}

	// Status / busy line.
	if t.jumping {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render("Go to: ")+t.jumpInput.View()))
	} else if t.busy != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render(t.busy))
	} else if t.statusMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(t.statusMsg))
	}

	return b.String()
}

// renderPanel renders the explanation or worked-example box below the
// options.
func (t *TestScreen) renderPanel(width int) string {
	idx := t.state.Current
	boxWidth := min(width-8, 76)

	var title, body string
	switch t.panel {
	case panelExplanation:
		exp, ok := t.cache.Explanation(idx)
		if !ok {
			return ""
		}
		title = "Explanation"
		if exp.Fallback {
			title = "Explanation (unavailable)"
		}
		body = exp.Text
	case panelExample:
		ex, ok := t.cache.Example(idx)
		if !ok {
			return ""
		}
		title = "Worked Example"
		if ex.Fallback {
			title = "Worked Example (unavailable)"
		}
		body = fmt.Sprintf("%s\n\n%s\n\nAnswer: %s", ex.Problem, ex.Solution, ex.Answer)
	default:
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(boxWidth).
		Padding(0, 1).
		Render(
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(title) +
				"\n" +
				lipgloss.NewStyle().Foreground(theme.Text).Render(wrap(body, boxWidth-4)) +
				"\n" +
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("Tab to close"))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

// renderConfirm renders a yes/no dialog.
func renderConfirm(width int, question, detail string) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(question))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(detail))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No"))
	return b.String()
}

// renderLoading renders a centered dim message.
func renderLoading(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  " + msg)
}

// renderEmpty renders a centered empty-state message.
func renderEmpty(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("\n\n  " + msg)
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

// wrap folds text at word boundaries to the given width.
func wrap(text string, width int) string {
	if width < 10 {
		width = 10
	}
	var out strings.Builder
	for i, para := range strings.Split(text, "\n") {
		if i > 0 {
			out.WriteString("\n")
		}
		lineLen := 0
		for j, word := range strings.Fields(para) {
			wl := lipgloss.Width(word)
			if j > 0 {
				if lineLen+1+wl > width {
					out.WriteString("\n")
					lineLen = 0
				} else {
					out.WriteString(" ")
					lineLen++
				}
			}
			out.WriteString(word)
			lineLen += wl
		}
	}
	return out.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
