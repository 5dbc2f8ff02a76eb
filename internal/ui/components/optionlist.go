package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/obinna/prepcli/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// OptionList is a multiple-choice answer selector. It tracks a cursor and a
// committed choice; correctness feedback is applied from outside after a
// check, and only the chosen row is colored so the correct answer stays
// hidden.
type OptionList struct {
	Options []string
	Cursor  int
	Chosen  int // committed answer index, -1 when unanswered

	Checked bool // the committed answer has been checked
	Correct bool // result of that check
}

// NewOptionList creates an option list with no committed choice.
func NewOptionList(options []string) OptionList {
	return OptionList{
		Options: options,
		Cursor:  0,
		Chosen:  -1,
	}
}

// Label returns the display letter for an option index.
func Label(i int) string {
	if i < 0 || i >= len(optionLabels) {
		return "?"
	}
	return optionLabels[i]
}

// Update handles keyboard navigation and selection. Changing the committed
// choice clears any check feedback.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "enter", " ":
		o = o.choose(o.Cursor)
	default:
		// Digits commit directly: 1 selects the first option.
		if len(key) == 1 && key[0] >= '1' && key[0] <= '6' {
			idx := int(key[0] - '1')
			if idx < len(o.Options) {
				o.Cursor = idx
				o = o.choose(idx)
			}
		}
	}

	return o, nil
}

func (o OptionList) choose(idx int) OptionList {
	if idx != o.Chosen {
		o.Checked = false
		o.Correct = false
	}
	o.Chosen = idx
	return o
}

// SetFeedback marks the committed choice as checked.
func (o OptionList) SetFeedback(correct bool) OptionList {
	if o.Chosen < 0 {
		return o
	}
	o.Checked = true
	o.Correct = correct
	return o
}

// View renders the option rows.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Cursor {
			prefix = "▸ "
		}

		marker := " "
		if i == o.Chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, Label(i), opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == o.Chosen && o.Checked && o.Correct:
			style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		case i == o.Chosen && o.Checked && !o.Correct:
			style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		case i == o.Chosen:
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		case i == o.Cursor:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		s += style.Render(line) + "\n"
	}
	return s
}
