package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/obinna/prepcli/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with app styling and an optional
// digits-only filter. The jump-to-question prompt uses the numeric
// form; the login screen uses the free-text form.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	MaxWidth    int
	submitted   bool
	valid       bool
}

// NewTextInput builds a focused input. maxWidth doubles as the
// character limit when positive.
func NewTextInput(placeholder string, numericOnly bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:       ti,
		NumericOnly: numericOnly,
		MaxWidth:    maxWidth,
	}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards messages to the inner model, swallowing non-digit
// keystrokes when the input is numeric.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			if key := kmsg.String(); len(key) == 1 && (key[0] < '0' || key[0] > '9') {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input, with a check or cross appended once the
// value has been submitted and validated.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		mark, color := "✗", theme.Error
		if t.valid {
			mark, color = "✓", theme.Success
		}
		view += " " + lipgloss.NewStyle().Foreground(color).Render(mark)
	}
	return view
}

// Value returns the current input text.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// NumericValue parses the input as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// Submit records the validation outcome for rendering.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
