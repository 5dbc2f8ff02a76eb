package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/obinna/prepcli/internal/ui/theme"
)

// MenuItem is one entry in a vertical menu. A disabled item renders but
// cannot be selected; the home screen uses that for features that need
// a wallet balance or an API key the user has not set up yet.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical menu driven by up/down/enter.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu builds a menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

func (m Menu) Init() tea.Cmd {
	return nil
}

// Update moves the selection, skipping disabled items, and fires the
// selected item's action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

func (m Menu) View() string {
	selectedStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	itemStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	for i, item := range m.Items {
		if i == m.Selected {
			b.WriteString(selectedStyle.Render("  ▸ " + item.Label))
		} else {
			b.WriteString(itemStyle.Render("    " + item.Label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
