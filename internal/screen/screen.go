package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/obinna/prepcli/internal/ui/layout"
)

// Screen is one screen in the navigation stack. The router owns the
// header and footer; a screen only renders the region between them.
type Screen interface {
	// Init runs when the screen is pushed.
	Init() tea.Cmd

	// Update handles a message and returns the replacement screen. The
	// value form keeps screens immutable the way bubbletea models are.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body into the given region.
	View(width, height int) string

	// Title is shown centered in the header bar.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer.
// Screens without it get the router's default hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
