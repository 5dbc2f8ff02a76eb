package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/obinna/prepcli/internal/router"
	"github.com/obinna/prepcli/internal/screen"
	"github.com/obinna/prepcli/internal/screens/history"
	"github.com/obinna/prepcli/internal/screens/practice"
	walletscreen "github.com/obinna/prepcli/internal/screens/wallet"
	"github.com/obinna/prepcli/internal/ui/components"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps       *practice.Deps
	menu       components.Menu
	menuLabels []string
	disabled   map[int]bool
	testCount  int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. A nil client or assist service disables
// the affected menu entries rather than failing.
func New(deps *practice.Deps) *HomeScreen {
	var testCount int
	if deps.Events != nil {
		if sessions, err := deps.Events.RecentSessions(context.Background(), 500); err == nil {
			testCount = len(sessions)
		}
	}

	menuLabels := []string{"START PRACTICE", "HISTORY", "WALLET", "EXIT"}
	disabled := map[int]bool{
		0: deps.Client == nil,
		2: deps.Client == nil,
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Disabled: disabled[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practice.NewExams(deps)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Events)}
			}
		}},
		{Label: menuLabels[2], Disabled: disabled[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: walletscreen.New(deps.Ledger, deps.Events, deps.UserID)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps:       deps,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		disabled:   disabled,
		testCount:  testCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := contentWidth(width)

	var balance, freeLeft int
	if h.deps.Ledger != nil {
		balance = h.deps.Ledger.Balance()
		freeLeft = h.deps.Ledger.CachedFreeRemaining()
	}

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(balance, freeLeft, h.testCount, cw, compact))

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw, h.disabled))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw, h.disabled))
	}

	if h.deps.Client == nil {
		sections = append(sections, renderLoginBanner(cw))
	} else if h.deps.Assist == nil {
		sections = append(sections, renderLLMBanner(cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
