// Package wallet renders the balance screen: current platform balance,
// remaining free actions, and the lifetime spend summary.
package wallet

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/obinna/prepcli/internal/pricing"
	"github.com/obinna/prepcli/internal/router"
	"github.com/obinna/prepcli/internal/screen"
	"github.com/obinna/prepcli/internal/store"
	"github.com/obinna/prepcli/internal/ui/layout"
	"github.com/obinna/prepcli/internal/ui/theme"
	walletpkg "github.com/obinna/prepcli/internal/wallet"
)

type walletLoadedMsg struct {
	Balance  int
	FreeLeft int
	Spend    store.SpendSummary
	Err      error
}

// WalletScreen shows wallet status and spend totals.
type WalletScreen struct {
	ledger    *walletpkg.Ledger
	eventRepo store.EventRepo
	userID    string

	balance  int
	freeLeft int
	spend    store.SpendSummary
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*WalletScreen)(nil)
var _ screen.KeyHintProvider = (*WalletScreen)(nil)

// New creates a new WalletScreen.
func New(ledger *walletpkg.Ledger, eventRepo store.EventRepo, userID string) *WalletScreen {
	return &WalletScreen{ledger: ledger, eventRepo: eventRepo, userID: userID}
}

func (s *WalletScreen) Init() tea.Cmd {
	return s.load()
}

func (s *WalletScreen) load() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := s.ledger.Refresh(ctx); err != nil {
			return walletLoadedMsg{Err: err}
		}
		var spend store.SpendSummary
		if s.eventRepo != nil {
			spend, _ = s.eventRepo.Spend(ctx, s.userID)
		}
		return walletLoadedMsg{
			Balance:  s.ledger.Balance(),
			FreeLeft: s.ledger.CachedFreeRemaining(),
			Spend:    spend,
		}
	}
}

func (s *WalletScreen) Title() string {
	return "Wallet"
}

func (s *WalletScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *WalletScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case walletLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.balance = msg.Balance
			s.freeLeft = msg.FreeLeft
			s.spend = msg.Spend
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r", "R":
			s.loaded = false
			return s, s.load()
		}
	}
	return s, nil
}

func (s *WalletScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading wallet...")
	}

	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(pricing.Naira(s.balance)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("current balance"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Free actions remaining: %d", s.freeLeft)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", minInt(width-8, 50)))))
	b.WriteString("\n")

	spendLine := fmt.Sprintf("Spent: %s      Free used: %d      Refused: %d",
		pricing.Naira(s.spend.TotalDebited), s.spend.FreeUsed, s.spend.Denied)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(spendLine))
	b.WriteString("\n")

	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
