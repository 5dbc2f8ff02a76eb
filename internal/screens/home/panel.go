package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/obinna/prepcli/internal/pricing"
	"github.com/obinna/prepcli/internal/ui/theme"
)

// Block-letter title.
const titleFull = ` ██████╗ ██████╗ ███████╗██████╗  ██████╗██╗     ██╗
 ██╔══██╗██╔══██╗██╔════╝██╔══██╗██╔════╝██║     ██║
 ██████╔╝██████╔╝█████╗  ██████╔╝██║     ██║     ██║
 ██╔═══╝ ██╔══██╗██╔══╝  ██╔═══╝ ██║     ██║     ██║
 ██║     ██║  ██║███████╗██║     ╚██████╗███████╗██║
 ╚═╝     ╚═╝  ╚═╝╚══════╝╚═╝      ╚═════╝╚══════╝╚═╝`

const titleCompact = "P · R · E · P · C · L · I"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(titleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(titleFull))
}

// renderStatsBar renders wallet balance, free actions left, and tests
// taken in a bordered box matching content width.
func renderStatsBar(balance, freeLeft, tests, cw int, compact bool) string {
	balanceStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	freeStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	testStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			balanceStyle.Render(pricing.Naira(balance)),
			freeText(freeLeft, true, freeStyle, dimStyle),
			testStyle.Render(fmt.Sprintf("▣%d", tests)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			balanceStyle.Render(fmt.Sprintf("%s BALANCE", pricing.Naira(balance))),
			freeText(freeLeft, false, freeStyle, dimStyle),
			testStyle.Render(fmt.Sprintf("▣ %d TESTS", tests)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func freeText(left int, compact bool, active, dim lipgloss.Style) string {
	if left == 0 {
		if compact {
			return dim.Render("⚡0")
		}
		return dim.Render("⚡ NO FREE LEFT")
	}
	if compact {
		return active.Render(fmt.Sprintf("⚡%d", left))
	}
	return active.Render(fmt.Sprintf("⚡ %d FREE", left))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	disabledBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if disabled[i] {
			buttons = append(buttons, disabledBtn.Render(label))
		} else if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		if disabled[i] {
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + label)
		} else if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Accent).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderLoginBanner renders a warning banner when platform credentials are
// missing.
func renderLoginBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Run 'prepcli login' and export the printed variables to connect")
}

// renderLLMBanner renders a warning banner when no LLM API key is configured.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key for explanations and examples (see prepcli --help)")
}

// renderFrame wraps content in a double-border frame, centering vertically
// and horizontally within the given dimensions.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
