// Package tui contains the Bubble Tea user interface.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	Background lipgloss.Color
	Surface    lipgloss.Color

	Text          lipgloss.Color
	TextMuted     lipgloss.Color
	TextHighlight lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
}

// MidnightTheme is the default dark green-and-gold scheme.
var MidnightTheme = Theme{
	Primary:   lipgloss.Color("#10B981"), // Emerald
	Secondary: lipgloss.Color("#0EA5E9"), // Sky blue
	Accent:    lipgloss.Color("#F1C40F"), // Gold

	Background: lipgloss.Color("#0B1120"), // Midnight blue
	Surface:    lipgloss.Color("#16213A"), // Dark slate

	Text:          lipgloss.Color("#E2E8F0"), // Off-white
	TextMuted:     lipgloss.Color("#64748B"), // Slate gray
	TextHighlight: lipgloss.Color("#FFFFFF"),

	Success: lipgloss.Color("#22C55E"),
	Warning: lipgloss.Color("#F59E0B"),
	Error:   lipgloss.Color("#EF4444"),
	Info:    lipgloss.Color("#38BDF8"),
}

// DawnTheme is a lighter alternative for bright terminals.
var DawnTheme = Theme{
	Primary:   lipgloss.Color("#047857"),
	Secondary: lipgloss.Color("#0369A1"),
	Accent:    lipgloss.Color("#B45309"),

	Background: lipgloss.Color("#F8FAFC"),
	Surface:    lipgloss.Color("#E2E8F0"),

	Text:          lipgloss.Color("#0F172A"),
	TextMuted:     lipgloss.Color("#64748B"),
	TextHighlight: lipgloss.Color("#000000"),

	Success: lipgloss.Color("#15803D"),
	Warning: lipgloss.Color("#B45309"),
	Error:   lipgloss.Color("#B91C1C"),
	Info:    lipgloss.Color("#0369A1"),
}

// CurrentTheme is the active theme.
var CurrentTheme = MidnightTheme

// ThemeByName resolves a theme by name, falling back to midnight for
// anything unrecognized.
func ThemeByName(name string) Theme {
	if strings.EqualFold(strings.TrimSpace(name), "dawn") {
		return DawnTheme
	}
	return MidnightTheme
}
