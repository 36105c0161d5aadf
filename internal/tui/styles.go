package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the reusable Lipgloss styles for the TUI.
type Styles struct {
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Box         lipgloss.Style
	SelectedBox lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style

	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Bold      lipgloss.Style
	Highlight lipgloss.Style
	Arabic    lipgloss.Style

	StatusOK      lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style

	Footer lipgloss.Style
}

// DefaultStyles returns the default Lipgloss styles using the current
// theme.
func DefaultStyles() Styles {
	theme := CurrentTheme

	return Styles{
		Header: lipgloss.NewStyle().
			Padding(0, 1),

		HeaderTitle: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		TabActive: lipgloss.NewStyle().
			Foreground(theme.TextHighlight).
			Background(theme.Primary).
			Padding(0, 1).
			Bold(true),

		TabInactive: lipgloss.NewStyle().
			Foreground(theme.TextMuted).
			Padding(0, 1),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Surface).
			Padding(1),

		SelectedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(1),

		ListItem: lipgloss.NewStyle().
			Foreground(theme.Text).
			Padding(0, 1),

		ListItemSelected: lipgloss.NewStyle().
			Foreground(theme.TextHighlight).
			Background(theme.Surface).
			Padding(0, 1).
			Bold(true),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Text),

		Muted: lipgloss.NewStyle().
			Foreground(theme.TextMuted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true),

		Highlight: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Arabic: lipgloss.NewStyle().
			Foreground(theme.Secondary),

		StatusOK: lipgloss.NewStyle().
			Foreground(theme.Success),

		StatusWarning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		StatusError: lipgloss.NewStyle().
			Foreground(theme.Error),

		StatusInfo: lipgloss.NewStyle().
			Foreground(theme.Info),

		Footer: lipgloss.NewStyle().
			Foreground(theme.TextMuted).
			Padding(0, 1),
	}
}
