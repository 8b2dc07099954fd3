package bubbletea

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/convo"
	"github.com/lucasb-eyer/go-colorful"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Author lipgloss.Style
	Body   lipgloss.Style
	Avatar lipgloss.Style
	Focus  lipgloss.Style
	Muted  lipgloss.Style

	// Endpoints of the animated body surface. The theme must pass
	// Theme.Validate; unparseable colors fall back to black.
	Surface   colorful.Color
	Primary   colorful.Color
	OnSurface colorful.Color
	OnPrimary colorful.Color
}

// NewStyles creates Styles from a Theme.
func NewStyles(t convo.Theme) Styles {
	border := lipgloss.NormalBorder()
	if t.RoundedShapes {
		border = lipgloss.RoundedBorder()
	}
	return Styles{
		Author: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)).Bold(t.BoldAuthor),
		Body: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		Avatar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Secondary)).
			Padding(0, 1),
		Focus: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)).Faint(true),

		Surface:   hexColor(t.Surface),
		Primary:   hexColor(t.Primary),
		OnSurface: hexColor(t.OnSurface),
		OnPrimary: hexColor(t.OnPrimary),
	}
}

func hexColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
