// Package tui presenta el modelo de carta en la terminal con bubbletea.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#C0392B")
	colorAccent  = lipgloss.Color("#F39C12")
	colorMuted   = lipgloss.Color("#7F8C8D")
	colorSuccess = lipgloss.Color("#27AE60")
	colorError   = lipgloss.Color("#E53935")
)

// Styles estilos lipgloss de la interfaz.
type Styles struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Item      lipgloss.Style
	Cursor    lipgloss.Style
	Selected  lipgloss.Style
	Price     lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Panel     lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles paleta por defecto.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).MarginBottom(1),
		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(colorMuted),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(colorPrimary),
		Item:      lipgloss.NewStyle(),
		Cursor:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Selected:  lipgloss.NewStyle().Foreground(colorSuccess),
		Price:     lipgloss.NewStyle().Foreground(colorAccent),
		Muted:     lipgloss.NewStyle().Foreground(colorMuted),
		Success:   lipgloss.NewStyle().Bold(true).Foreground(colorSuccess),
		Error:     lipgloss.NewStyle().Foreground(colorError),
		Panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1).MarginTop(1),
		Help:      lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
	}
}
