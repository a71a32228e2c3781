package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles is the per-theme style set. Rebuilt whenever the theme changes.
type styles struct {
	Canvas        lipgloss.Style
	Stats         lipgloss.Style
	Header        lipgloss.Style
	Label         lipgloss.Style
	Value         lipgloss.Style
	Graph         lipgloss.Style
	StatusRunning lipgloss.Style
	StatusPaused  lipgloss.Style
	Subtle        lipgloss.Style
	Detail        lipgloss.Style
	DetailTitle   lipgloss.Style
	Error         lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		Canvas: lipgloss.NewStyle().Padding(1, 2),
		Stats: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(1, 2).
			Width(statsWidth),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
		Label:         lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		Value:         lipgloss.NewStyle().Foreground(t.Text),
		Graph:         lipgloss.NewStyle().Foreground(t.Secondary).Padding(1, 0),
		StatusRunning: lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		StatusPaused:  lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		Subtle:        lipgloss.NewStyle().Foreground(t.Muted),
		Detail: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Secondary).
			Padding(0, 1),
		DetailTitle: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Error:       lipgloss.NewStyle().Bold(true).Foreground(t.Error),
	}
}

// Separator is a thin rule with a centre mark.
func (s styles) Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(0, mid-3))
	right := strings.Repeat("─", max(0, width-mid-3))
	return s.Subtle.Render(left + " ◆ " + right)
}

// swatch renders a coloured bullet for the legend.
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●")
}
