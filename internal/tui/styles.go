package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.Color("#7c3aed")
	accent2 = lipgloss.Color("#06b6d4")
	muted   = lipgloss.Color("#8a8aa0")
	danger  = lipgloss.Color("#ef4444")
)

type styles struct {
	Brand     lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	NavHover  lipgloss.Style
	Name      lipgloss.Style
	Typed     lipgloss.Style
	Stat      lipgloss.Style
	Banner    lipgloss.Style
	Heading   lipgloss.Style
	Title     lipgloss.Style
	Meta      lipgloss.Style
	Faint     lipgloss.Style
	Label     lipgloss.Style
	Invalid   lipgloss.Style
	Status    lipgloss.Style
	Footer    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Brand:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		NavItem:   lipgloss.NewStyle().Padding(0, 1).Foreground(muted),
		NavActive: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(accent),
		NavHover:  lipgloss.NewStyle().Padding(0, 1).Underline(true),
		Name:      lipgloss.NewStyle().Bold(true),
		Typed:     lipgloss.NewStyle().Foreground(accent2),
		Stat:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		Banner:    lipgloss.NewStyle().Foreground(muted).Italic(true),
		Heading:   lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true),
		Title:     lipgloss.NewStyle().Bold(true),
		Meta:      lipgloss.NewStyle().Foreground(muted),
		Faint:     lipgloss.NewStyle().Faint(true),
		Label:     lipgloss.NewStyle().Width(9),
		Invalid:   lipgloss.NewStyle().Width(9).Foreground(danger),
		Status:    lipgloss.NewStyle().Foreground(accent2),
		Footer:    lipgloss.NewStyle().Foreground(muted),
	}
}
