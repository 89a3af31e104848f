package tui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title         lipgloss.Style
	Label         lipgloss.Style
	TimerRunning  lipgloss.Style
	TimerStopped  lipgloss.Style
	TimerElapsed  lipgloss.Style
	EntrySelected lipgloss.Style
	EntryNormal   lipgloss.Style
	EntryProject  lipgloss.Style
	EntryDuration lipgloss.Style
	Help          lipgloss.Style
	Notice        lipgloss.Style
	Error         lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		TimerRunning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		TimerStopped:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		TimerElapsed:  lipgloss.NewStyle().Bold(true),
		EntrySelected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		EntryNormal:   lipgloss.NewStyle(),
		EntryProject:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		EntryDuration: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Notice:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
