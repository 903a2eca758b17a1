package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primary = lipgloss.Color("#7C3AED") // Purple
	active  = lipgloss.Color("#10B981") // Green
	muted   = lipgloss.Color("#6B7280") // Gray
	amber   = lipgloss.Color("#F59E0B")
	white   = lipgloss.Color("#FFFFFF")

	appStyle = lipgloss.NewStyle().
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Background(primary).
			Foreground(white).
			Padding(0, 1)

	statusActiveStyle = lipgloss.NewStyle().
				Foreground(active)

	statusArchivedStyle = lipgloss.NewStyle().
				Foreground(amber).
				Italic(true)

	statusUnknownStyle = lipgloss.NewStyle().
				Foreground(muted)

	tagStyle = lipgloss.NewStyle().
			Foreground(muted)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(muted).
			MarginTop(1)

	flashStyle = lipgloss.NewStyle().
			Foreground(active).
			MarginTop(1)
)
