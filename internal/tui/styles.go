package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/organizer/internal/ui"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	dragStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	dropStyle     = lipgloss.NewStyle().Underline(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	formStyle = frameStyle
)

// frameTop is the number of screen lines the frame adds above its content.
const frameTop = 1

func frame(inner string) string { return frameStyle.Render(inner) }

// box renders the checkbox of the active terminal theme.
func box(checked bool) string {
	if checked {
		return successStyle.Render(ui.Box(true))
	}
	return mutedStyle.Render(ui.Box(false))
}
