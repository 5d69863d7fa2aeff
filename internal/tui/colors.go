package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// ConfigureColors sets lipgloss's color profile: colors are disabled when
// stdout is not a terminal or NO_COLOR is set, and otherwise follow the
// terminal's advertised capabilities.
func ConfigureColors() {
	if os.Getenv("NO_COLOR") != "" || !isatty.IsTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}

// ColorWarning colors text for warnings
func ColorWarning(text string) string {
	return warningStyle.Render(text)
}

// ColorError colors text for errors
func ColorError(text string) string {
	return errorStyle.Render(text)
}

// ColorBranch colors a branch name
func ColorBranch(text string) string {
	return branchStyle.Render(text)
}

// ColorFaint renders de-emphasized text
func ColorFaint(text string) string {
	return faintStyle.Render(text)
}
