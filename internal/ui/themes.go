package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme groups the styles used to render results.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Positive renders results greater than zero.
	Positive lipgloss.Style
	// Negative renders results less than zero.
	Negative lipgloss.Style
	// Zero renders results equal to zero.
	Zero lipgloss.Style
	// Error renders failure messages.
	Error lipgloss.Style
	// Dim renders secondary text such as operands and line numbers.
	Dim lipgloss.Style
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:     "dark",
		Positive: lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a")),
		Negative: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444")),
		Zero:     lipgloss.NewStyle().Foreground(lipgloss.Color("#4488FF")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444")).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
	}

	// NoColorTheme disables all styling.
	// Used when NO_COLOR is set or --no-color flag is provided.
	NoColorTheme = Theme{
		Name:     "none",
		Positive: lipgloss.NewStyle(),
		Negative: lipgloss.NewStyle(),
		Zero:     lipgloss.NewStyle(),
		Error:    lipgloss.NewStyle(),
		Dim:      lipgloss.NewStyle(),
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/).
// Even with the dark theme, lipgloss drops colors when the output is not a
// terminal.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}

// SignStyle returns the style for a result with the given sign
// (-1, 0 or +1).
func (t Theme) SignStyle(sign int) lipgloss.Style {
	switch {
	case sign < 0:
		return t.Negative
	case sign > 0:
		return t.Positive
	default:
		return t.Zero
	}
}
