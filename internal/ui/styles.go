package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for the selection UI
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - titles, selection marker
	SuccessColor = lipgloss.Color("#43BF6D") // Green - preferred devices
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

// Shared styles for device listings and prompts
var (
	// PreferredStyle is for usbserial entries, printed first
	PreferredStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// DefaultMarkerStyle flags the entry blank input would select
	DefaultMarkerStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// DeviceStyle is for non-preferred entries
	DeviceStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// IndexStyle is for the index number in listings
	IndexStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// NicknameStyle is for registry nicknames shown next to a path
	NicknameStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// TitleStyle is for the picker title bar
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 1)

	// ErrorStyle is for error lines
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
