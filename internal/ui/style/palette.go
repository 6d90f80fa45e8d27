package style

import "github.com/charmbracelet/lipgloss"

// Settings page colors
var (
	Violet = lipgloss.Color("#6200EE") // Submit button
	Cyan   = lipgloss.Color("#00E5FF") // Focus highlight
	Green  = lipgloss.Color("#2AFFAA") // Success
	Red    = lipgloss.Color("#FF5555") // Errors
	Yellow = lipgloss.Color("#FFB500") // Warnings
	Blue   = lipgloss.Color("#3B82F6") // Info

	Base03 = lipgloss.Color("#1E1E1E") // Background
	Base02 = lipgloss.Color("#333333") // Input background
	Base01 = lipgloss.Color("#555555") // Borders / muted text
	Base2  = lipgloss.Color("#F5F5F5") // Primary text
	Base1  = lipgloss.Color("#B4BCC8") // Secondary text
)

// Palette provides a centralized color management
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Warning   lipgloss.Color
	Info      lipgloss.Color

	Background    lipgloss.Color
	BackgroundAlt lipgloss.Color
	Text          lipgloss.Color
	TextMuted     lipgloss.Color
	TextSecondary lipgloss.Color
}

// DefaultPalette returns the default color palette
func DefaultPalette() Palette {
	return Palette{
		Primary:   Cyan,
		Secondary: Violet,
		Success:   Green,
		Error:     Red,
		Warning:   Yellow,
		Info:      Blue,

		Background:    Base03,
		BackgroundAlt: Base02,
		Text:          Base2,
		TextMuted:     Base01,
		TextSecondary: Base1,
	}
}
