package monitor

import (
	"github.com/charmbracelet/lipgloss"

	"boardwatch/internal/board"
)

// Dashboard color palette - dark neon
const (
	// Background colors
	ColorDarkBg    = lipgloss.Color("#0A0A0F") // Deep void
	ColorSurfaceBg = lipgloss.Color("#12121A") // Dark surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	// Semantic colors for stress bands - neon style
	ColorCalm     = lipgloss.Color("#39FF14") // Neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // Electric amber
	ColorCritical = lipgloss.Color("#FF0055") // Hot red-pink

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#FFFFFF") // Pure white
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	// Accent colors
	ColorAccent    = lipgloss.Color("#FF2E97") // Neon pink
	ColorAccentDim = lipgloss.Color("#BF40FF") // Neon purple
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	// Card styles
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1).
			MarginBottom(1)

	CardSpeakingStyle = CardStyle.
				BorderForeground(ColorAccent)

	// Text styles
	MemberNameStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	ThoughtStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	SpeakingMarkerStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	LogPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	LogTimeStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// SpeakingMarker precedes the name of the member currently holding the floor.
const SpeakingMarker = "▶ "

// BandColor maps a stress band to its trace and label color.
func BandColor(b board.StressBand) lipgloss.Color {
	switch b {
	case board.StressHigh:
		return ColorCritical
	case board.StressMedium:
		return ColorWarning
	default:
		return ColorCalm
	}
}

// BandStyle returns a style with the band's foreground color.
func BandStyle(b board.StressBand) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(BandColor(b))
}

// categoryStyles colors event log entries by category.
var categoryStyles = map[Category]lipgloss.Style{
	CategoryInfo:    lipgloss.NewStyle().Foreground(ColorTextSecondary),
	CategorySuccess: lipgloss.NewStyle().Foreground(ColorCalm),
	CategoryError:   lipgloss.NewStyle().Foreground(ColorCritical),
	CategoryStage:   lipgloss.NewStyle().Foreground(ColorAccentDim),
	CategorySpeaker: lipgloss.NewStyle().Foreground(ColorAccent),
}

// CategoryStyle returns the style for a log category.
func CategoryStyle(c Category) lipgloss.Style {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return categoryStyles[CategoryInfo]
}
