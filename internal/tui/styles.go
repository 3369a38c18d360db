package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorPrimary = lipgloss.Color("#7D56F4")
	ColorAccent  = lipgloss.Color("#F4B400")
	ColorSuccess = lipgloss.Color("#04B575")
	ColorDanger  = lipgloss.Color("#FF5F87")
	ColorMuted   = lipgloss.Color("#626262")
	ColorBorder  = lipgloss.Color("#3C3C3C")
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Underline(true).
			Padding(0, 1)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true)

	MetricPositiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)

	RecommendedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)
)

// riskStyle colors a risk level
func riskStyle(level string) lipgloss.Style {
	switch level {
	case "HIGH":
		return lipgloss.NewStyle().Foreground(ColorDanger)
	case "MEDIUM":
		return lipgloss.NewStyle().Foreground(ColorAccent)
	default:
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	}
}
