package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan — primary accent
	colorAccent  = lipgloss.Color("#FFD700") // Gold — high urgency
	colorSuccess = lipgloss.Color("#00E676") // Green — low urgency
	colorDanger  = lipgloss.Color("#FF5252") // Red — overdue/cycles
	colorMuted   = lipgloss.Color("#636363") // Gray — de-emphasized
	colorWhite   = lipgloss.Color("#EEEEEE") // Off-white — primary text
	colorSurface = lipgloss.Color("#1E1E2E") // Dark surface — bars
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

var (
	styleTitleBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStrategyActive = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleStrategyIdle = lipgloss.NewStyle().
				Foreground(colorMuted)

	styleRowSelected = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true)

	styleRow = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleScoreHigh = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	styleScoreMid  = lipgloss.NewStyle().Foreground(colorAccent)
	styleScoreLow  = lipgloss.NewStyle().Foreground(colorSuccess)

	styleCycleBadge = lipgloss.NewStyle().Foreground(colorDanger)

	styleDetail = lipgloss.NewStyle().
			Foreground(colorMuted).
			PaddingLeft(2)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// scoreStyle picks a style by score bucket.
func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 7:
		return styleScoreHigh
	case score >= 4:
		return styleScoreMid
	default:
		return styleScoreLow
	}
}
