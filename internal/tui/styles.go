package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the roster screens use.
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const defaultAccent lipgloss.Color = "#f5c2e7"

type styles struct {
	header      lipgloss.Style
	app         lipgloss.Style
	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style
	tabSep      lipgloss.Style
	crumb       lipgloss.Style
	pane        lipgloss.Style
	focusPane   lipgloss.Style
	paneTitle   lipgloss.Style
	cursor      lipgloss.Style
	muted       lipgloss.Style
	present     lipgloss.Style
	absent      lipgloss.Style
	feedback    lipgloss.Style
	errorText   lipgloss.Style
	statusBar   lipgloss.Style
	footer      lipgloss.Style
	helpKey     lipgloss.Style
	helpDesc    lipgloss.Style
}

// newStyles builds the theme around accent, which may be any lipgloss color
// string (hex or ANSI index). Empty falls back to pink.
func newStyles(accent string) styles {
	a := defaultAccent
	if accent != "" {
		a = lipgloss.Color(accent)
	}
	return styles{
		header: lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2),
		app: lipgloss.NewStyle().Foreground(a).Bold(true),
		activeTab: lipgloss.NewStyle().
			Foreground(a).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 1),
		inactiveTab: lipgloss.NewStyle().
			Foreground(colorOverlay1).
			Background(colorMantle).
			Padding(0, 1),
		tabSep: lipgloss.NewStyle().Foreground(colorOverlay0).Background(colorMantle),
		crumb:  lipgloss.NewStyle().Foreground(colorSubtext0),
		pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1),
		focusPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorLavender).
			Padding(0, 1),
		paneTitle: lipgloss.NewStyle().Foreground(a).Bold(true),
		cursor:    lipgloss.NewStyle().Foreground(a).Bold(true),
		muted:     lipgloss.NewStyle().Foreground(colorOverlay1),
		present:   lipgloss.NewStyle().Foreground(colorGreen),
		absent:    lipgloss.NewStyle().Foreground(colorRed),
		feedback:  lipgloss.NewStyle().Foreground(colorSubtext1),
		errorText: lipgloss.NewStyle().Foreground(colorRed),
		statusBar: lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2),
		footer: lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2),
		helpKey:  lipgloss.NewStyle().Foreground(a).Bold(true),
		helpDesc: lipgloss.NewStyle().Foreground(colorSubtext0),
	}
}
