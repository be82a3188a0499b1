package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorPrimary = lipgloss.Color("#7D56F4")
	ColorAccent  = lipgloss.Color("#04B575")
	ColorDanger  = lipgloss.Color("#FF5F87")
	ColorMuted   = lipgloss.Color("#626262")
	ColorText    = lipgloss.Color("#FAFAFA")
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)

	LabelStyle         = lipgloss.NewStyle().Foreground(ColorMuted).Width(22)
	ValueStyle         = lipgloss.NewStyle().Foreground(ColorText)
	SelectedLabelStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Width(22)
	SelectedValueStyle = lipgloss.NewStyle().Foreground(ColorText).Bold(true)

	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger)
	HelpStyle  = lipgloss.NewStyle().Foreground(ColorMuted)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)
)
