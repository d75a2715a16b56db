package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorDone     lipgloss.Color = "#6c7086"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Padding(0, 1)

	sensorOnStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	sensorOffStyle = lipgloss.NewStyle().Foreground(colorMuted)

	rowStyle         = lipgloss.NewStyle().Foreground(colorText)
	rowDoneStyle     = lipgloss.NewStyle().Foreground(colorDone).Strikethrough(true)
	cursorStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	entryIconStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	emptyHintStyle   = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	statusBarStyle   = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface0)
	statusErrStyle   = lipgloss.NewStyle().Foreground(colorError).Background(colorSurface0)
	footerStyle      = lipgloss.NewStyle().Background(colorMantle)
	footerKeyStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	footerDescStyle  = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
	footerSpaceStyle = lipgloss.NewStyle().Background(colorMantle)
)
