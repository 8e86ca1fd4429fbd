package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the monitoring dashboard.
const (
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#06B6D4") // Cyan
	colorSuccess   = lipgloss.Color("#22C55E") // Green
	colorWarning   = lipgloss.Color("#EAB308") // Yellow
	colorDanger    = lipgloss.Color("#EF4444") // Red
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorText      = lipgloss.Color("#E5E7EB") // Near-white
)

// Styles used throughout the TUI.
var (
	styleActiveTab = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary).
			Padding(0, 2)

	styleInactiveTab = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	styleHeader = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colorMuted)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleContent = lipgloss.NewStyle().
			Padding(1, 2)

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary)

	styleLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleValue = lipgloss.NewStyle().
			Foreground(colorText)

	styleStatusError = lipgloss.NewStyle().
				Foreground(colorDanger)

	styleStatusInfo = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleSelectedRow = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(colorPrimary)

	styleTableHeader = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorSecondary)

	styleSparkCPU = lipgloss.NewStyle().Foreground(colorSecondary)
	styleSparkMem = lipgloss.NewStyle().Foreground(colorSuccess)
	styleSparkRx  = lipgloss.NewStyle().Foreground(colorSuccess)
	styleSparkTx  = lipgloss.NewStyle().Foreground(colorWarning)
)
