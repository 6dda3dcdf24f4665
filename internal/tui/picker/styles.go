package picker

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("241")
	accentColor  = lipgloss.Color("45")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	focusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(primaryColor).
				Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Bold(true)

	weekdayStyle = lipgloss.NewStyle().Foreground(mutedColor)

	cellStyle = lipgloss.NewStyle()

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(primaryColor).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)

	todayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().Foreground(mutedColor)
)
