package style

import (
	"charm.land/lipgloss/v2"
)

var (
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	MutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("246")) // Warm muted grey text
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	HlStyle       = lipgloss.NewStyle().Background(lipgloss.Color("240"))
	RowStyle      = lipgloss.NewStyle().Background(lipgloss.Color("235")) // Very subtle warm grey row
	ActiveTab     = lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(lipgloss.Color("237"))
	InactiveTab   = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("246"))
	PendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	DocumentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("109"))
)

// PanelStyle frames a tab's content.
var PanelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// Selected highlights s when on is set.
func Selected(s string, on bool) string {
	if on {
		return HlStyle.Render(s)
	}
	return s
}
