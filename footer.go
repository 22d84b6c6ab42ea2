package tacboard

import (
	"strings"

	"charm.land/lipgloss/v2"

	"tacboard/style"
)

// RenderTabs renders the tab bar with the active tab highlighted.
func RenderTabs(active, width int) string {

	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if i == active {
			parts[i] = style.ActiveTab.Render(name)
		} else {
			parts[i] = style.InactiveTab.Render(name)
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderFooter renders engine status on the left and navigation hints
// on the right.
func RenderFooter(status string, width int) string {

	left := status
	right := "Ctrl+N/Ctrl+P: switch tab  Ctrl+C: quit"

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.MutedStyle.Render(left + strings.Repeat(" ", padding) + right)
}
