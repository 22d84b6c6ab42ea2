// Package librarypanel is the community library tab: shared metric
// definitions that can be imported into the builder.
package librarypanel

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"tacboard/message"
	"tacboard/metriclib"
	"tacboard/style"
)

// Panel is the library tab state.
type Panel struct {
	entries []metriclib.Entry
	cursor  int

	width  int
	height int
}

// New creates the panel over library entries.
func New(entries []metriclib.Entry) Panel {
	return Panel{entries: entries}
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height

	case tea.KeyPressMsg:
		switch msg.String() {

		case "up", "k":
			if pnl.cursor > 0 {
				pnl.cursor--
			}

		case "down", "j":
			if pnl.cursor < len(pnl.entries)-1 {
				pnl.cursor++
			}

		case "enter", "i":
			if len(pnl.entries) == 0 {
				return pnl, nil
			}
			doc := pnl.entries[pnl.cursor].Document
			return pnl, func() tea.Msg {
				return message.ImportMsg{Document: doc}
			}
		}
	}

	return pnl, nil
}

// Render draws the entry list beside the selected entry's document.
func (pnl Panel) Render() string {

	var list strings.Builder
	list.WriteString(style.TitleStyle.Render("Community Library"))
	list.WriteString("\n\n")

	for i, entry := range pnl.entries {
		line := fmt.Sprintf("%-24s %s %s",
			entry.Name, stars(entry.Rating), style.MutedStyle.Render("by "+entry.Author))
		prefix := "  "
		if i == pnl.cursor {
			prefix = "> "
			line = style.RowStyle.Render(line)
		}
		list.WriteString(prefix + line + "\n")
	}

	list.WriteString("\n" + style.MutedStyle.Render("Enter: import into builder"))

	if len(pnl.entries) == 0 {
		return list.String()
	}

	selected := pnl.entries[pnl.cursor]
	detail := style.TitleStyle.Render(selected.Name) + "\n" +
		style.MutedStyle.Render(selected.Description) + "\n\n" +
		style.DocumentStyle.Render(selected.Document)

	return list.String() + "\n" + style.PanelStyle.Render(detail)
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("*", rating) + strings.Repeat(".", 5-rating)
}
