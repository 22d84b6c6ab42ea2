package builderpanel

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	nt "tacboard/entity"
	"tacboard/style"
)

// Render draws the form beside the composed document.
func (pnl Panel) Render() string {

	form := pnl.renderForm()
	doc := pnl.renderDocument()

	formWidth := pnl.width/2 - 2
	if formWidth < 40 {
		formWidth = 40
	}

	left := style.PanelStyle.Width(formWidth).Render(form)
	right := style.PanelStyle.Width(formWidth).Render(doc)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	help := style.MutedStyle.Render(pnl.helpText())

	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}

func (pnl Panel) renderForm() string {

	var b strings.Builder

	if pnl.Mode == FreeText {
		b.WriteString(style.MutedStyle.Render("Visual Builder (document is source of truth)"))
		b.WriteString("\n\n")
	} else {
		b.WriteString(style.TitleStyle.Render("Visual Builder"))
		b.WriteString("\n\n")
	}

	for i, r := range pnl.rows {
		b.WriteString(pnl.renderRow(i, r))
		b.WriteString("\n")
	}

	if pnl.engine.Pending() {
		b.WriteString("\n" + style.PendingStyle.Render("Translating prompt..."))
	}

	return b.String()
}

func (pnl Panel) renderRow(idx int, r row) string {

	selected := pnl.Mode == Structured && idx == pnl.cursor
	prefix := "  "
	if selected {
		prefix = "> "
	}

	cell := func(col int, s string) string {
		return style.Selected(s, selected && pnl.col == col)
	}

	switch r.kind {

	case rowName:
		return prefix + "Name: " + cell(0, pnl.name.render(selected))

	case rowGlobal:
		g := pnl.Draft.Global
		gap := fmt.Sprintf("%d", g.ScoreGap.Value)
		return prefix + fmt.Sprintf("Map %s  Side %s  Score gap %s %s",
			cell(0, g.Map), cell(1, string(g.Side)), cell(2, g.ScoreGap.Op), cell(3, gap))

	case rowContext:
		pc, ok := pnl.lookupContext(r.ctxID)
		if !ok {
			return prefix
		}
		target := pc.TargetValue
		if pc.TargetType == nt.TargetAny {
			target = "-"
		}
		return prefix + fmt.Sprintf("%s %s %s  %s %s",
			cell(0, string(pc.Team)), cell(1, string(pc.TargetType)), cell(2, target),
			cell(3, "[+cond]"), cell(4, "[del]"))

	case rowCondition:
		cond, ok := pnl.findCondition(r.ctxID, r.condID)
		if !ok {
			return prefix
		}
		label := cond.Field
		if fs, ok := pnl.Draft.Catalog().Lookup(cond.Field); ok {
			label = fs.Label
		}
		return prefix + fmt.Sprintf("    %s %s %s  %s",
			cell(0, label), cell(1, cond.Op), cell(2, fmt.Sprintf("%v", cond.Value)),
			cell(3, "[del]"))

	case rowAddContext:
		return prefix + cell(0, "[+ player context]")

	case rowPrompt:
		return prefix + "Prompt: " + cell(0, pnl.prompt.render(selected && pnl.col == 0)) +
			"  " + cell(1, "[suggest]")
	}

	return prefix
}

func (pnl Panel) renderDocument() string {

	title := "Document"
	if pnl.Mode == FreeText {
		title = "Document (editing)"
	}

	return style.TitleStyle.Render(title) + "\n\n" +
		style.DocumentStyle.Render(pnl.Document)
}

func (pnl Panel) helpText() string {

	if pnl.Mode == FreeText {
		return "type to edit document  Ctrl+T: back to structured editing"
	}

	switch pnl.rows[pnl.cursor].kind {
	case rowName:
		return "type to rename  ↑↓: rows  Ctrl+T: edit document"
	case rowGlobal, rowCondition:
		return "←→: change  Tab: next field  ↑↓: rows  Ctrl+T: edit document"
	case rowContext:
		return "←→: change  Tab: next field  Enter: add condition  d: delete  Ctrl+T: edit document"
	case rowPrompt:
		return "type a prompt  Tab then Enter: suggest  Ctrl+T: edit document"
	default:
		return "Enter: add  ↑↓: rows  Ctrl+T: edit document"
	}
}

func (pnl Panel) lookupContext(id string) (pc nt.PlayerContext, ok bool) {
	for _, c := range pnl.Draft.Contexts {
		if c.ID == id {
			return c, true
		}
	}
	return
}
