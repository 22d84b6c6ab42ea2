// Package metricspanel is the predefined metrics tab: a checklist of
// tactical metrics and the findings from the last analysis run.
package metricspanel

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"tacboard/analyze"
	nt "tacboard/entity"
	"tacboard/message"
	"tacboard/metriclib"
	"tacboard/style"
)

// Panel is the metrics tab state.
type Panel struct {
	metrics  []metriclib.Metric
	selected map[string]bool
	cursor   int

	engine   *analyze.Engine
	findings []nt.Finding

	width  int
	height int
}

// New creates the panel over the predefined metric set.
func New(metrics []metriclib.Metric, engine *analyze.Engine) Panel {
	return Panel{
		metrics:  metrics,
		selected: map[string]bool{},
		engine:   engine,
	}
}

// Analyzing reports whether a run is in flight.
func (pnl Panel) Analyzing() bool {
	return pnl.engine.Analyzing()
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height

	case message.AnalyzedMsg:
		findings, ok := pnl.engine.Resolve(msg.Gen, msg.IDs)
		if !ok {
			return pnl, nil // stale run, drop it
		}
		pnl.findings = findings

	case tea.KeyPressMsg:
		return pnl.handleKey(msg)
	}

	return pnl, nil
}

func (pnl Panel) handleKey(msg tea.KeyPressMsg) (Panel, tea.Cmd) {

	switch msg.String() {

	case "up", "k":
		if pnl.cursor > 0 {
			pnl.cursor--
		}

	case "down", "j":
		if pnl.cursor < len(pnl.metrics)-1 {
			pnl.cursor++
		}

	case "t", "enter":
		id := pnl.metrics[pnl.cursor].ID
		pnl.selected[id] = !pnl.selected[id]

	case "a":
		// Disallowed while a run is in flight or nothing is selected
		if pnl.engine.Analyzing() {
			return pnl, nil
		}
		ids := pnl.selectedIDs()
		gen, ok := pnl.engine.Begin(ids)
		if !ok {
			return pnl, nil
		}
		return pnl, message.After(pnl.engine.Delay, message.AnalyzedMsg{Gen: gen, IDs: ids})
	}

	return pnl, nil
}

// selectedIDs returns selected metric ids in display order.
func (pnl Panel) selectedIDs() (ids []string) {
	for _, m := range pnl.metrics {
		if pnl.selected[m.ID] {
			ids = append(ids, m.ID)
		}
	}
	return
}

// Render draws the checklist beside the latest findings.
func (pnl Panel) Render() string {

	var b strings.Builder
	b.WriteString(style.TitleStyle.Render("Predefined Metrics"))
	b.WriteString("\n\n")

	for i, m := range pnl.metrics {
		mark := " "
		if pnl.selected[m.ID] {
			mark = "x"
		}

		line := fmt.Sprintf("[%s] %-28s %s", mark, m.Name, style.MutedStyle.Render(m.Description))
		prefix := "  "
		if i == pnl.cursor {
			prefix = "> "
			line = style.RowStyle.Render(line)
		}
		b.WriteString(prefix + line + "\n")
	}

	b.WriteString("\n")
	switch {
	case pnl.engine.Analyzing():
		b.WriteString(style.PendingStyle.Render("Analyzing..."))
	case len(pnl.findings) > 0:
		b.WriteString(pnl.renderFindings())
	default:
		b.WriteString(style.MutedStyle.Render("t: toggle  a: run analysis"))
	}

	return b.String()
}

func (pnl Panel) renderFindings() string {

	var b strings.Builder
	b.WriteString(style.TitleStyle.Render("Findings - " + pnl.findings[0].Match))
	b.WriteString("\n\n")

	for _, f := range pnl.findings {
		fmt.Fprintf(&b, "%s %s\n", priorityBadge(f.Priority), style.TitleStyle.Render(f.Name))
		fmt.Fprintf(&b, "   %s (%s)\n", f.Finding, f.Stat)
		fmt.Fprintf(&b, "   %s\n\n", style.MutedStyle.Render(f.Insight))
	}

	return b.String()
}

func priorityBadge(p nt.Priority) string {
	switch p {
	case nt.PriorityHigh:
		return style.ErrorStyle.Render("[HIGH]")
	case nt.PriorityMedium:
		return style.PendingStyle.Render("[MED ]")
	default:
		return style.MutedStyle.Render("[LOW ]")
	}
}
