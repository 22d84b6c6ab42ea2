package enrich

import (
	"fmt"
	"sort"
	"strings"

	nt "tacboard/entity"
)

// Summary renders a text report of an enrichment run: the definitions
// applied and the headline numbers derived from the new columns.
func (en *Enricher) Summary(events []nt.Event, columns []Column) string {

	rule := strings.Repeat("=", 60)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("SEMANTIC LAYER ENRICHMENT REPORT\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Dataset: %d events\n", len(events))
	fmt.Fprintf(&b, "Metrics applied: %d\n", len(en.defs.Metrics))
	fmt.Fprintf(&b, "New dimensions: %d\n\n", len(columns))

	for _, def := range en.defs.Metrics {
		fmt.Fprintf(&b, "  %s (%s)\n", def.Name, def.Type)
		if def.Description != "" {
			fmt.Fprintf(&b, "    %s\n", def.Description)
		}
	}

	insights := insights(events, columns)
	if len(insights) > 0 {
		b.WriteString("\n")
		for _, line := range insights {
			fmt.Fprintf(&b, "  * %s\n", line)
		}
	}

	b.WriteString("\n" + rule + "\n")
	return b.String()
}

// insights derives headline numbers: trade conversion, clutch
// breakdown, and zone engagement.
func insights(events []nt.Event, columns []Column) (lines []string) {

	kills := 0
	for _, ev := range events {
		if ev.Type == nt.EventKill {
			kills++
		}
	}

	for _, col := range columns {
		switch {
		case col.Name == "is_trade_kill" && kills > 0:
			trades := countTrue(col.Values)
			lines = append(lines, fmt.Sprintf(
				"trade conversion: %d of %d kills (%.1f%%)",
				trades, kills, float64(trades)/float64(kills)*100))

		case col.Name == "situation_type":
			breakdown := map[string]int{}
			for _, v := range col.Values {
				s, _ := v.(string)
				if strings.HasPrefix(s, "Clutch") {
					breakdown[s]++
				}
			}
			if len(breakdown) > 0 {
				lines = append(lines, fmt.Sprintf(
					"clutch situations: %s", formatBreakdown(breakdown)))
			}

		case strings.HasPrefix(col.Name, "in_zone_"):
			lines = append(lines, fmt.Sprintf(
				"%s: %d of %d events", col.Name, countTrue(col.Values), len(events)))
		}
	}

	return
}

func countTrue(values map[int]any) (count int) {
	for _, v := range values {
		if b, ok := v.(bool); ok && b {
			count++
		}
	}
	return
}

func formatBreakdown(breakdown map[string]int) string {

	keys := make([]string, 0, len(breakdown))
	for k := range breakdown {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s x%d", k, breakdown[k]))
	}
	return strings.Join(parts, ", ")
}
