// Package compose renders a query draft into its textual metric
// definition.  Rendering is one-way: the structured draft is the
// source and the document is derived, never parsed back.
package compose

import (
	"fmt"
	"strings"

	nt "tacboard/entity"
)

// DefaultName is used when the draft has no name yet.
const DefaultName = "Custom_Metric"

// Render produces the metric definition document for a draft.  It is a
// pure function: identical input yields byte-identical output, with
// contexts in insertion order and conditions in list order.
func Render(name string, global nt.GlobalContext, contexts []nt.PlayerContext) string {

	if name == "" {
		name = DefaultName
	}

	var b strings.Builder
	b.WriteString("metrics:\n")
	fmt.Fprintf(&b, "  - name: %s\n", name)

	b.WriteString("    global_context:\n")
	fmt.Fprintf(&b, "      map: %s\n", global.Map)
	fmt.Fprintf(&b, "      side: %s\n", global.Side)
	b.WriteString("      score_gap:\n")
	if global.ScoreGap.Op == nt.AnyOp {
		b.WriteString("        any: true\n")
	} else {
		fmt.Fprintf(&b, "        operator: '%s'\n", global.ScoreGap.Op)
		fmt.Fprintf(&b, "        value: %d\n", global.ScoreGap.Value)
	}

	if len(contexts) == 0 {
		b.WriteString("    player_contexts: []\n")
		return b.String()
	}

	b.WriteString("    player_contexts:\n")
	for _, pc := range contexts {
		fmt.Fprintf(&b, "      - target: %s\n", pc.Target())
		fmt.Fprintf(&b, "        team: %s\n", pc.Team)
		b.WriteString("        conditions:\n")

		active := activeConditions(pc.Conditions)
		if len(active) == 0 {
			b.WriteString("          - any: true\n")
			continue
		}
		for _, cond := range active {
			fmt.Fprintf(&b, "          - %s %s %s\n", cond.Field, cond.Op, formatValue(cond.Value))
		}
	}

	return b.String()
}

// activeConditions drops unconstrained conditions, where either the
// operator or the value is the "Any" sentinel.
func activeConditions(conditions []nt.Condition) (active []nt.Condition) {
	for _, cond := range conditions {
		if cond.Op == nt.AnyOp {
			continue
		}
		if s, ok := cond.Value.(string); ok && s == nt.AnyOp {
			continue
		}
		active = append(active, cond)
	}
	return
}

func formatValue(value any) string {
	return fmt.Sprintf("%v", value)
}
