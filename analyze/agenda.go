package analyze

import (
	"fmt"
	"sort"
	"strings"

	nt "tacboard/entity"
)

var priorityOrder = map[nt.Priority]int{
	nt.PriorityHigh:   0,
	nt.PriorityMedium: 1,
	nt.PriorityLow:    2,
}

// Agenda formats findings into a game review agenda, ordered by
// priority with selection order breaking ties.
func Agenda(match string, findings []nt.Finding) string {

	ordered := make([]nt.Finding, len(findings))
	copy(ordered, findings)
	sort.SliceStable(ordered, func(i, j int) bool {
		return priorityOrder[ordered[i].Priority] < priorityOrder[ordered[j].Priority]
	})

	rule := strings.Repeat("=", 70)

	var b strings.Builder
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "GAME REVIEW AGENDA - %s\n", match)
	b.WriteString(rule + "\n\n")

	for i, finding := range ordered {
		fmt.Fprintf(&b, "%d. %s\n", i+1, finding.Name)
		fmt.Fprintf(&b, "   Priority: %s\n", finding.Priority)
		fmt.Fprintf(&b, "   Finding: %s\n", finding.Finding)
		fmt.Fprintf(&b, "   Details: %s\n\n", finding.Insight)
	}

	b.WriteString(rule + "\n")
	return b.String()
}
