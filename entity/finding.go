package entity

// Priority ranks a finding for the review agenda.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Finding is one analysis result for a selected metric.
type Finding struct {
	MetricID string
	Name     string
	Finding  string
	Stat     string
	Insight  string
	Priority Priority
	Match    string
}

// Suggestion is a structured query produced from a free-text prompt.
type Suggestion struct {
	Name    string
	Map     string
	Side    Side
	Context PlayerContext
}
