// Package message has the messages panels exchange through the root
// model.
package message

// ErrorMsg contains an error.
type ErrorMsg struct {
	Err error
}

// SuggestedMsg signals that a suggestion request's delay has elapsed.
// Gen identifies the request so stale completions can be dropped.
type SuggestedMsg struct {
	Gen int
}

// AnalyzedMsg signals that an analysis run's delay has elapsed for the
// given selection.
type AnalyzedMsg struct {
	Gen int
	IDs []string
}

// ImportMsg carries a community library document into the builder.
type ImportMsg struct {
	Document string
}
