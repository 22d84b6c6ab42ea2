// Package suggest stands in for a natural-language-to-query
// translator.  The prompt is accepted but not consulted: after a fixed
// delay the engine produces one canned structured query.
package suggest

import (
	"time"

	"github.com/google/uuid"

	nt "tacboard/entity"
)

// DefaultDelay approximates a request to a real translation service.
const DefaultDelay = 1500 * time.Millisecond

// Engine tracks pending translation requests.  Requests carry a
// generation number and only the latest generation is accepted on
// completion, so a slow earlier request cannot clobber a newer one.
type Engine struct {
	Delay time.Duration

	gen     int
	pending bool
}

// New creates an engine, applying DefaultDelay when delay is zero.
func New(delay time.Duration) *Engine {
	if delay == 0 {
		delay = DefaultDelay
	}
	return &Engine{Delay: delay}
}

// Begin starts a translation request for a prompt.  An empty prompt is
// refused and leaves the engine idle.
func (eng *Engine) Begin(prompt string) (gen int, ok bool) {

	if prompt == "" {
		return 0, false
	}

	eng.gen++
	eng.pending = true
	return eng.gen, true
}

// Pending reports whether a request is in flight.
func (eng *Engine) Pending() bool {
	return eng.pending
}

// Resolve completes the request for a generation.  Stale generations
// are dropped: ok is false and the engine state is untouched.
func (eng *Engine) Resolve(gen int) (sg nt.Suggestion, ok bool) {

	if gen != eng.gen {
		return
	}

	eng.pending = false
	return Canned(), true
}

// Canned is the fixed example translation: clutch positioning for a
// Jett on defense.
func Canned() nt.Suggestion {
	return nt.Suggestion{
		Name: "Jett_Clutch_Positioning",
		Map:  "Ascent",
		Side: nt.SideDefending,
		Context: nt.PlayerContext{
			ID:          uuid.NewString(),
			Team:        nt.TeamMine,
			TargetType:  nt.TargetAgent,
			TargetValue: "Jett",
			Conditions: []nt.Condition{
				{ID: uuid.NewString(), Field: "alive", Op: "is", Value: true},
				{ID: uuid.NewString(), Field: "situation", Op: "=", Value: "Clutch"},
			},
		},
	}
}
