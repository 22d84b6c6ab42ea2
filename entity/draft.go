package entity

// Side is the side a query applies to.
type Side string

const (
	SideAny       Side = "Any"
	SideAttacking Side = "Attacking"
	SideDefending Side = "Defending"
)

// Team is the team affiliation of a player context.
type Team string

const (
	TeamMine  Team = "My Team"
	TeamEnemy Team = "Enemy Team"
)

// TargetType says how a player context names its target.
type TargetType string

const (
	TargetAgent  TargetType = "Agent"
	TargetPlayer TargetType = "Player"
	TargetAny    TargetType = "Any"
)

// AnyOp is the unconstrained operator/value sentinel.
const AnyOp = "Any"

// ScoreGap is a score difference constraint, unconstrained when Op is AnyOp.
type ScoreGap struct {
	Op    string
	Value int
}

// GlobalContext holds filters applying to the whole query.
type GlobalContext struct {
	Map        string
	Side       Side
	Tournament string
	ScoreGap   ScoreGap
}

// Condition is a single field/operator/value constraint within a
// player context.  Field keys into the condition field catalog, which
// constrains the legal operators and the value shape.
type Condition struct {
	ID    string
	Field string
	Op    string
	Value any
}

// PlayerContext is a named target plus team affiliation and an ordered
// condition list.  TargetValue is meaningful only when TargetType is
// TargetAgent or TargetPlayer.
type PlayerContext struct {
	ID          string
	Team        Team
	TargetType  TargetType
	TargetValue string
	Conditions  []Condition
}

// Target renders the context target for display and composition.
func (pc PlayerContext) Target() string {
	if pc.TargetType == TargetAny {
		return string(TargetAny)
	}
	return pc.TargetValue
}
