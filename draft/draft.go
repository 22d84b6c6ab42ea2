// Package draft holds the query draft under construction and its
// mutation operations.  A Draft is a value: operations return the
// updated draft rather than mutating shared state, which keeps the
// composer pure and the operations testable in isolation.
package draft

import (
	"github.com/google/uuid"

	"tacboard/catalog"
	nt "tacboard/entity"
)

// Maps is the supported map pool, in selector order.
var Maps = []string{"Ascent", "Bind", "Haven", "Split", "Icebox", "Breeze", "Lotus", "Sunset"}

// DefaultAgent is the target a fresh player context starts on.
const DefaultAgent = "Jett"

// Draft is an in-progress metric definition.
type Draft struct {
	Name     string
	Global   nt.GlobalContext
	Contexts []nt.PlayerContext

	cat catalog.Catalog
}

// New creates a draft with default global filters.
func New(cat catalog.Catalog) Draft {
	return Draft{
		Global: nt.GlobalContext{
			Map:      Maps[0],
			Side:     nt.SideAny,
			ScoreGap: nt.ScoreGap{Op: nt.AnyOp},
		},
		cat: cat,
	}
}

// Catalog returns the field catalog the draft validates against.
func (d Draft) Catalog() catalog.Catalog {
	return d.cat
}

// SetName sets the draft name.
func (d Draft) SetName(name string) Draft {
	d.Name = name
	return d
}

// SetGlobal replaces the global context.
func (d Draft) SetGlobal(global nt.GlobalContext) Draft {
	d.Global = global
	return d
}

// AddContext appends a player context with default values and a fresh
// id.
func (d Draft) AddContext() Draft {
	d.Contexts = append(clip(d.Contexts), nt.PlayerContext{
		ID:          uuid.NewString(),
		Team:        nt.TeamMine,
		TargetType:  nt.TargetAgent,
		TargetValue: DefaultAgent,
	})
	return d
}

// RemoveContext removes the player context with matching id, a no-op
// when absent.
func (d Draft) RemoveContext(id string) Draft {
	for i, pc := range d.Contexts {
		if pc.ID == id {
			d.Contexts = append(clip(d.Contexts[:i]), d.Contexts[i+1:]...)
			return d
		}
	}
	return d
}

// UpdateContext replaces one player context field via mutate, a no-op
// when the id is absent.
func (d Draft) UpdateContext(id string, mutate func(nt.PlayerContext) nt.PlayerContext) Draft {
	for i, pc := range d.Contexts {
		if pc.ID == id {
			contexts := clones(d.Contexts)
			contexts[i] = mutate(pc)
			d.Contexts = contexts
			return d
		}
	}
	return d
}

// AddCondition appends a default condition to the named context, a
// no-op when the context is absent.
func (d Draft) AddCondition(ctxID string) Draft {
	fs, _ := d.cat.Lookup(catalog.DefaultConditionField)
	return d.UpdateContext(ctxID, func(pc nt.PlayerContext) nt.PlayerContext {
		pc.Conditions = append(clip(pc.Conditions), nt.Condition{
			ID:    uuid.NewString(),
			Field: fs.Key,
			Op:    "=",
			Value: 0,
		})
		return pc
	})
}

// RemoveCondition removes a condition by id, a no-op when either id is
// absent.
func (d Draft) RemoveCondition(ctxID, condID string) Draft {
	return d.UpdateContext(ctxID, func(pc nt.PlayerContext) nt.PlayerContext {
		for i, cond := range pc.Conditions {
			if cond.ID == condID {
				pc.Conditions = append(clip(pc.Conditions[:i]), pc.Conditions[i+1:]...)
				return pc
			}
		}
		return pc
	})
}

// SetConditionField moves a condition to a new catalog field,
// resetting operator and value to the kind defaults.  Unknown fields
// are a no-op.
func (d Draft) SetConditionField(ctxID, condID, field string) Draft {
	fs, ok := d.cat.Lookup(field)
	if !ok {
		return d
	}
	return d.updateCondition(ctxID, condID, func(cond nt.Condition) nt.Condition {
		cond.Field = fs.Key
		cond.Op = catalog.DefaultOp(fs.Kind)
		cond.Value = catalog.DefaultValue(fs)
		return cond
	})
}

// SetConditionOp sets a condition operator, a no-op when the operator
// is not legal for the field's kind.
func (d Draft) SetConditionOp(ctxID, condID, op string) Draft {
	return d.updateCondition(ctxID, condID, func(cond nt.Condition) nt.Condition {
		fs, ok := d.cat.Lookup(cond.Field)
		if !ok {
			return cond
		}
		for _, legal := range catalog.Operators(fs.Kind) {
			if op == legal {
				cond.Op = op
				break
			}
		}
		return cond
	})
}

// SetConditionValue sets a condition value, a no-op when the value
// does not fit the field's kind.
func (d Draft) SetConditionValue(ctxID, condID string, value any) Draft {
	return d.updateCondition(ctxID, condID, func(cond nt.Condition) nt.Condition {
		fs, ok := d.cat.Lookup(cond.Field)
		if !ok || !catalog.ValidValue(fs, value) {
			return cond
		}
		cond.Value = value
		return cond
	})
}

func (d Draft) updateCondition(ctxID, condID string, mutate func(nt.Condition) nt.Condition) Draft {
	return d.UpdateContext(ctxID, func(pc nt.PlayerContext) nt.PlayerContext {
		for i, cond := range pc.Conditions {
			if cond.ID == condID {
				conditions := make([]nt.Condition, len(pc.Conditions))
				copy(conditions, pc.Conditions)
				conditions[i] = mutate(cond)
				pc.Conditions = conditions
				return pc
			}
		}
		return pc
	})
}

// unexported

// clip forces append to reallocate, keeping older draft values intact.
func clip[T any](s []T) []T {
	return s[:len(s):len(s)]
}

func clones(contexts []nt.PlayerContext) []nt.PlayerContext {
	out := make([]nt.PlayerContext, len(contexts))
	copy(out, contexts)
	return out
}
