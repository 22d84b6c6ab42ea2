// Package enrich applies metric definitions to raw match events,
// deriving the tactically-meaningful columns the analysis side
// consumes: situational advantage, zone membership, trade kills, and
// composite flags.
package enrich

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"

	nt "tacboard/entity"
)

const (
	tradeWindow   = 3.0  // seconds since teammate death
	tradeDistance = 15.0 // map units from teammate death
	roundSize     = 5    // players per side
)

// Column is one derived dimension, keyed by event id.
type Column struct {
	Name    string
	SQLType string
	Values  map[int]any
}

// Enricher applies loaded definitions to events.
type Enricher struct {
	defs   Definitions
	logger nt.Logger
}

// New creates an enricher.
func New(defs Definitions, lgr nt.Logger) *Enricher {
	return &Enricher{
		defs:   defs,
		logger: lgr,
	}
}

// Enrich derives one or more columns per definition.  Events are
// processed in ingestion order, which tracks round flow even when game
// clocks reset per round; only the temporal pass needs a strict time
// ordering.  Output column order follows definition order.
func (en *Enricher) Enrich(events []nt.Event) (columns []Column, err error) {

	for _, def := range en.defs.Metrics {
		var derived []Column

		switch def.Type {
		case "situational":
			derived = en.situational(events)
		case "spatial":
			derived = en.spatial(events, def)
		case "temporal":
			derived = en.temporal(byGameTime(events))
		case "composite":
			derived = en.composite(events, def)
		default:
			err = errors.Errorf("unknown metric type %q for %s", def.Type, def.Name)
			return
		}

		columns = append(columns, derived...)
	}

	return
}

func byGameTime(events []nt.Event) []nt.Event {
	ordered := make([]nt.Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].GameTime < ordered[j].GameTime
	})
	return ordered
}

// situational tracks alive counts per round and classifies the
// situation at each event: even, advantage, disadvantage, or a 1vX
// clutch.
func (en *Enricher) situational(events []nt.Event) []Column {

	teamAlive := map[int]any{}
	enemyAlive := map[int]any{}
	advantage := map[int]any{}
	situation := map[int]any{}

	currentRound := -1
	team, enemy := roundSize, roundSize

	for _, ev := range events {
		if ev.RoundNumber != currentRound {
			currentRound = ev.RoundNumber
			team, enemy = roundSize, roundSize
		}

		if ev.Type == nt.EventKill {
			if ev.VictimTeam == en.defs.Team {
				team--
			} else if ev.VictimTeam != "" {
				enemy--
			}
		}

		teamAlive[ev.ID] = team
		enemyAlive[ev.ID] = enemy
		advantage[ev.ID] = team - enemy
		situation[ev.ID] = classify(team, enemy)
	}

	return []Column{
		{Name: "players_alive_team", SQLType: "INTEGER", Values: teamAlive},
		{Name: "players_alive_enemy", SQLType: "INTEGER", Values: enemyAlive},
		{Name: "player_advantage", SQLType: "INTEGER", Values: advantage},
		{Name: "situation_type", SQLType: "VARCHAR", Values: situation},
	}
}

func classify(team, enemy int) string {
	if team == 1 && enemy > 1 {
		return fmt.Sprintf("Clutch 1v%d", enemy)
	}
	advantage := team - enemy
	switch {
	case advantage == 0:
		return "Even"
	case advantage > 0:
		return fmt.Sprintf("Advantage +%d", advantage)
	default:
		return fmt.Sprintf("Disadvantage %d", advantage)
	}
}

// spatial flags events inside the definition's zone bounds on its map,
// and records distance to the zone center.
func (en *Enricher) spatial(events []nt.Event, def Definition) []Column {

	inZone := map[int]any{}
	distance := map[int]any{}

	centerX := (def.Bounds.XMin + def.Bounds.XMax) / 2
	centerY := (def.Bounds.YMin + def.Bounds.YMax) / 2

	for _, ev := range events {
		inZone[ev.ID] = ev.Map == def.Map &&
			ev.PlayerX >= def.Bounds.XMin && ev.PlayerX <= def.Bounds.XMax &&
			ev.PlayerY >= def.Bounds.YMin && ev.PlayerY <= def.Bounds.YMax
		distance[ev.ID] = dist(ev.PlayerX, ev.PlayerY, centerX, centerY)
	}

	slug := columnSlug(def.Name)
	return []Column{
		{Name: "in_zone_" + slug, SQLType: "BOOLEAN", Values: inZone},
		{Name: "distance_to_" + slug, SQLType: "DOUBLE", Values: distance},
	}
}

// temporal marks trade kills: a kill within tradeWindow seconds and
// tradeDistance units of the most recent teammate death.
func (en *Enricher) temporal(events []nt.Event) []Column {

	isTrade := map[int]any{}
	sinceDeath := map[int]any{}
	fromDeath := map[int]any{}

	for i, ev := range events {
		if ev.Type != nt.EventKill {
			continue
		}
		isTrade[ev.ID] = false

		// Most recent prior death on the killer's own team
		for j := i - 1; j >= 0; j-- {
			prior := events[j]
			if prior.Type != nt.EventKill || prior.VictimTeam != ev.KillerTeam {
				continue
			}
			gap := ev.GameTime - prior.GameTime
			if gap > tradeWindow {
				break
			}

			d := dist(ev.KillerX, ev.KillerY, prior.VictimX, prior.VictimY)
			sinceDeath[ev.ID] = gap
			fromDeath[ev.ID] = d
			isTrade[ev.ID] = d <= tradeDistance
			break
		}
	}

	return []Column{
		{Name: "is_trade_kill", SQLType: "BOOLEAN", Values: isTrade},
		{Name: "time_since_teammate_death", SQLType: "DOUBLE", Values: sinceDeath},
		{Name: "distance_to_teammate_death", SQLType: "DOUBLE", Values: fromDeath},
	}
}

// composite conjoins the definition's per-column conditions into one
// boolean flag.
func (en *Enricher) composite(events []nt.Event, def Definition) []Column {

	flags := map[int]any{}
	for _, ev := range events {
		flags[ev.ID] = matches(ev, def.Conditions)
	}

	return []Column{
		{Name: "is_" + columnSlug(def.Name), SQLType: "BOOLEAN", Values: flags},
	}
}

func matches(ev nt.Event, conditions map[string]any) bool {

	for key, want := range conditions {
		got := eventField(ev, key)

		switch want := want.(type) {
		case []any:
			if !contains(want, got) {
				return false
			}
		case string:
			if gtlt, threshold, ok := comparison(want); ok {
				f, err := nt.Value{Raw: got}.Float()
				if err != nil {
					return false
				}
				if gtlt == ">" && f <= threshold {
					return false
				}
				if gtlt == "<" && f >= threshold {
					return false
				}
				continue
			}
			if fmt.Sprintf("%v", got) != want {
				return false
			}
		default:
			if fmt.Sprintf("%v", got) != fmt.Sprintf("%v", want) {
				return false
			}
		}
	}

	return true
}

// comparison parses "> 80" / "< 12.5" condition strings.
func comparison(s string) (op string, threshold float64, ok bool) {

	trimmed := strings.TrimSpace(s)
	if len(trimmed) < 2 || (trimmed[0] != '>' && trimmed[0] != '<') {
		return
	}

	var f float64
	_, err := fmt.Sscanf(strings.TrimSpace(trimmed[1:]), "%f", &f)
	if err != nil {
		return
	}

	return string(trimmed[0]), f, true
}

func eventField(ev nt.Event, key string) any {
	switch key {
	case "eventType":
		return ev.Type
	case "gameTime":
		return ev.GameTime
	case "roundNumber":
		return ev.RoundNumber
	case "map":
		return ev.Map
	case "killerTeam":
		return ev.KillerTeam
	case "victimTeam":
		return ev.VictimTeam
	case "playerName":
		return ev.PlayerName
	default:
		return nil
	}
}

func contains(list []any, got any) bool {
	for _, item := range list {
		if fmt.Sprintf("%v", item) == fmt.Sprintf("%v", got) {
			return true
		}
	}
	return false
}

func dist(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt((x2-x1)*(x2-x1) + (y2-y1)*(y2-y1))
}

// columnSlug lowercases a definition name into a column-safe slug.
func columnSlug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '_', r == '-':
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
