package enrich

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "tacboard/entity"
)

func TestEnrichUnknownType(t *testing.T) {

	en := New(Definitions{
		Team:    "Cloud9",
		Metrics: []Definition{{Name: "Mystery", Type: "astral"}},
	}, nil)

	_, err := en.Enrich(nil)
	assert.ErrorContains(t, err, "astral")
}

func TestSituational(t *testing.T) {

	defs := Definitions{
		Team:    "Cloud9",
		Metrics: []Definition{{Name: "Clutch Situations", Type: "situational"}},
	}

	// Round 1: four teammates fall, leaving a 1v3 clutch.  Round 2
	// resets to even.
	events := []nt.Event{
		{ID: 1, Type: nt.EventKill, GameTime: 5, RoundNumber: 1, KillerTeam: "Sentinels", VictimTeam: "Cloud9"},
		{ID: 2, Type: nt.EventKill, GameTime: 10, RoundNumber: 1, KillerTeam: "Cloud9", VictimTeam: "Sentinels"},
		{ID: 3, Type: nt.EventKill, GameTime: 15, RoundNumber: 1, KillerTeam: "Sentinels", VictimTeam: "Cloud9"},
		{ID: 4, Type: nt.EventKill, GameTime: 20, RoundNumber: 1, KillerTeam: "Sentinels", VictimTeam: "Cloud9"},
		{ID: 5, Type: nt.EventKill, GameTime: 25, RoundNumber: 1, KillerTeam: "Sentinels", VictimTeam: "Cloud9"},
		{ID: 6, Type: nt.EventKill, GameTime: 95, RoundNumber: 2, KillerTeam: "Cloud9", VictimTeam: "Sentinels"},
	}

	columns, err := New(defs, nil).Enrich(events)
	require.NoError(t, err)
	require.Len(t, columns, 4)

	byName := indexColumns(columns)

	assert.Equal(t, 4, byName["players_alive_team"].Values[1])
	assert.Equal(t, "Even", byName["situation_type"].Values[2])
	assert.Equal(t, "Disadvantage -1", byName["situation_type"].Values[3])
	assert.Equal(t, 1, byName["players_alive_team"].Values[5])
	assert.Equal(t, "Clutch 1v4", byName["situation_type"].Values[5])
	assert.Equal(t, -3, byName["player_advantage"].Values[5])

	// new round resets alive counts
	assert.Equal(t, 5, byName["players_alive_team"].Values[6])
	assert.Equal(t, "Advantage +1", byName["situation_type"].Values[6])
}

func TestSituationalRoundClockReset(t *testing.T) {

	defs := Definitions{
		Team:    "Cloud9",
		Metrics: []Definition{{Name: "Clutch Situations", Type: "situational"}},
	}

	// Round 2's clock restarts below round 1's times; ingestion order
	// must still drive the tracking, with one reset per round
	events := []nt.Event{
		{ID: 1, Type: nt.EventKill, GameTime: 40, RoundNumber: 1, VictimTeam: "Cloud9"},
		{ID: 2, Type: nt.EventKill, GameTime: 60, RoundNumber: 1, VictimTeam: "Cloud9"},
		{ID: 3, Type: nt.EventKill, GameTime: 5, RoundNumber: 2, VictimTeam: "Sentinels"},
		{ID: 4, Type: nt.EventKill, GameTime: 12, RoundNumber: 2, VictimTeam: "Sentinels"},
	}

	columns, err := New(defs, nil).Enrich(events)
	require.NoError(t, err)

	byName := indexColumns(columns)

	assert.Equal(t, 3, byName["players_alive_team"].Values[2])
	assert.Equal(t, "Disadvantage -2", byName["situation_type"].Values[2])

	// round 2 resets once and counts down from full strength
	assert.Equal(t, 5, byName["players_alive_team"].Values[3])
	assert.Equal(t, 4, byName["players_alive_enemy"].Values[3])
	assert.Equal(t, 3, byName["players_alive_enemy"].Values[4])
	assert.Equal(t, "Advantage +2", byName["situation_type"].Values[4])
}

func TestSpatial(t *testing.T) {

	defs := Definitions{
		Team: "Cloud9",
		Metrics: []Definition{{
			Name:   "Market Defense (Ascent)",
			Type:   "spatial",
			Map:    "Ascent",
			Bounds: Bounds{XMin: 500, XMax: 800, YMin: 1200, YMax: 1500},
		}},
	}

	events := []nt.Event{
		{ID: 1, Type: nt.EventKill, GameTime: 1, Map: "Ascent", PlayerX: 650, PlayerY: 1350},
		{ID: 2, Type: nt.EventKill, GameTime: 2, Map: "Ascent", PlayerX: 100, PlayerY: 100},
		{ID: 3, Type: nt.EventKill, GameTime: 3, Map: "Bind", PlayerX: 650, PlayerY: 1350},
	}

	columns, err := New(defs, nil).Enrich(events)
	require.NoError(t, err)
	require.Len(t, columns, 2)

	byName := indexColumns(columns)

	inZone := byName["in_zone_market_defense_ascent"]
	require.NotNil(t, inZone.Values)
	assert.Equal(t, true, inZone.Values[1])
	assert.Equal(t, false, inZone.Values[2])
	// bounds only apply on the definition's map
	assert.Equal(t, false, inZone.Values[3])

	distance := byName["distance_to_market_defense_ascent"]
	assert.Equal(t, 0.0, distance.Values[1])
}

func TestTemporal(t *testing.T) {

	defs := Definitions{
		Team:    "Cloud9",
		Metrics: []Definition{{Name: "Trade Efficiency", Type: "temporal"}},
	}

	events := []nt.Event{
		// teammate dies at the A main entrance
		{ID: 1, Type: nt.EventKill, GameTime: 10, RoundNumber: 1,
			KillerTeam: "Sentinels", VictimTeam: "Cloud9", VictimX: 100, VictimY: 100},
		// refrag 2s later, 10 units away: a trade
		{ID: 2, Type: nt.EventKill, GameTime: 12, RoundNumber: 1,
			KillerTeam: "Cloud9", VictimTeam: "Sentinels", KillerX: 110, KillerY: 100},
		// another teammate death far across the map
		{ID: 3, Type: nt.EventKill, GameTime: 30, RoundNumber: 1,
			KillerTeam: "Sentinels", VictimTeam: "Cloud9", VictimX: 900, VictimY: 900},
		// in the window but out of range: not a trade
		{ID: 4, Type: nt.EventKill, GameTime: 32, RoundNumber: 1,
			KillerTeam: "Cloud9", VictimTeam: "Sentinels", KillerX: 100, KillerY: 100},
		// outside the 3s window entirely
		{ID: 5, Type: nt.EventKill, GameTime: 50, RoundNumber: 1,
			KillerTeam: "Cloud9", VictimTeam: "Sentinels", KillerX: 900, KillerY: 900},
	}

	columns, err := New(defs, nil).Enrich(events)
	require.NoError(t, err)
	require.Len(t, columns, 3)

	byName := indexColumns(columns)
	isTrade := byName["is_trade_kill"]

	assert.Equal(t, true, isTrade.Values[2])
	assert.Equal(t, false, isTrade.Values[4])
	assert.Equal(t, false, isTrade.Values[5])

	assert.Equal(t, 2.0, byName["time_since_teammate_death"].Values[2])
	assert.Equal(t, 10.0, byName["distance_to_teammate_death"].Values[2])

	// no window match leaves the gap columns unset
	_, ok := byName["time_since_teammate_death"].Values[5]
	assert.False(t, ok)
}

func TestComposite(t *testing.T) {

	defs := Definitions{
		Team: "Cloud9",
		Metrics: []Definition{{
			Name: "Exit Frag",
			Type: "composite",
			Conditions: map[string]any{
				"eventType": []any{"kill"},
				"gameTime":  "> 80",
			},
		}},
	}

	events := []nt.Event{
		{ID: 1, Type: nt.EventKill, GameTime: 50},
		{ID: 2, Type: nt.EventKill, GameTime: 85},
		{ID: 3, Type: "plant", GameTime: 90},
	}

	columns, err := New(defs, nil).Enrich(events)
	require.NoError(t, err)
	require.Len(t, columns, 1)

	flags := columns[0]
	assert.Equal(t, "is_exit_frag", flags.Name)
	assert.Equal(t, false, flags.Values[1])
	assert.Equal(t, true, flags.Values[2])
	assert.Equal(t, false, flags.Values[3])
}

func TestCompositeExactMatch(t *testing.T) {

	defs := Definitions{
		Team: "Cloud9",
		Metrics: []Definition{{
			Name:       "OXY Kills",
			Type:       "composite",
			Conditions: map[string]any{"playerName": "OXY"},
		}},
	}

	events := []nt.Event{
		{ID: 1, Type: nt.EventKill, GameTime: 1, PlayerName: "OXY"},
		{ID: 2, Type: nt.EventKill, GameTime: 2, PlayerName: "zekken"},
	}

	columns, err := New(defs, nil).Enrich(events)
	require.NoError(t, err)

	assert.Equal(t, true, columns[0].Values[1])
	assert.Equal(t, false, columns[0].Values[2])
}

func TestColumnSlug(t *testing.T) {

	assert.Equal(t, "market_defense_ascent", columnSlug("Market Defense (Ascent)"))
	assert.Equal(t, "exit_frag", columnSlug("Exit Frag"))
	assert.Equal(t, "trade_efficiency", columnSlug("Trade-Efficiency"))
}

func TestLoadDefinitions(t *testing.T) {

	path := filepath.Join(t.TempDir(), "defs.yml")
	doc := `metrics:
  - name: Mid Control
    type: spatial
    map: Ascent
    bounds:
      x_min: 200
      x_max: 400
      y_min: 600
      y_max: 900
`
	err := os.WriteFile(path, []byte(doc), 0644)
	require.NoError(t, err)

	defs, err := LoadDefinitions(path)
	require.NoError(t, err)

	// team defaults when the file omits it
	assert.Equal(t, "Cloud9", defs.Team)
	require.Len(t, defs.Metrics, 1)
	assert.Equal(t, 400.0, defs.Metrics[0].Bounds.XMax)
}

func TestLoadDefinitionsEmpty(t *testing.T) {

	path := filepath.Join(t.TempDir(), "defs.yml")
	err := os.WriteFile(path, []byte("team: Cloud9\n"), 0644)
	require.NoError(t, err)

	_, err = LoadDefinitions(path)
	assert.ErrorContains(t, err, "no metrics")
}

func indexColumns(columns []Column) map[string]Column {
	byName := map[string]Column{}
	for _, col := range columns {
		byName[col.Name] = col
	}
	return byName
}
