// Package metriclib carries the predefined metric set and the
// community metric library.
package metriclib

import (
	"tacboard/util"
)

// Metric is one predefined tactical metric.
type Metric struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

// Predefined returns the built-in metric set, in display order.
func Predefined() []Metric {
	return []Metric{
		{ID: "market_defense", Name: "Market Defense (Ascent)", Type: "spatial",
			Description: "Win rate when defending the Market zone on Ascent"},
		{ID: "trade_efficiency", Name: "Trade Efficiency", Type: "temporal",
			Description: "Refrag conversion within 3s and 15m of a teammate death"},
		{ID: "clutch_situations", Name: "Clutch Situations", Type: "situational",
			Description: "1vX scenarios and their outcomes"},
		{ID: "player_performance", Name: "Player Performance", Type: "composite",
			Description: "Per-player breakdown across enriched dimensions"},
		{ID: "exit_frags", Name: "Exit Frags", Type: "composite",
			Description: "Kills landed after the round is already decided"},
	}
}

// Entry is a shared metric definition in the community library.
type Entry struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Author      string `yaml:"author"`
	Rating      int    `yaml:"rating"`
	Description string `yaml:"description"`
	Document    string `yaml:"document"`
}

// LoadLibrary reads community entries from a yaml file.
func LoadLibrary(path string) (entries []Entry, err error) {

	var doc struct {
		Entries []Entry `yaml:"entries"`
	}
	err = util.LoadConfig(&doc, path)
	if err != nil {
		return
	}

	entries = doc.Entries
	return
}

// Library returns the built-in community entries shown before any
// library file is configured.
func Library() []Entry {
	return []Entry{
		{
			ID:          "retake_discipline",
			Name:        "Retake Discipline",
			Author:      "coach_viper",
			Rating:      5,
			Description: "Flags retakes attempted without utility or man advantage",
			Document: "metrics:\n" +
				"  - name: Retake_Discipline\n" +
				"    global_context:\n" +
				"      map: Ascent\n" +
				"      side: Defending\n" +
				"      score_gap:\n" +
				"        any: true\n" +
				"    player_contexts:\n" +
				"      - target: Any\n" +
				"        team: My Team\n" +
				"        conditions:\n" +
				"          - smokes_available = 0\n" +
				"          - situation = Disadvantage\n",
		},
		{
			ID:          "eco_overheat",
			Name:        "Eco Overheat",
			Author:      "stat_sage",
			Rating:      4,
			Description: "Aggression on save rounds against full buys",
			Document: "metrics:\n" +
				"  - name: Eco_Overheat\n" +
				"    global_context:\n" +
				"      map: Bind\n" +
				"      side: Attacking\n" +
				"      score_gap:\n" +
				"        any: true\n" +
				"    player_contexts:\n" +
				"      - target: Any\n" +
				"        team: My Team\n" +
				"        conditions:\n" +
				"          - loadout_value < 1500\n",
		},
		{
			ID:          "op_duels",
			Name:        "Operator Duels",
			Author:      "angle_holder",
			Rating:      4,
			Description: "Long-range duels taken while holding with an Operator",
			Document: "metrics:\n" +
				"  - name: Operator_Duels\n" +
				"    global_context:\n" +
				"      map: Breeze\n" +
				"      side: Defending\n" +
				"      score_gap:\n" +
				"        any: true\n" +
				"    player_contexts:\n" +
				"      - target: Chamber\n" +
				"        team: My Team\n" +
				"        conditions:\n" +
				"          - weapon = Operator\n" +
				"          - alive is true\n",
		},
	}
}
