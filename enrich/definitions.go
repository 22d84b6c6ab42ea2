package enrich

import (
	"github.com/pkg/errors"

	"tacboard/util"
)

// Bounds is an axis-aligned zone rectangle in map units.
type Bounds struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

// Definition is one metric definition from a definitions file.
type Definition struct {
	Name        string         `yaml:"name"`
	Type        string         `yaml:"type"`
	Description string         `yaml:"description,omitempty"`
	Map         string         `yaml:"map,omitempty"`
	Bounds      Bounds         `yaml:"bounds,omitempty"`
	Conditions  map[string]any `yaml:"conditions,omitempty"`
}

// Definitions is a full definitions file.  Team names the side treated
// as ours when tracking alive counts.
type Definitions struct {
	Team    string       `yaml:"team"`
	Metrics []Definition `yaml:"metrics"`
}

// LoadDefinitions reads a definitions yaml file.
func LoadDefinitions(path string) (defs Definitions, err error) {

	err = util.LoadConfig(&defs, path)
	if err != nil {
		return
	}

	if len(defs.Metrics) == 0 {
		err = errors.Errorf("no metrics in definitions file %s", path)
		return
	}
	if defs.Team == "" {
		defs.Team = DefaultDefinitions().Team
	}

	return
}

// DefaultDefinitions mirrors the sample definitions the demo data is
// built around.
func DefaultDefinitions() Definitions {
	return Definitions{
		Team: "Cloud9",
		Metrics: []Definition{
			{
				Name:        "Clutch Situations",
				Type:        "situational",
				Description: "Player advantage and 1vX scenarios at each event",
			},
			{
				Name:        "Market Defense (Ascent)",
				Type:        "spatial",
				Description: "Events inside the Market zone while defending",
				Map:         "Ascent",
				Bounds:      Bounds{XMin: 500, XMax: 800, YMin: 1200, YMax: 1500},
			},
			{
				Name:        "Trade Efficiency",
				Type:        "temporal",
				Description: "Refrags within 3 seconds and 15 units of a teammate death",
			},
			{
				Name:        "Exit Frag",
				Type:        "composite",
				Description: "Kills after the round is already decided",
				Conditions: map[string]any{
					"eventType": []any{"kill"},
					"gameTime":  "> 80",
				},
			},
		},
	}
}
