package catalog

// Default returns the built-in condition field catalog, grouped for
// display as State, Abilities, Equipment, Spatial.
func Default() Catalog {
	return New([]FieldSpec{
		{Key: "alive", Label: "Alive", Kind: Bool, Group: "State"},
		{Key: "health", Label: "Health", Kind: Number, Group: "State", Min: 0, Max: 100},
		{Key: "shields", Label: "Shields", Kind: Number, Group: "State", Min: 0, Max: 50},
		{Key: "situation", Label: "Situation", Kind: Enum, Group: "State",
			Options: []string{"Even", "Advantage", "Disadvantage", "Clutch"}},

		{Key: "ult_ready", Label: "Ultimate Ready", Kind: Bool, Group: "Abilities"},
		{Key: "ult_points", Label: "Ultimate Points", Kind: Number, Group: "Abilities", Min: 0, Max: 10},
		{Key: "smokes_available", Label: "Smokes Available", Kind: Number, Group: "Abilities", Min: 0, Max: 3},
		{Key: "flashes_available", Label: "Flashes Available", Kind: Number, Group: "Abilities", Min: 0, Max: 2},

		{Key: "weapon", Label: "Weapon", Kind: Enum, Group: "Equipment",
			Options: []string{"Classic", "Sheriff", "Spectre", "Phantom", "Vandal", "Operator"}},
		{Key: "armor", Label: "Armor", Kind: Enum, Group: "Equipment",
			Options: []string{"None", "Light", "Heavy"}},
		{Key: "loadout_value", Label: "Loadout Value", Kind: Number, Group: "Equipment", Min: 0, Max: 9000},
		{Key: "has_spike", Label: "Has Spike", Kind: Bool, Group: "Equipment"},

		{Key: "zone", Label: "Zone", Kind: Enum, Group: "Spatial",
			Options: []string{"A Site", "B Site", "Mid", "Market", "Heaven"}},
		{Key: "distance_to_spike", Label: "Distance To Spike", Kind: Number, Group: "Spatial", Min: 0, Max: 5000},
		{Key: "in_enemy_territory", Label: "In Enemy Territory", Kind: Bool, Group: "Spatial"},
	})
}

// DefaultConditionField is the field a freshly added condition starts
// on.
const DefaultConditionField = "health"
