package entity

// Event is a single match event as ingested from a JSONL export.
// Position fields are map units; zero when the source line lacks them.
type Event struct {
	ID          int     `json:"-"`
	Type        string  `json:"eventType"`
	GameTime    float64 `json:"gameTime"`
	RoundNumber int     `json:"roundNumber"`
	Map         string  `json:"map"`
	KillerTeam  string  `json:"killerTeam"`
	VictimTeam  string  `json:"victimTeam"`
	PlayerName  string  `json:"playerName"`
	PlayerX     float64 `json:"playerX"`
	PlayerY     float64 `json:"playerY"`
	KillerX     float64 `json:"killerX"`
	KillerY     float64 `json:"killerY"`
	VictimX     float64 `json:"victimX"`
	VictimY     float64 `json:"victimY"`
}

// Kill events drive alive tracking and trade detection.
const EventKill = "kill"
