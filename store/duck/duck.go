// Package duck is a DuckDB-backed match event store.  Events arrive as
// JSONL exports; lines are parsed in Go so the typed columns and the
// raw JSON land in one pass, and enrichment results are written back
// as derived columns.
package duck

import (
	"bufio"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"

	nt "tacboard/entity"
)

type Duck struct {
	db       *sql.DB
	logger   nt.Logger
	filename string
}

// New opens an in-memory DuckDB.
func New(lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY,
			event_type VARCHAR,
			game_time DOUBLE,
			round_number INTEGER,
			map VARCHAR,
			killer_team VARCHAR,
			victim_team VARCHAR,
			player_name VARCHAR,
			player_x DOUBLE,
			player_y DOUBLE,
			killer_x DOUBLE,
			killer_y DOUBLE,
			victim_x DOUBLE,
			victim_y DOUBLE,
			raw VARCHAR
		)
	`)
	err = errors.Wrapf(err, "failed to create events table")
	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Name returns the name of the loaded file.
func (dk *Duck) Name() string {
	return dk.filename
}

// Load reads a JSONL match export into the events table.  Malformed
// lines are skipped.
func (dk *Duck) Load(path string) (err error) {

	file, err := os.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open %s", path)
		return
	}
	defer file.Close()

	dk.filename = path

	scanner := bufio.NewScanner(file)
	id := 0
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var ev nt.Event
		if json.Unmarshal([]byte(line), &ev) != nil {
			continue
		}

		id++
		_, err = dk.db.Exec(`
			INSERT INTO events (id, event_type, game_time, round_number, map,
				killer_team, victim_team, player_name,
				player_x, player_y, killer_x, killer_y, victim_x, victim_y, raw)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, ev.Type, ev.GameTime, ev.RoundNumber, ev.Map,
			ev.KillerTeam, ev.VictimTeam, ev.PlayerName,
			ev.PlayerX, ev.PlayerY, ev.KillerX, ev.KillerY, ev.VictimX, ev.VictimY, line)
		if err != nil {
			err = errors.Wrapf(err, "failed to insert event %d", id)
			return
		}
	}

	err = errors.Wrapf(scanner.Err(), "failed to scan %s", path)
	return
}

// Events returns all events in ingestion order.
func (dk *Duck) Events() (events []nt.Event, err error) {

	rows, err := dk.db.Query(`
		SELECT id, event_type, game_time, round_number, map,
			killer_team, victim_team, player_name,
			player_x, player_y, killer_x, killer_y, victim_x, victim_y
		FROM events ORDER BY id
	`)
	if err != nil {
		err = errors.Wrapf(err, "failed to query events")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var ev nt.Event
		err = rows.Scan(&ev.ID, &ev.Type, &ev.GameTime, &ev.RoundNumber, &ev.Map,
			&ev.KillerTeam, &ev.VictimTeam, &ev.PlayerName,
			&ev.PlayerX, &ev.PlayerY, &ev.KillerX, &ev.KillerY, &ev.VictimX, &ev.VictimY)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan event")
			return
		}
		events = append(events, ev)
	}

	err = errors.Wrapf(rows.Err(), "error iterating events")
	return
}

// AddDerived writes one enrichment column back to the store, keyed by
// event id.  The column is created when absent.
func (dk *Duck) AddDerived(name, sqlType string, values map[int]any) (err error) {

	_, err = dk.db.Exec(fmt.Sprintf(
		"ALTER TABLE events ADD COLUMN IF NOT EXISTS %s %s", name, sqlType))
	if err != nil {
		err = errors.Wrapf(err, "failed to add column %s", name)
		return
	}

	// Stable write order keeps reruns deterministic
	ids := make([]int, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	update := fmt.Sprintf("UPDATE events SET %s = ? WHERE id = ?", name)
	for _, id := range ids {
		_, err = dk.db.Exec(update, values[id], id)
		if err != nil {
			err = errors.Wrapf(err, "failed to backfill %s for event %d", name, id)
			return
		}
	}

	return
}

// Rounds returns the number of distinct rounds loaded.
func (dk *Duck) Rounds() (count int, err error) {
	err = dk.db.QueryRow("SELECT COUNT(DISTINCT round_number) FROM events").Scan(&count)
	err = errors.Wrapf(err, "failed to count rounds")
	return
}

// CountEvents returns the number of loaded events.
func (dk *Duck) CountEvents() (count int, err error) {
	err = dk.db.QueryRow("SELECT COUNT(*) FROM events").Scan(&count)
	err = errors.Wrapf(err, "failed to count events")
	return
}

// CountTrue counts events where a derived boolean column holds.
func (dk *Duck) CountTrue(column string) (count int, err error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM events WHERE %s = true", column)
	err = dk.db.QueryRow(query).Scan(&count)
	err = errors.Wrapf(err, "failed to count %s", column)
	return
}

// ExportCSV writes the events table, derived columns included, to a
// CSV file.  The path lands inside a quoted SQL literal, so embedded
// quotes are doubled.
func (dk *Duck) ExportCSV(path string) (err error) {
	query := fmt.Sprintf(
		"COPY (SELECT * EXCLUDE raw FROM events ORDER BY id) TO '%s' (HEADER, DELIMITER ',')",
		strings.ReplaceAll(path, "'", "''"))
	_, err = dk.db.Exec(query)
	err = errors.Wrapf(err, "failed to export csv to %s", path)
	return
}
