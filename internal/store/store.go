// Package store archives finished matches and their event streams in a
// local SQLite database for post-match stats.
package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/mrDIMAS/rusty-shooter/internal/game"
)

const schema = `
CREATE TABLE IF NOT EXISTS matches (
	id         TEXT PRIMARY KEY,
	level      TEXT NOT NULL,
	mode       TEXT NOT NULL,
	winner     TEXT,
	duration   REAL NOT NULL,
	scoreboard TEXT NOT NULL,
	ended_at   TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS match_events (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	match_id TEXT NOT NULL,
	tick     INTEGER NOT NULL,
	kind     TEXT NOT NULL,
	payload  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_match_events_match ON match_events(match_id, tick);
`

// Store wraps the SQLite connection.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "store: open database")
	}
	// modernc/sqlite is single-writer; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "store: apply schema")
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// ScoreboardRow is one actor's final line.
type ScoreboardRow struct {
	ActorID string `json:"actorId"`
	Name    string `json:"name"`
	Frags   int    `json:"frags"`
	Deaths  int    `json:"deaths"`
}

// RecordMatch archives a finished match.
func (s *Store) RecordMatch(id string, snap *game.Snapshot, rows []ScoreboardRow) error {
	board, err := json.Marshal(rows)
	if err != nil {
		return errors.Wrap(err, "store: encode scoreboard")
	}
	_, err = s.db.Exec(
		`INSERT INTO matches (id, level, mode, winner, duration, scoreboard, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, snap.Level, string(snap.Match.Config.Mode), snap.Match.Winner,
		snap.Time, string(board), time.Now().UTC(),
	)
	return errors.Wrap(err, "store: insert match")
}

// AppendEvents archives a batch of gameplay events for a match.
func (s *Store) AppendEvents(matchID string, events []game.Event) error {
	if len(events) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "store: begin tx")
	}
	stmt, err := tx.Prepare(`INSERT INTO match_events (match_id, tick, kind, payload) VALUES (?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return errors.Wrap(err, "store: prepare insert")
	}
	defer stmt.Close()
	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			continue
		}
		if _, err := stmt.Exec(matchID, ev.Tick, string(ev.Kind), string(payload)); err != nil {
			tx.Rollback()
			return errors.Wrap(err, "store: insert event")
		}
	}
	return errors.Wrap(tx.Commit(), "store: commit events")
}

// EventSink adapts the store to the runner's event fan-out.
type EventSink struct {
	store   *Store
	matchID string
}

// NewEventSink builds a sink that archives every tick's events.
func NewEventSink(store *Store, matchID string) *EventSink {
	return &EventSink{store: store, matchID: matchID}
}

// HandleEvents archives the batch; failures are dropped because archival
// must never stall the tick loop.
func (s *EventSink) HandleEvents(events []game.Event) {
	_ = s.store.AppendEvents(s.matchID, events)
}
