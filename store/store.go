// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: store/store.go
// Summary: SQLite save-game store.
//
// A save holds a single slot: the game clock, the player, their skills and
// the globe camera. Saving replaces the slot inside one transaction.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "modernc.org/sqlite"
)

// Current schema version. Bump when the tables change incompatibly.
const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS save (
    id           INTEGER PRIMARY KEY CHECK (id = 1),
    saved_at     INTEGER NOT NULL,  -- UnixNano
    time_seconds INTEGER NOT NULL,
    player_name  TEXT NOT NULL,
    money        INTEGER NOT NULL,
    health       REAL NOT NULL,
    fatigue      REAL NOT NULL,
    lat          REAL NOT NULL,
    lon          REAL NOT NULL,
    cam_x        REAL NOT NULL,
    cam_y        REAL NOT NULL,
    cam_z        REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS skills (
    name   TEXT PRIMARY KEY,
    talent REAL NOT NULL,
    xp     REAL NOT NULL
);
`

// SkillRecord is the persisted part of a skill.
type SkillRecord struct {
	Talent float32
	XP     float32
}

// Snapshot is everything a save slot records.
type Snapshot struct {
	SavedAt       time.Time
	TimeInSeconds uint64
	PlayerName    string
	Money         int64
	Health        float32
	Fatigue       float32
	Lat, Lon      float64
	Skills        map[string]SkillRecord
	Camera        [3]float32
}

// Store is an open save database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the save database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create save directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open save database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to save database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	if err := checkSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	log.Printf("Store: Opened save database %s", path)
	return &Store{db: db, path: path}, nil
}

// checkSchema records the schema version on a fresh database and refuses
// databases written by a newer version.
func checkSchema(db *sql.DB) error {
	var current int
	err := db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&current)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case current > schemaVersion:
		return fmt.Errorf("save database schema %d is newer than supported %d", current, schemaVersion)
	}
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Save replaces the save slot with snap.
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	savedAt := snap.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	_, err = tx.ExecContext(ctx, `INSERT OR REPLACE INTO save
        (id, saved_at, time_seconds, player_name, money, health, fatigue, lat, lon, cam_x, cam_y, cam_z)
        VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		savedAt.UnixNano(), int64(snap.TimeInSeconds), snap.PlayerName, snap.Money,
		snap.Health, snap.Fatigue, snap.Lat, snap.Lon,
		snap.Camera[0], snap.Camera[1], snap.Camera[2])
	if err != nil {
		return fmt.Errorf("write save slot: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM skills"); err != nil {
		return fmt.Errorf("clear skills: %w", err)
	}
	names := make([]string, 0, len(snap.Skills))
	for name := range snap.Skills {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rec := snap.Skills[name]
		if _, err := tx.ExecContext(ctx, "INSERT INTO skills (name, talent, xp) VALUES (?, ?, ?)",
			name, rec.Talent, rec.XP); err != nil {
			return fmt.Errorf("write skill %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Load reads the save slot. ok is false when nothing has been saved yet.
func (s *Store) Load(ctx context.Context) (snap Snapshot, ok bool, err error) {
	var savedAt, timeSeconds int64
	err = s.db.QueryRowContext(ctx, `SELECT saved_at, time_seconds, player_name, money, health, fatigue,
        lat, lon, cam_x, cam_y, cam_z FROM save WHERE id = 1`).Scan(
		&savedAt, &timeSeconds, &snap.PlayerName, &snap.Money, &snap.Health, &snap.Fatigue,
		&snap.Lat, &snap.Lon, &snap.Camera[0], &snap.Camera[1], &snap.Camera[2])
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("read save slot: %w", err)
	}
	snap.SavedAt = time.Unix(0, savedAt)
	snap.TimeInSeconds = uint64(timeSeconds)

	rows, err := s.db.QueryContext(ctx, "SELECT name, talent, xp FROM skills")
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("read skills: %w", err)
	}
	defer rows.Close()

	snap.Skills = make(map[string]SkillRecord)
	for rows.Next() {
		var name string
		var rec SkillRecord
		if err := rows.Scan(&name, &rec.Talent, &rec.XP); err != nil {
			return Snapshot{}, false, fmt.Errorf("scan skill: %w", err)
		}
		snap.Skills[name] = rec
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, false, fmt.Errorf("read skills: %w", err)
	}
	return snap, true, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
