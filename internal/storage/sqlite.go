package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists the document to a SQLite database. The document is
// spread over four tables and rewritten in a single transaction per save.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the database at path and
// applies the schema.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS device_stats (
			name TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS device_inventory (
			item TEXT PRIMARY KEY,
			quantity INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS device_settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS device_meta (
			key TEXT PRIMARY KEY,
			last_updated TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

const metaKey = "device"

func (s *SQLiteStore) Load(ctx context.Context) (*Document, error) {
	var stamp string
	row := s.db.QueryRowContext(ctx, `SELECT last_updated FROM device_meta WHERE key = ?`, metaKey)
	if err := row.Scan(&stamp); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("meta get: %w", err)
	}
	lastUpdated, err := time.Parse(time.RFC3339Nano, stamp)
	if err != nil {
		return nil, fmt.Errorf("%w: last_updated: %v", ErrCorruptDocument, err)
	}

	doc := &Document{
		Stats:       map[string]int{},
		Inventory:   map[string]int{},
		Settings:    map[string]any{},
		LastUpdated: lastUpdated,
	}

	if err := s.scanPairs(ctx, `SELECT name, value FROM device_stats`, doc.Stats); err != nil {
		return nil, err
	}
	if err := s.scanPairs(ctx, `SELECT item, quantity FROM device_inventory`, doc.Inventory); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM device_settings`)
	if err != nil {
		return nil, fmt.Errorf("settings list: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("settings scan: %w", err)
		}
		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("%w: setting %q: %v", ErrCorruptDocument, key, err)
		}
		doc.Settings[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("settings rows: %w", err)
	}
	return doc, nil
}

func (s *SQLiteStore) scanPairs(ctx context.Context, query string, into map[string]int) error {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("pairs list: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var value int
		if err := rows.Scan(&name, &value); err != nil {
			return fmt.Errorf("pairs scan: %w", err)
		}
		into[name] = value
	}
	return rows.Err()
}

func (s *SQLiteStore) Save(ctx context.Context, doc *Document) error {
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, table := range []string{"device_stats", "device_inventory", "device_settings", "device_meta"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		for name, value := range doc.Stats {
			if _, err := tx.ExecContext(ctx, `INSERT INTO device_stats (name, value) VALUES (?, ?)`, name, value); err != nil {
				return fmt.Errorf("stats insert: %w", err)
			}
		}
		for item, qty := range doc.Inventory {
			if _, err := tx.ExecContext(ctx, `INSERT INTO device_inventory (item, quantity) VALUES (?, ?)`, item, qty); err != nil {
				return fmt.Errorf("inventory insert: %w", err)
			}
		}
		for key, value := range doc.Settings {
			raw, err := json.Marshal(value)
			if err != nil {
				return fmt.Errorf("encode setting %q: %w", key, err)
			}
			if _, err := tx.ExecContext(ctx, `INSERT INTO device_settings (key, value) VALUES (?, ?)`, key, string(raw)); err != nil {
				return fmt.Errorf("settings insert: %w", err)
			}
		}
		stamp := doc.LastUpdated.Format(time.RFC3339Nano)
		if _, err := tx.ExecContext(ctx, `INSERT INTO device_meta (key, last_updated) VALUES (?, ?)`, metaKey, stamp); err != nil {
			return fmt.Errorf("meta insert: %w", err)
		}
		return nil
	})
}
