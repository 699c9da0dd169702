// Package postgres holds the relational backend of the profile store and the swipe ledger.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	user_id       TEXT PRIMARY KEY,
	username      TEXT NOT NULL DEFAULT '',
	name          TEXT NOT NULL,
	age           INTEGER NOT NULL,
	city          TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	preference    TEXT NOT NULL DEFAULT '',
	photo_id      TEXT NOT NULL,
	gender        TEXT NOT NULL,
	gender_filter TEXT NOT NULL,
	version       BIGINT NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS likes (
	from_user_id TEXT NOT NULL,
	to_user_id   TEXT NOT NULL,
	is_like      BOOLEAN NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (from_user_id, to_user_id)
);

CREATE TABLE IF NOT EXISTS matches (
	user_lo    TEXT NOT NULL,
	user_hi    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	notified   BOOLEAN NOT NULL DEFAULT FALSE,
	PRIMARY KEY (user_lo, user_hi)
);
`

// Open connects and checks the database is reachable.
func Open(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cannot reach the database: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}

	defer func() {
		// If the callback panics, make sure to rollback before re-panicking
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
