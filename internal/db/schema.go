package db

import (
	"context"
	"fmt"
)

// schema is applied at startup; statements are idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id                 TEXT PRIMARY KEY,
	display_name       TEXT NOT NULL DEFAULT '',
	email              TEXT NOT NULL DEFAULT '',
	spotify_account_id TEXT,
	access_token       TEXT,
	refresh_token      TEXT,
	token_expiry       TIMESTAMPTZ,
	premium            BOOLEAN NOT NULL DEFAULT FALSE,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS mood_entries (
	id               UUID PRIMARY KEY,
	user_id          TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	mood_type        TEXT NOT NULL,
	intensity        INTEGER NOT NULL CHECK (intensity BETWEEN 1 AND 4),
	preferred_genres TEXT[] NOT NULL DEFAULT '{}',
	note             TEXT,
	playlist_id      TEXT,
	playlist_url     TEXT,
	songs_generated  INTEGER,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_mood_entries_user_created
	ON mood_entries (user_id, created_at DESC);
`

// EnsureSchema creates the tables if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}
