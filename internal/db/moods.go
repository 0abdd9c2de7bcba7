package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MoodRepository handles mood entry database operations.
type MoodRepository struct {
	pool *pgxpool.Pool
}

// Create inserts a new mood entry, assigning its ID and creation time.
func (r *MoodRepository) Create(ctx context.Context, entry *MoodEntry) error {
	query := `
		INSERT INTO mood_entries (id, user_id, mood_type, intensity, preferred_genres, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()

	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.MoodType,
		entry.Intensity,
		entry.PreferredGenres,
		entry.Note,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting mood entry: %w", err)
	}
	return nil
}

// Get retrieves a mood entry owned by the given user.
func (r *MoodRepository) Get(ctx context.Context, id uuid.UUID, userID string) (*MoodEntry, error) {
	query := `
		SELECT id, user_id, mood_type, intensity, preferred_genres, note,
		       playlist_id, playlist_url, songs_generated, created_at
		FROM mood_entries
		WHERE id = $1 AND user_id = $2
	`
	var entry MoodEntry
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.MoodType,
		&entry.Intensity,
		&entry.PreferredGenres,
		&entry.Note,
		&entry.PlaylistID,
		&entry.PlaylistURL,
		&entry.SongsGenerated,
		&entry.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying mood entry: %w", err)
	}
	return &entry, nil
}

// ListForUser returns a user's mood entries, newest first.
func (r *MoodRepository) ListForUser(ctx context.Context, userID string, limit int) ([]MoodEntry, error) {
	query := `
		SELECT id, user_id, mood_type, intensity, preferred_genres, note,
		       playlist_id, playlist_url, songs_generated, created_at
		FROM mood_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying mood entries: %w", err)
	}
	defer rows.Close()

	var entries []MoodEntry
	for rows.Next() {
		var entry MoodEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.MoodType,
			&entry.Intensity,
			&entry.PreferredGenres,
			&entry.Note,
			&entry.PlaylistID,
			&entry.PlaylistURL,
			&entry.SongsGenerated,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning mood entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading mood entries: %w", err)
	}
	return entries, nil
}

// SetPlaylist writes the generated playlist back onto the entry.
func (r *MoodRepository) SetPlaylist(ctx context.Context, id uuid.UUID, playlistID, playlistURL string, songs int) error {
	query := `
		UPDATE mood_entries
		SET playlist_id = $2, playlist_url = $3, songs_generated = $4
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query, id, playlistID, playlistURL, songs)
	if err != nil {
		return fmt.Errorf("updating mood playlist: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
