package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/justestif/moodtunes/internal/token"
)

// UserRepository handles user database operations. It also implements
// token.Store so the token lifecycle manager can persist credentials.
type UserRepository struct {
	pool *pgxpool.Pool
}

// Get retrieves a user by ID, including the secret credential columns.
func (r *UserRepository) Get(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT id, display_name, email, spotify_account_id,
		       access_token, refresh_token, token_expiry, premium,
		       created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var user User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.DisplayName,
		&user.Email,
		&user.SpotifyAccountID,
		&user.AccessToken,
		&user.RefreshToken,
		&user.TokenExpiry,
		&user.Premium,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}
	return &user, nil
}

// Upsert creates or updates a user's profile fields.
func (r *UserRepository) Upsert(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, display_name, email, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			email = EXCLUDED.email,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		user.ID,
		user.DisplayName,
		user.Email,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting user: %w", err)
	}
	return nil
}

// EnsureExists creates a bare user row if none exists, leaving existing
// profile fields untouched.
func (r *UserRepository) EnsureExists(ctx context.Context, id string) error {
	query := `
		INSERT INTO users (id, display_name, email, created_at, updated_at)
		VALUES ($1, '', '', NOW(), NOW())
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("ensuring user exists: %w", err)
	}
	return nil
}

// SaveSpotifyAccount records the linked Spotify account id and premium flag.
func (r *UserRepository) SaveSpotifyAccount(ctx context.Context, userID, accountID string, premium bool) error {
	query := `
		UPDATE users
		SET spotify_account_id = $2, premium = $3, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query, userID, accountID, premium)
	if err != nil {
		return fmt.Errorf("saving spotify account: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Credential loads a user's Spotify credential. A user without one yields a
// zero credential, which the token manager reports as not connected.
func (r *UserRepository) Credential(ctx context.Context, userID string) (token.Credential, error) {
	query := `
		SELECT access_token, refresh_token, token_expiry
		FROM users
		WHERE id = $1
	`
	var (
		access  *string
		refresh *string
		expiry  *time.Time
	)
	err := r.pool.QueryRow(ctx, query, userID).Scan(&access, &refresh, &expiry)
	if errors.Is(err, pgx.ErrNoRows) {
		return token.Credential{}, ErrNotFound
	}
	if err != nil {
		return token.Credential{}, fmt.Errorf("querying credential: %w", err)
	}

	var cred token.Credential
	if access != nil {
		cred.AccessToken = *access
	}
	if refresh != nil {
		cred.RefreshToken = *refresh
	}
	if expiry != nil {
		cred.Expiry = *expiry
	}
	return cred, nil
}

// SaveCredential replaces a user's Spotify credential.
func (r *UserRepository) SaveCredential(ctx context.Context, userID string, cred token.Credential) error {
	query := `
		UPDATE users
		SET access_token = $2, refresh_token = $3, token_expiry = $4, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query, userID, cred.AccessToken, cred.RefreshToken, cred.Expiry)
	if err != nil {
		return fmt.Errorf("saving credential: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearCredential unsets the credential columns and the linked account.
func (r *UserRepository) ClearCredential(ctx context.Context, userID string) error {
	query := `
		UPDATE users
		SET access_token = NULL, refresh_token = NULL, token_expiry = NULL,
		    spotify_account_id = NULL, premium = FALSE, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("clearing credential: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Ensure the repository satisfies the token manager's store contract.
var _ token.Store = (*UserRepository)(nil)
