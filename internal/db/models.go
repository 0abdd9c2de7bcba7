package db

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered user with an optionally linked Spotify account.
// The token columns are secrets; they are loaded only by the credential
// accessors, never serialized to API responses.
type User struct {
	ID               string
	DisplayName      string
	Email            string
	SpotifyAccountID *string    // nullable until connected
	AccessToken      *string    // nullable, secret
	RefreshToken     *string    // nullable, secret
	TokenExpiry      *time.Time // nullable
	Premium          bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Connected reports whether the user has a Spotify credential on file.
func (u *User) Connected() bool {
	return u.RefreshToken != nil && *u.RefreshToken != ""
}

// MoodEntry is a logged mood. Playlist fields are written back after a
// playlist is generated for the entry.
type MoodEntry struct {
	ID              uuid.UUID
	UserID          string
	MoodType        string // a mood.Category value
	Intensity       int    // 1-4
	PreferredGenres []string
	Note            *string // nullable
	PlaylistID      *string // nullable
	PlaylistURL     *string // nullable
	SongsGenerated  *int    // nullable
	CreatedAt       time.Time
}
