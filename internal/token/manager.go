// Package token manages the per-user Spotify credential lifecycle: the
// authorization-code exchange, lazy expiry checks with transparent refresh,
// and disconnect.
package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// Sentinel errors.
var (
	// ErrNotConnected is returned when the user has no Spotify credential
	// on file. The user must connect their account.
	ErrNotConnected = errors.New("spotify account not connected")

	// ErrRefreshFailed is returned when the provider rejects the refresh
	// grant. The stored credential is left untouched; the user must
	// reconnect.
	ErrRefreshFailed = errors.New("spotify token refresh failed")
)

// Credential is a user's Spotify token set. Expiry reflects the provider's
// declared access-token lifetime; once now >= Expiry the access token is
// unusable and must be refreshed before use.
type Credential struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// Connected reports whether the credential represents a linked account.
func (c Credential) Connected() bool {
	return c.RefreshToken != ""
}

// Expired reports whether the access token is unusable at the given time.
func (c Credential) Expired(now time.Time) bool {
	return !now.Before(c.Expiry)
}

// Store persists credentials. The user record repository implements it.
type Store interface {
	Credential(ctx context.Context, userID string) (Credential, error)
	SaveCredential(ctx context.Context, userID string, cred Credential) error
	ClearCredential(ctx context.Context, userID string) error
}

// Refresher performs the OAuth grants against the provider.
// *spotifyauth.Authenticator satisfies it.
type Refresher interface {
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
	RefreshToken(ctx context.Context, token *oauth2.Token) (*oauth2.Token, error)
}

// Manager owns the credential lifecycle for all users. It holds no per-user
// in-memory state; every call reads through the store.
//
// Concurrent requests for the same user that both observe an expired token
// may both refresh. The provider issues a fresh valid token either way, so
// the race wastes a call but cannot corrupt the stored credential.
type Manager struct {
	auth  Refresher
	store Store
	log   zerolog.Logger
	now   func() time.Time
}

// NewManager creates a Manager backed by the given provider authenticator
// and credential store.
func NewManager(auth Refresher, store Store, log zerolog.Logger) *Manager {
	return &Manager{
		auth:  auth,
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// Connect exchanges an authorization code for a token set and persists it,
// moving the user to the connected state.
func (m *Manager) Connect(ctx context.Context, userID, code string) (Credential, error) {
	tok, err := m.auth.Exchange(ctx, code)
	if err != nil {
		return Credential{}, fmt.Errorf("exchanging authorization code: %w", err)
	}

	cred := Credential{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		Expiry:       tok.Expiry,
	}
	if err := m.store.SaveCredential(ctx, userID, cred); err != nil {
		return Credential{}, fmt.Errorf("persisting credential: %w", err)
	}

	m.log.Info().Str("user_id", userID).Time("expiry", cred.Expiry).Msg("spotify account connected")
	return cred, nil
}

// EnsureValidToken returns an access token that is valid at the time of
// return. A stale token is refreshed at most once, and the refreshed
// credential is persisted before the token is handed back, so a crash after
// return cannot leave a returned token unpersisted.
func (m *Manager) EnsureValidToken(ctx context.Context, userID string) (string, error) {
	cred, err := m.store.Credential(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("loading credential: %w", err)
	}
	if !cred.Connected() {
		return "", ErrNotConnected
	}

	if !cred.Expired(m.now()) {
		return cred.AccessToken, nil
	}

	refreshed, err := m.refresh(ctx, userID, cred)
	if err != nil {
		return "", err
	}
	return refreshed.AccessToken, nil
}

// refresh runs the refresh grant and persists the replacement credential.
// On provider rejection the stored credential is left as-is for the caller
// to observe or retry.
func (m *Manager) refresh(ctx context.Context, userID string, cred Credential) (Credential, error) {
	tok, err := m.auth.RefreshToken(ctx, &oauth2.Token{
		AccessToken:  cred.AccessToken,
		RefreshToken: cred.RefreshToken,
		Expiry:       cred.Expiry,
	})
	if err != nil {
		m.log.Warn().Err(err).Str("user_id", userID).Msg("spotify refresh grant rejected")
		return Credential{}, fmt.Errorf("%w: %v", ErrRefreshFailed, err)
	}

	next := Credential{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		Expiry:       tok.Expiry,
	}
	// The refresh response may omit the refresh token; the prior one then
	// remains valid and must be retained.
	if next.RefreshToken == "" {
		next.RefreshToken = cred.RefreshToken
	}

	if err := m.store.SaveCredential(ctx, userID, next); err != nil {
		return Credential{}, fmt.Errorf("persisting refreshed credential: %w", err)
	}

	m.log.Debug().Str("user_id", userID).Time("expiry", next.Expiry).Msg("spotify token refreshed")
	return next, nil
}

// Disconnect clears the stored credential, moving the user back to the
// disconnected state. Only an explicit user action calls this; refresh
// failures never disconnect automatically.
func (m *Manager) Disconnect(ctx context.Context, userID string) error {
	if err := m.store.ClearCredential(ctx, userID); err != nil {
		return fmt.Errorf("clearing credential: %w", err)
	}
	m.log.Info().Str("user_id", userID).Msg("spotify account disconnected")
	return nil
}
