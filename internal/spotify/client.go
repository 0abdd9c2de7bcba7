// Package spotify wraps the Spotify Web API client used by the service.
package spotify

import (
	"context"
	"fmt"
	"sync"

	"github.com/zmb3/spotify/v2"
	"golang.org/x/oauth2"
)

// Client wraps the Spotify API client with the calls this service makes.
type Client struct {
	api *spotify.Client

	// Cached available-genre-seeds list, fetched at most once per client.
	seedsMu sync.RWMutex
	seeds   map[string]bool
}

// New creates a client wrapper. The underlying client should already be
// authenticated.
func New(api *spotify.Client) *Client {
	return &Client{api: api}
}

// NewWithToken builds a client that authenticates every call with the given
// access token. Token refresh is the token manager's job and has already
// happened by the time a wrapper is constructed, so the token is mounted
// as a static source.
func NewWithToken(ctx context.Context, accessToken string) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	return New(spotify.New(oauth2.NewClient(ctx, src), spotify.WithRetry(true)))
}

// CurrentAccount returns the authenticated user's account metadata.
func (c *Client) CurrentAccount(ctx context.Context) (Account, error) {
	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		return Account{}, fmt.Errorf("getting current user: %w", err)
	}
	return Account{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Product:     user.Product,
	}, nil
}
