package spotify

import "github.com/zmb3/spotify/v2"

// Track is the normalized track shape returned to callers. Tracks are never
// persisted; downstream code references them by ID and URI only.
type Track struct {
	ID          string   `json:"id"`
	URI         string   `json:"uri"`
	Name        string   `json:"name"`
	Artists     []string `json:"artists"`
	Album       Album    `json:"album"`
	DurationMs  int      `json:"duration_ms"`
	PreviewURL  string   `json:"preview_url,omitempty"`
	ExternalURL string   `json:"external_url"`
	Popularity  int      `json:"popularity"`
	Explicit    bool     `json:"explicit"`
}

// Album holds the subset of album metadata exposed per track.
type Album struct {
	Name   string  `json:"name"`
	Images []Image `json:"images"`
}

// Image is album artwork in one size.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// Playlist is the created-playlist metadata returned to callers.
type Playlist struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ExternalURL string `json:"external_url"`
}

// Account is the Spotify account linked to a user.
type Account struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
	Product     string `json:"product"`
}

// Premium reports whether the account has a premium subscription.
func (a Account) Premium() bool {
	return a.Product == "premium"
}

// fromSimpleTrack converts the provider's simple track representation.
func fromSimpleTrack(t spotify.SimpleTrack) Track {
	artists := make([]string, len(t.Artists))
	for i, a := range t.Artists {
		artists[i] = a.Name
	}

	return Track{
		ID:          t.ID.String(),
		URI:         string(t.URI),
		Name:        t.Name,
		Artists:     artists,
		Album:       fromAlbum(t.Album),
		DurationMs:  int(t.Duration),
		PreviewURL:  t.PreviewURL,
		ExternalURL: t.ExternalURLs["spotify"],
		Explicit:    t.Explicit,
	}
}

// fromFullTrack converts the provider's full track representation, which
// additionally carries popularity.
func fromFullTrack(t spotify.FullTrack) Track {
	track := fromSimpleTrack(t.SimpleTrack)
	track.Album = fromAlbum(t.Album)
	track.Popularity = int(t.Popularity)
	return track
}

func fromAlbum(a spotify.SimpleAlbum) Album {
	images := make([]Image, len(a.Images))
	for i, img := range a.Images {
		images[i] = Image{URL: img.URL, Height: int(img.Height), Width: int(img.Width)}
	}
	return Album{Name: a.Name, Images: images}
}
