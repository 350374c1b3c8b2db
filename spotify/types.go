//
// Date: 2026-10-18
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Type definitions and interfaces for the Spotify API wrapper.
//

package spotify

import (
	"context"
	"fmt"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// Client defines the interface for the Spotify operations the shuffler uses.
// This allows for mocking in tests.
type Client interface {
	CurrentUser(ctx context.Context) (*Identity, error)
	CreatePlaylist(ctx context.Context, userID, name string) (*PlaylistHandle, error)
	SavedTracks(ctx context.Context, offset int) ([]TrackRef, error)
	AddItemsToPlaylist(ctx context.Context, playlistID string, uris []spotifyLib.URI) error
	ResolvePlaylistID(ctx context.Context, input string) (string, error)
}

// Request describes a single Spotify API call. Endpoint is either a path
// relative to the configured base URL ("/v1/me") or an absolute URL.
type Request struct {
	Method   string
	Endpoint string
	Body     map[string]any
}

// Identity is the subset of GET /v1/me the shuffler reads. A nil ID means the
// token was rejected.
type Identity struct {
	ID *string `json:"id"`
}

// UserID returns the identity's id, or "" when absent.
func (i *Identity) UserID() string {
	if i == nil || i.ID == nil {
		return ""
	}
	return *i.ID
}

// PlaylistHandle identifies a newly created playlist.
type PlaylistHandle struct {
	ID string `json:"id"`
}

func (p *PlaylistHandle) validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: playlist id missing", ErrSchema)
	}
	return nil
}

// TrackRef is an opaque reference to a saved track.
type TrackRef struct {
	URI spotifyLib.URI `json:"uri"`
}

// savedTracksPage is one page of GET /v1/me/tracks.
type savedTracksPage struct {
	Items []savedTrack `json:"items"`
	Next  *string      `json:"next"`
}

type savedTrack struct {
	AddedAt string    `json:"added_at"`
	Track   *TrackRef `json:"track"`
}

func (p *savedTracksPage) validate() error {
	// An empty page decodes to a non-nil slice; nil means the key was absent.
	if p.Items == nil {
		return fmt.Errorf("%w: items missing", ErrSchema)
	}
	for i, item := range p.Items {
		if item.Track == nil || item.Track.URI == "" {
			return fmt.Errorf("%w: items[%d].track.uri missing", ErrSchema, i)
		}
	}
	return nil
}

// refs maps the page's items to track references in response order.
func (p *savedTracksPage) refs() []TrackRef {
	refs := make([]TrackRef, 0, len(p.Items))
	for _, item := range p.Items {
		refs = append(refs, TrackRef{URI: item.Track.URI})
	}
	return refs
}

// snapshot is the response of POST /v1/playlists/{id}/tracks.
type snapshot struct {
	SnapshotID string `json:"snapshot_id"`
}

// validator is implemented by response types with required fields.
type validator interface {
	validate() error
}
