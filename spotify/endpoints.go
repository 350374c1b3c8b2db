//
// Date: 2026-10-18
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Request builders and typed calls for the endpoints the shuffler uses.
//

package spotify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// GetMeQuery builds GET /v1/me.
func GetMeQuery() Request {
	return Request{
		Method:   http.MethodGet,
		Endpoint: "/v1/me",
	}
}

// CreatePlaylistMutation builds POST /v1/users/{userID}/playlists.
func CreatePlaylistMutation(userID, name string) Request {
	return Request{
		Method:   http.MethodPost,
		Endpoint: fmt.Sprintf("/v1/users/%s/playlists", url.PathEscape(userID)),
		Body: map[string]any{
			"name": name,
		},
	}
}

// GetSavedTracksQuery builds GET /v1/me/tracks for the page starting at offset.
func GetSavedTracksQuery(offset int) Request {
	return Request{
		Method:   http.MethodGet,
		Endpoint: fmt.Sprintf("/v1/me/tracks?limit=%d&offset=%d", PageSize, offset),
	}
}

// AddItemsToPlaylistMutation builds POST /v1/playlists/{playlistID}/tracks.
func AddItemsToPlaylistMutation(playlistID string, uris []spotifyLib.URI) Request {
	return Request{
		Method:   http.MethodPost,
		Endpoint: fmt.Sprintf("/v1/playlists/%s/tracks", url.PathEscape(playlistID)),
		Body: map[string]any{
			"uris": uris,
		},
	}
}

// CurrentUser returns the identity behind the token.
func (a *API) CurrentUser(ctx context.Context) (*Identity, error) {
	var me Identity
	if err := a.Do(ctx, GetMeQuery(), &me); err != nil {
		return nil, err
	}
	return &me, nil
}

// CreatePlaylist creates a playlist named name owned by userID.
func (a *API) CreatePlaylist(ctx context.Context, userID, name string) (*PlaylistHandle, error) {
	var playlist PlaylistHandle
	if err := a.Do(ctx, CreatePlaylistMutation(userID, name), &playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}

// SavedTracks returns one page of the user's saved tracks. An empty slice
// means offset is past the end of the library.
func (a *API) SavedTracks(ctx context.Context, offset int) ([]TrackRef, error) {
	var page savedTracksPage
	if err := a.Do(ctx, GetSavedTracksQuery(offset), &page); err != nil {
		return nil, err
	}
	return page.refs(), nil
}

// AddItemsToPlaylist appends uris to the playlist in order. Callers keep
// batches at or below MaxBatchSize.
func (a *API) AddItemsToPlaylist(ctx context.Context, playlistID string, uris []spotifyLib.URI) error {
	var snap snapshot
	return a.Do(ctx, AddItemsToPlaylistMutation(playlistID, uris), &snap)
}
