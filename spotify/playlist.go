//
// Date: 2026-10-18
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Playlist listing and resolution.
//

package spotify

import (
	"context"
	"fmt"
	"strings"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// ExtractPlaylistID extracts the playlist ID from a Spotify URL or returns
// the input as-is if it's already just an ID.
func ExtractPlaylistID(input string) string {
	// https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M?si=xxx
	if strings.Contains(input, "spotify.com/playlist/") {
		parts := strings.Split(input, "/playlist/")
		if len(parts) > 1 {
			return strings.Split(parts[1], "?")[0]
		}
	}

	// spotify:playlist:37i9dQZF1DXcBWIGoYBM5M
	if id, ok := strings.CutPrefix(input, "spotify:playlist:"); ok {
		return id
	}

	return input
}

// ListPlaylists returns every playlist the current user owns or follows.
func (a *API) ListPlaylists(ctx context.Context) ([]spotifyLib.SimplePlaylist, error) {
	var all []spotifyLib.SimplePlaylist
	err := a.eachPlaylist(ctx, func(p spotifyLib.SimplePlaylist) bool {
		all = append(all, p)
		return true
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

// ResolvePlaylistID resolves a playlist URL, URI, name, or ID to an ID.
// URLs and 22-character IDs are taken as-is; anything else is matched
// case-insensitively against the user's playlist names. When no name matches
// the input is assumed to be an ID.
func (a *API) ResolvePlaylistID(ctx context.Context, input string) (string, error) {
	if id := ExtractPlaylistID(input); id != input {
		return id, nil
	}

	if len(input) == 22 && !strings.Contains(input, " ") {
		return input, nil
	}

	found := ""
	err := a.eachPlaylist(ctx, func(p spotifyLib.SimplePlaylist) bool {
		if strings.EqualFold(p.Name, input) || string(p.ID) == input {
			found = string(p.ID)
			return false
		}
		return true
	})
	if err != nil {
		return "", err
	}

	if found == "" {
		return input, nil
	}
	return found, nil
}

// eachPlaylist pages through the user's playlists until fn returns false.
func (a *API) eachPlaylist(ctx context.Context, fn func(spotifyLib.SimplePlaylist) bool) error {
	limit := PageSize
	offset := 0

	for {
		page, err := a.lib.CurrentUsersPlaylists(ctx, spotifyLib.Limit(limit), spotifyLib.Offset(offset))
		if err != nil {
			return fmt.Errorf("failed to get playlists: %w", err)
		}

		for _, p := range page.Playlists {
			if !fn(p) {
				return nil
			}
		}

		if len(page.Playlists) < limit {
			return nil
		}
		offset += limit
	}
}
