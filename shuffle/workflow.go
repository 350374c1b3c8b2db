//
// Date: 2026-10-18
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Copies saved tracks into a playlist in random order.
//

package shuffle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	spotifyLib "github.com/zmb3/spotify/v2"

	"github.com/cloudmanic/spotify-shuffle/spotify"
)

// DefaultPlaylistName is used when no name is given.
const DefaultPlaylistName = "What Type Of Dog Is This?"

// ErrInvalidToken is returned when GET /v1/me comes back without an id.
var ErrInvalidToken = errors.New("invalid or expired token")

// State is a step of the workflow.
type State int

const (
	StateInit State = iota
	StateIdentityFetched
	StatePlaylistCreated
	StateTracksCollected
	StateShuffled
	StatePublishing
	StateDone
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateIdentityFetched:
		return "identity-fetched"
	case StatePlaylistCreated:
		return "playlist-created"
	case StateTracksCollected:
		return "tracks-collected"
	case StateShuffled:
		return "shuffled"
	case StatePublishing:
		return "publishing"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Result summarizes a run.
type Result struct {
	UserID     string
	PlaylistID string
	Collected  int

	// Batches holds the size of each add-items request in the order sent.
	Batches []int
}

// Workflow copies every saved track into one playlist in shuffled order.
// Steps run strictly one after another and the first error aborts the run.
// Nothing is rolled back, so a failure while publishing leaves a partially
// filled playlist behind.
type Workflow struct {
	Client spotify.Client
	Logger *log.Logger
	Rand   *rand.Rand

	// Name of the playlist to create. Defaults to DefaultPlaylistName.
	Name string

	// Target, when set, names an existing playlist (URL, name, or ID) to
	// append to instead of creating a new one.
	Target string

	// DryRun collects and shuffles without creating or filling a playlist.
	DryRun bool

	state State
}

// State returns the last state the workflow reached.
func (w *Workflow) State() State {
	return w.state
}

// Run executes the workflow.
func (w *Workflow) Run(ctx context.Context) (*Result, error) {
	logger := w.logger()
	res := &Result{}
	w.state = StateInit

	// Who are we?
	me, err := w.Client.CurrentUser(ctx)
	if err != nil {
		return res, fmt.Errorf("fetching identity: %w", err)
	}
	if me.ID == nil {
		logger.Error("token rejected, no user id returned")
		return res, ErrInvalidToken
	}
	res.UserID = *me.ID
	w.state = StateIdentityFetched
	logger.Info("authenticated", "user", res.UserID)

	if !w.DryRun {
		res.PlaylistID, err = w.playlist(ctx, res.UserID)
		if err != nil {
			return res, err
		}
		w.state = StatePlaylistCreated
	}

	tracks, err := w.collect(ctx)
	if err != nil {
		return res, err
	}
	res.Collected = len(tracks)
	w.state = StateTracksCollected

	Shuffle(w.random(), tracks)
	w.state = StateShuffled

	if w.DryRun {
		logger.Info("dry run, nothing published", "tracks", humanize.Comma(int64(len(tracks))))
		w.state = StateDone
		return res, nil
	}

	uris := make([]spotifyLib.URI, len(tracks))
	for i, t := range tracks {
		uris[i] = t.URI
	}

	remaining := len(uris)
	for _, batch := range Batches(uris, spotify.MaxBatchSize) {
		w.state = StatePublishing
		logger.Info("publishing tracks", "remaining", humanize.Comma(int64(remaining)))

		if err := w.Client.AddItemsToPlaylist(ctx, res.PlaylistID, batch); err != nil {
			return res, fmt.Errorf("adding tracks to playlist %s: %w", res.PlaylistID, err)
		}
		res.Batches = append(res.Batches, len(batch))
		remaining -= len(batch)
	}

	w.state = StateDone
	logger.Info("done",
		"playlist", res.PlaylistID,
		"tracks", humanize.Comma(int64(res.Collected)),
		"batches", len(res.Batches),
	)
	return res, nil
}

// playlist creates the destination playlist, or resolves Target when set.
func (w *Workflow) playlist(ctx context.Context, userID string) (string, error) {
	logger := w.logger()

	if w.Target != "" {
		id, err := w.Client.ResolvePlaylistID(ctx, w.Target)
		if err != nil {
			return "", fmt.Errorf("resolving playlist %q: %w", w.Target, err)
		}
		logger.Info("appending to existing playlist", "playlist", id)
		return id, nil
	}

	name := w.Name
	if name == "" {
		name = DefaultPlaylistName
	}

	playlist, err := w.Client.CreatePlaylist(ctx, userID, name)
	if err != nil {
		return "", fmt.Errorf("creating playlist: %w", err)
	}
	logger.Info("playlist created", "playlist", playlist.ID, "name", name)
	return playlist.ID, nil
}

// collect drains the saved-tracks cursor into memory, in library order.
func (w *Workflow) collect(ctx context.Context) ([]spotify.TrackRef, error) {
	logger := w.logger()
	cursor := spotify.NewTrackCursor(w.Client)

	var tracks []spotify.TrackRef
	for {
		logger.Info("gathering tracks", "offset", humanize.Comma(int64(cursor.Offset())))

		page, err := cursor.Next(ctx)
		if errors.Is(err, spotify.ErrNoMoreTracks) {
			return tracks, nil
		}
		if err != nil {
			return nil, fmt.Errorf("fetching saved tracks at offset %d: %w", cursor.Offset(), err)
		}
		tracks = append(tracks, page...)
	}
}

func (w *Workflow) logger() *log.Logger {
	if w.Logger == nil {
		w.Logger = log.New(io.Discard)
	}
	return w.Logger
}

func (w *Workflow) random() *rand.Rand {
	if w.Rand == nil {
		w.Rand = NewRand(0)
	}
	return w.Rand
}
