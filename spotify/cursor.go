//
// Date: 2026-10-18
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Pull-based cursor over the user's saved tracks.
//

package spotify

import (
	"context"
	"errors"
	"iter"
)

// SavedTracksFetcher fetches one page of saved tracks at an offset.
type SavedTracksFetcher interface {
	SavedTracks(ctx context.Context, offset int) ([]TrackRef, error)
}

// TrackCursor walks the saved-tracks library a page at a time. The offset
// starts at zero and advances by PageSize after every non-empty page. Only an
// empty page ends the walk, so a short final page is still followed by one
// more request. A cursor cannot be rewound.
type TrackCursor struct {
	api    SavedTracksFetcher
	offset int
	done   bool
}

// NewTrackCursor returns a cursor positioned at the start of the library.
func NewTrackCursor(api SavedTracksFetcher) *TrackCursor {
	return &TrackCursor{api: api}
}

// Offset returns the offset the next request will use.
func (c *TrackCursor) Offset() int {
	return c.offset
}

// Next returns the next non-empty page, or ErrNoMoreTracks once the library
// is exhausted. A failed request leaves the offset unchanged.
func (c *TrackCursor) Next(ctx context.Context) ([]TrackRef, error) {
	if c.done {
		return nil, ErrNoMoreTracks
	}

	refs, err := c.api.SavedTracks(ctx, c.offset)
	if err != nil {
		return nil, err
	}

	if len(refs) == 0 {
		c.done = true
		return nil, ErrNoMoreTracks
	}

	c.offset += PageSize
	return refs, nil
}

// All ranges over every remaining track. A request error is yielded once and
// ends the sequence. Breaking out early drops the rest of the current page.
func (c *TrackCursor) All(ctx context.Context) iter.Seq2[TrackRef, error] {
	return func(yield func(TrackRef, error) bool) {
		for {
			page, err := c.Next(ctx)
			if errors.Is(err, ErrNoMoreTracks) {
				return
			}
			if err != nil {
				yield(TrackRef{}, err)
				return
			}

			for _, ref := range page {
				if !yield(ref, nil) {
					return
				}
			}
		}
	}
}
