//
// Date: 2026-10-18
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Error values returned by the Spotify API wrapper.
//

package spotify

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMoreTracks is returned by TrackCursor.Next once an empty page is seen.
	ErrNoMoreTracks = errors.New("no more saved tracks")

	// ErrSchema marks a response that decoded as JSON but lacks a required field.
	ErrSchema = errors.New("response does not match expected schema")
)

// DecodeError reports a response that could not be turned into the expected
// type, either because it was not JSON or because it failed validation.
type DecodeError struct {
	Method   string
	Endpoint string
	Status   int
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s %s response (status %d): %v", e.Method, e.Endpoint, e.Status, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
