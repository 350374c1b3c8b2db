//
// Date: 2026-10-18
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Authenticated request helper for the Spotify Web API.
//

package spotify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	spotifyLib "github.com/zmb3/spotify/v2"
)

// API talks to the Spotify Web API with a fixed bearer token.
type API struct {
	baseURL    string
	httpClient *http.Client
	lib        *spotifyLib.Client
	logger     *log.Logger
}

// compile-time interface assertion
var _ Client = (*API)(nil)

// NewAPI creates an API client from cfg.
func NewAPI(cfg Config) *API {
	hc := authClient(cfg)
	return &API{
		baseURL:    cfg.baseURL(),
		httpClient: hc,
		lib:        spotifyLib.New(hc, spotifyLib.WithBaseURL(cfg.baseURL()+"/v1/")),
		logger:     cfg.Logger,
	}
}

// Do sends req and decodes the JSON response into out.
//
// The HTTP status is not checked. An error body is decoded like any other and
// shows up as a *DecodeError when out is missing a required field. Responses
// that are not JSON at all are reported the same way.
func (a *API) Do(ctx context.Context, req Request, out any) error {
	var body io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", req.Method, req.Endpoint, err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, a.url(req.Endpoint), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.Endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s %s response: %w", req.Method, req.Endpoint, err)
	}

	if a.logger != nil {
		a.logger.Debug("spotify response",
			"method", req.Method,
			"endpoint", req.Endpoint,
			"status", resp.StatusCode,
			"body", string(raw),
		)
	}

	if out == nil {
		return nil
	}

	decodeErr := func(err error) error {
		return &DecodeError{
			Method:   req.Method,
			Endpoint: req.Endpoint,
			Status:   resp.StatusCode,
			Err:      err,
		}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return decodeErr(err)
	}

	if v, ok := out.(validator); ok {
		if err := v.validate(); err != nil {
			return decodeErr(err)
		}
	}

	return nil
}

// url resolves an endpoint against the base URL.
func (a *API) url(endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	return a.baseURL + "/" + strings.TrimLeft(endpoint, "/")
}
