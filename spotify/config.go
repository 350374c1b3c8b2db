//
// Date: 2026-10-18
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Configuration constants and client settings for the Spotify API.
//

package spotify

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	// DefaultBaseURL is the Spotify Web API host. Endpoint paths carry the /v1 prefix.
	DefaultBaseURL = "https://api.spotify.com"

	// PageSize is the number of saved tracks requested per page.
	PageSize = 50

	// MaxBatchSize is the most items Spotify accepts in one add-to-playlist call.
	MaxBatchSize = 100
)

// Config holds everything needed to talk to the Spotify API. It is built once
// at startup and handed to NewAPI; nothing in this package reads the environment.
type Config struct {
	// Token is the bearer credential sent with every request.
	Token string

	// BaseURL overrides DefaultBaseURL, mostly for tests.
	BaseURL string

	// HTTPClient is the underlying client the bearer transport wraps.
	// Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Logger receives raw response bodies at debug level. Optional.
	Logger *log.Logger
}

// baseURL returns the configured base URL without a trailing slash.
func (c Config) baseURL() string {
	if c.BaseURL == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(c.BaseURL, "/")
}
