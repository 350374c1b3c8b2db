//
// Date: 2026-10-18
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Bearer token transport for authenticated Spotify requests.
//

package spotify

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

// authClient wraps the configured HTTP client so every request carries
// "Authorization: Bearer <token>". The token is never refreshed; an expired
// token simply produces responses without the fields callers expect.
func authClient(cfg Config) *http.Client {
	base := cfg.HTTPClient
	if base == nil {
		base = http.DefaultClient
	}

	// oauth2 picks the base client up from the context
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)

	src := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cfg.Token,
		TokenType:   "Bearer",
	})

	return oauth2.NewClient(ctx, src)
}
