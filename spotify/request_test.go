//
// Date: 2026-10-18
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Unit tests for the request helper and endpoint calls.
//

package spotify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	spotifyLib "github.com/zmb3/spotify/v2"
)

// newTestAPI starts a test server running handler and returns an API aimed at it.
func newTestAPI(t *testing.T, handler http.HandlerFunc) *API {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAPI(Config{Token: "test-token", BaseURL: srv.URL})
}

// writeJSON writes body with the given status.
func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

// TestRequestBuilders tests the request descriptors for each endpoint.
func TestRequestBuilders(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		method   string
		endpoint string
		hasBody  bool
	}{
		{
			name:     "get me",
			req:      GetMeQuery(),
			method:   http.MethodGet,
			endpoint: "/v1/me",
		},
		{
			name:     "create playlist",
			req:      CreatePlaylistMutation("u1", "Mix"),
			method:   http.MethodPost,
			endpoint: "/v1/users/u1/playlists",
			hasBody:  true,
		},
		{
			name:     "saved tracks first page",
			req:      GetSavedTracksQuery(0),
			method:   http.MethodGet,
			endpoint: "/v1/me/tracks?limit=50&offset=0",
		},
		{
			name:     "saved tracks later page",
			req:      GetSavedTracksQuery(150),
			method:   http.MethodGet,
			endpoint: "/v1/me/tracks?limit=50&offset=150",
		},
		{
			name:     "add items",
			req:      AddItemsToPlaylistMutation("p1", []spotifyLib.URI{"spotify:track:a"}),
			method:   http.MethodPost,
			endpoint: "/v1/playlists/p1/tracks",
			hasBody:  true,
		},
		{
			name:     "user id is path escaped",
			req:      CreatePlaylistMutation("a b/c", "Mix"),
			method:   http.MethodPost,
			endpoint: "/v1/users/a%20b%2Fc/playlists",
			hasBody:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.req.Method != tt.method {
				t.Errorf("method = %s, want %s", tt.req.Method, tt.method)
			}
			if tt.req.Endpoint != tt.endpoint {
				t.Errorf("endpoint = %s, want %s", tt.req.Endpoint, tt.endpoint)
			}
			if (tt.req.Body != nil) != tt.hasBody {
				t.Errorf("body present = %v, want %v", tt.req.Body != nil, tt.hasBody)
			}
		})
	}
}

// TestCreatePlaylist_SendsHeadersAndBody tests the bearer header, content type, and JSON body.
func TestCreatePlaylist_SendsHeadersAndBody(t *testing.T) {
	var gotAuth, gotType, gotMethod, gotPath string
	var gotBody map[string]any

	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		writeJSON(w, http.StatusCreated, `{"id":"p1","name":"Mix"}`)
	})

	playlist, err := api.CreatePlaylist(context.Background(), "u1", "Mix")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if playlist.ID != "p1" {
		t.Errorf("expected playlist p1, got %s", playlist.ID)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
	if gotType != "application/json" {
		t.Errorf("expected JSON content type, got %q", gotType)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("expected POST, got %s", gotMethod)
	}
	if gotPath != "/v1/users/u1/playlists" {
		t.Errorf("unexpected path %s", gotPath)
	}
	if gotBody["name"] != "Mix" {
		t.Errorf("expected name Mix in body, got %v", gotBody)
	}
}

// TestCurrentUser_NoBody tests that GET requests carry headers but no body.
func TestCurrentUser_NoBody(t *testing.T) {
	var bodyLen int
	var gotType string

	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		bodyLen = len(b)
		gotType = r.Header.Get("Content-Type")
		writeJSON(w, http.StatusOK, `{"id":"u1","display_name":"Test User"}`)
	})

	me, err := api.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if me.UserID() != "u1" {
		t.Errorf("expected u1, got %q", me.UserID())
	}
	if bodyLen != 0 {
		t.Errorf("expected empty body, got %d bytes", bodyLen)
	}
	if gotType != "application/json" {
		t.Errorf("expected JSON content type, got %q", gotType)
	}
}

// TestCurrentUser_RejectedToken tests that a 401 decodes into an identity without an id.
func TestCurrentUser_RejectedToken(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"error":{"status":401,"message":"Invalid access token"}}`)
	})

	me, err := api.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("non-2xx should not be an error by itself: %v", err)
	}
	if me.ID != nil {
		t.Errorf("expected nil id, got %q", *me.ID)
	}
	if me.UserID() != "" {
		t.Errorf("expected empty user id, got %q", me.UserID())
	}
}

// TestCreatePlaylist_MissingID tests schema validation of the playlist response.
func TestCreatePlaylist_MissingID(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, `{"error":{"status":403,"message":"Insufficient client scope"}}`)
	})

	_, err := api.CreatePlaylist(context.Background(), "u1", "Mix")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %T: %v", err, err)
	}
	if !errors.Is(err, ErrSchema) {
		t.Errorf("expected ErrSchema, got %v", err)
	}
	if decodeErr.Status != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", decodeErr.Status)
	}
	if decodeErr.Method != http.MethodPost {
		t.Errorf("expected POST, got %s", decodeErr.Method)
	}
}

// TestDo_MalformedJSON tests that a non-JSON body becomes a DecodeError.
func TestDo_MalformedJSON(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "<html>bad gateway</html>")
	})

	_, err := api.CurrentUser(context.Background())

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %T: %v", err, err)
	}
	if errors.Is(err, ErrSchema) {
		t.Error("malformed JSON should not be reported as a schema mismatch")
	}
	if decodeErr.Status != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", decodeErr.Status)
	}
}

// TestDo_TransportError tests that connection failures are not DecodeErrors.
func TestDo_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	api := NewAPI(Config{Token: "test-token", BaseURL: url})

	_, err := api.CurrentUser(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		t.Errorf("transport error should not be a DecodeError: %v", err)
	}
}

// TestDo_AbsoluteEndpoint tests that absolute endpoints bypass the base URL.
func TestDo_AbsoluteEndpoint(t *testing.T) {
	var hit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = r.URL.Path
		writeJSON(w, http.StatusOK, `{"ok":true}`)
	}))
	defer srv.Close()

	api := NewAPI(Config{Token: "test-token", BaseURL: "http://127.0.0.1:1"})

	var out map[string]any
	err := api.Do(context.Background(), Request{Method: http.MethodGet, Endpoint: srv.URL + "/custom"}, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit != "/custom" {
		t.Errorf("expected /custom, got %s", hit)
	}
	if out["ok"] != true {
		t.Errorf("unexpected response %v", out)
	}
}

// TestDo_DebugLogsRawBody tests that raw responses are logged at debug level.
func TestDo_DebugLogsRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"u1"}`)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	api := NewAPI(Config{Token: "test-token", BaseURL: srv.URL, Logger: logger})
	if _, err := api.CurrentUser(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), "/v1/me") {
		t.Errorf("expected endpoint in debug log, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "u1") {
		t.Errorf("expected body in debug log, got %q", buf.String())
	}
}

// TestSavedTracks_Mapping tests the saved-tracks query and item mapping.
func TestSavedTracks_Mapping(t *testing.T) {
	var gotQuery string

	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeJSON(w, http.StatusOK, `{
			"items": [
				{"added_at": "2020-01-01T00:00:00Z", "track": {"uri": "spotify:track:a", "name": "A"}},
				{"added_at": "2020-01-02T00:00:00Z", "track": {"uri": "spotify:track:b", "name": "B"}}
			],
			"next": null
		}`)
	})

	refs, err := api.SavedTracks(context.Background(), 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery != "limit=50&offset=100" {
		t.Errorf("unexpected query %q", gotQuery)
	}
	if len(refs) != 2 || refs[0].URI != "spotify:track:a" || refs[1].URI != "spotify:track:b" {
		t.Errorf("unexpected refs %v", refs)
	}
}

// TestSavedTracks_EmptyPage tests that an empty page is not an error.
func TestSavedTracks_EmptyPage(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"items":[],"next":null}`)
	})

	refs, err := api.SavedTracks(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 0 {
		t.Errorf("expected no refs, got %d", len(refs))
	}
}

// TestSavedTracks_SchemaErrors tests validation of malformed saved-track pages.
func TestSavedTracks_SchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "error body", body: `{"error":{"status":401,"message":"expired"}}`},
		{name: "null track", body: `{"items":[{"track":null}]}`},
		{name: "missing uri", body: `{"items":[{"track":{"name":"A"}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, tt.body)
			})

			_, err := api.SavedTracks(context.Background(), 0)
			if !errors.Is(err, ErrSchema) {
				t.Errorf("expected ErrSchema, got %v", err)
			}
		})
	}
}

// TestAddItemsToPlaylist_Body tests the add-items request body and path.
func TestAddItemsToPlaylist_Body(t *testing.T) {
	var gotPath string
	var gotBody struct {
		URIs []string `json:"uris"`
	}

	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		writeJSON(w, http.StatusCreated, `{"snapshot_id":"snap1"}`)
	})

	uris := []spotifyLib.URI{"spotify:track:a", "spotify:track:b", "spotify:track:c"}
	if err := api.AddItemsToPlaylist(context.Background(), "p1", uris); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/v1/playlists/p1/tracks" {
		t.Errorf("unexpected path %s", gotPath)
	}
	if strings.Join(gotBody.URIs, ",") != "spotify:track:a,spotify:track:b,spotify:track:c" {
		t.Errorf("unexpected uris %v", gotBody.URIs)
	}
}
