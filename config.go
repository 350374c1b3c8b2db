//
// Date: 2026-10-18
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Command line arguments, environment settings, and logger setup.
//

package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/cloudmanic/spotify-shuffle/shuffle"
)

const (
	exitOK      = 0
	exitFailure = 1
)

// args holds the command line flags. None are required.
type args struct {
	Name      string `arg:"--name" help:"name of the playlist to create"`
	Playlist  string `arg:"--playlist" help:"append to an existing playlist (URL, name, or ID) instead of creating one"`
	Playlists bool   `arg:"--playlists" help:"list your playlists and exit"`
	DryRun    bool   `arg:"--dry-run" help:"collect and shuffle without touching any playlist"`
	Seed      int64  `arg:"--seed" help:"shuffle seed, 0 picks one from the clock"`
	Debug     bool   `arg:"--debug" help:"log raw API responses"`
}

// Description provides the help text header.
func (args) Description() string {
	return "Copies your saved Spotify tracks into a new playlist in random order.\n" +
		"Reads the bearer token from TOKEN (a .env file in the working directory is loaded first).\n"
}

// env holds the settings read from the environment at startup.
type env struct {
	Token   string
	BaseURL string
}

func loadEnv() env {
	return env{
		Token:   os.Getenv("TOKEN"),
		BaseURL: os.Getenv("SPOTIFY_API_URL"),
	}
}

// playlistName returns the name flag or the default.
func (a args) playlistName() string {
	if a.Name == "" {
		return shuffle.DefaultPlaylistName
	}
	return a.Name
}

// newLogger creates a logger writing to w. Terminals get the styled text
// format; anything else gets logfmt. Every entry carries a run id.
func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{ReportTimestamp: true})

	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		logger.SetFormatter(log.LogfmtFormatter)
	}

	if debug {
		logger.SetLevel(log.DebugLevel)
	}

	return logger.With("run", uuid.NewString())
}
