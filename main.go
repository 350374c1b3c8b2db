//
// Date: 2026-10-18
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Spotify saved-tracks shuffler. Copies every track in the
// user's library into a new playlist in random order.
//

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alexflint/go-arg"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/cloudmanic/spotify-shuffle/shuffle"
	"github.com/cloudmanic/spotify-shuffle/spotify"
)

// main is the entry point for the application.
func main() {
	var a args
	arg.MustParse(&a)

	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, a, loadEnv(), os.Stdout)
	stop()

	os.Exit(code)
}

// run wires the API client and workflow together and returns the exit code.
func run(ctx context.Context, a args, e env, out io.Writer) int {
	logger := newLogger(out, a.Debug)

	api := spotify.NewAPI(spotify.Config{
		Token:   e.Token,
		BaseURL: e.BaseURL,
		Logger:  logger,
	})

	if a.Playlists {
		playlists, err := api.ListPlaylists(ctx)
		if err != nil {
			logger.Error("failed to list playlists", "err", err)
			return exitFailure
		}
		printPlaylistsTable(out, playlists)
		return exitOK
	}

	wf := &shuffle.Workflow{
		Client: api,
		Logger: logger,
		Rand:   shuffle.NewRand(a.Seed),
		Name:   a.playlistName(),
		Target: a.Playlist,
		DryRun: a.DryRun,
	}

	res, err := wf.Run(ctx)
	if errors.Is(err, shuffle.ErrInvalidToken) {
		// Already reported by the workflow
		return exitFailure
	}
	if err != nil {
		logger.Error("shuffle failed", "state", wf.State(), "err", err)
		return exitFailure
	}

	printSummary(out, res, a.DryRun)
	return exitOK
}

// printSummary prints the closing line of a successful run.
func printSummary(w io.Writer, res *shuffle.Result, dryRun bool) {
	green := color.New(color.FgGreen, color.Bold)

	fmt.Fprintln(w)
	if dryRun {
		green.Fprintf(w, "Dry run: %s tracks collected and shuffled\n", humanize.Comma(int64(res.Collected)))
		return
	}
	green.Fprintf(w, "Shuffled %s tracks into playlist %s\n", humanize.Comma(int64(res.Collected)), res.PlaylistID)
}
