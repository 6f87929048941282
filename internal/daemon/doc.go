// Package daemon coordinates the long-running soundboard process.
//
// It wires configuration, the clip catalog, the playback tracker, and the
// upload spool into a single board, guards it with a flock-based lock so only
// one instance owns the audio output, and serves the board over HTTP (a JSON
// API plus a server-rendered page). IPC lives in package ipc and calls back
// into the Daemon defined here.
//
// Keep orchestration here: filtering, playback timing, and upload validation
// belong to their own packages.
package daemon
