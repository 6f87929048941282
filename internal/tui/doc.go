// Package tui renders the shared board in a terminal and drives it over the
// daemon's IPC client.
//
// The model never owns board state. Every key press turns into one daemon
// call and the returned view replaces the rendered one; a periodic refresh
// keeps playing and pressed markers current.
package tui
