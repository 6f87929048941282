// Package board is the soundboard's single controller object.
//
// A Board owns the catalog, the filter state, the playback tracker, and the
// signed-in session. Every operation runs under the board lock and returns a
// freshly derived View, so clients (CLI, terminal UI, HTTP) are pure
// projections that never read state back from what they rendered.
package board
