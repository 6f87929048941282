// Package catalog holds the ordered list of sound entries shown on the board.
//
// The Catalog is the single writer of SoundEntry values: it assigns ranks from
// a monotonic counter and keeps insertion order, which is the board's natural
// display order. Entries are loaded from a TOML manifest at startup and
// appended at runtime when clips are uploaded.
package catalog
