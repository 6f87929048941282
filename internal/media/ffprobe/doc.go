// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Inspect executes ffprobe and returns the parsed Result. Prober binds a
// binary and timeout and is what the playback registry and upload spool use
// to learn clip durations and confirm uploads carry an audio stream.
package ffprobe
