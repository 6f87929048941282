// Package logging assembles structured slog loggers and formatting helpers used
// across the soundboard daemon and CLI.
//
// It owns the console and JSON handlers, fans records out to every configured
// destination, and exposes context-aware helpers so playback and upload code
// can tag log lines with sound IDs, client surfaces, and correlation IDs. A
// no-op logger is provided for tests and wiring code that cannot fail.
package logging
