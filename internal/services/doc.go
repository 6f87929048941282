// Package services defines shared utilities consumed by the board, the daemon
// surfaces, and external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp sound IDs, client surfaces, and correlation
//     identifiers for logging.
//   - Structured error markers plus the Wrap helper so callers can classify
//     failures (validation vs not-found vs tool failure) with errors.Is.
//   - UserError for validation messages that are shown verbatim to whoever
//     triggered the operation.
//
// Use these helpers when wiring new board operations so operational behaviour
// (error handling, observability) stays uniform across CLI, TUI, and HTTP.
package services
