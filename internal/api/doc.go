// Package api defines wire-format types and converters for the IPC and HTTP
// layers. It translates board views into transport-friendly DTOs that the CLI,
// the terminal UI, and browser clients render without importing board types.
//
// # Key Types
//
// BoardView: the visible sounds with playing/pressed flags, the filter bar,
// categories, session, and any live notice.
//
// DaemonStatus: runtime paths, catalog size, and dependency availability.
//
// # Service
//
// BoardService applies filter requests, plays, uploads, and logins against a
// board and returns DTOs, so IPC and HTTP handlers share one code path.
//
// DTOs use camelCase JSON tags.
package api
