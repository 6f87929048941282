// Package ipc exposes the daemon over JSON-RPC Unix sockets and ships the
// matching client used by the CLI and the terminal board.
//
// It owns socket lifecycle management and the request/response DTOs. Board
// payloads reuse the api package shapes so HTTP and IPC clients render the
// same view. Validation failures cross the wire as their user-facing message.
package ipc
