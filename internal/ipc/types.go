package ipc

import "soundboard/internal/api"

// ServiceName is the RPC service the daemon registers.
const ServiceName = "Soundboard"

// StatusRequest fetches daemon status.
type StatusRequest struct{}

// StatusResponse mirrors the HTTP status payload.
type StatusResponse = api.DaemonStatus

// DependencyStatus describes availability of an external dependency.
type DependencyStatus = api.DependencyStatus

// StopRequest asks the daemon to shut down.
type StopRequest struct{}

// StopResponse indicates stop result.
type StopResponse struct {
	Stopped bool `json:"stopped"`
}

// BoardRequest fetches the current board without changing it.
type BoardRequest struct{}

// BoardResponse carries the board after an operation.
type BoardResponse struct {
	View api.BoardView `json:"view"`
}

// SetQueryRequest replaces the search text.
type SetQueryRequest struct {
	Query string `json:"query"`
}

// SelectCategoryRequest switches to a category ("all" for everything).
type SelectCategoryRequest struct {
	Category string `json:"category"`
}

// JustAddedRequest switches to newest-first ordering.
type JustAddedRequest struct{}

// ClearRequest resets the filter.
type ClearRequest struct{}

// HomeRequest returns to the initial view.
type HomeRequest struct{}

// PlayRequest triggers one sound.
type PlayRequest struct {
	ID string `json:"id"`
}

// PlayResponse reports the playback outcome.
type PlayResponse = api.PlayResponse

// UploadRequest adds a clip from a file on the daemon host.
type UploadRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Path     string `json:"path"`
}

// UploadResponse describes the new sound.
type UploadResponse = api.UploadResponse

// LoginRequest carries credentials for the simulated account service.
type LoginRequest = api.LoginRequest

// LoginResponse returns the new session.
type LoginResponse = api.LoginResponse

// InstallRequest records the install hint.
type InstallRequest struct{}

// InstallResponse carries the install fallback text and board URL.
type InstallResponse = api.InstallResponse
