package services

import "context"

type contextKey string

const (
	soundIDKey   contextKey = "sound_id"
	clientKey    contextKey = "client"
	requestIDKey contextKey = "request_id"
)

// WithSoundID annotates context with the catalog sound identifier.
func WithSoundID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, soundIDKey, id)
}

// SoundIDFromContext extracts the sound identifier if present.
func SoundIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(soundIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithClient annotates context with the surface that issued a request (cli, tui, http).
func WithClient(ctx context.Context, client string) context.Context {
	if client == "" {
		return ctx
	}
	return context.WithValue(ctx, clientKey, client)
}

// ClientFromContext returns the client surface if present.
func ClientFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(clientKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
