package services_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"soundboard/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrExternalTool, "playback", "start", "player exited", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"playback", "start", "player exited"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestValidationCarriesUserMessage(t *testing.T) {
	err := services.Validation("upload", "Please enter a sound name.")
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
	if got := services.UserMessage(err); got != "Please enter a sound name." {
		t.Fatalf("unexpected user message %q", got)
	}
	wrapped := services.Wrap(services.ErrTransient, "board", "add", "", err)
	if got := services.UserMessage(wrapped); got != "Please enter a sound name." {
		t.Fatalf("expected message to survive wrapping, got %q", got)
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{services.Validation("login", "missing"), http.StatusBadRequest},
		{services.Wrap(services.ErrNotFound, "catalog", "get", "unknown id", nil), http.StatusNotFound},
		{services.Wrap(services.ErrConfiguration, "config", "", "bad", nil), http.StatusServiceUnavailable},
		{errors.New("io"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := services.HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
