package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHandlersRedactSecrets(t *testing.T) {
	lvl := new(slog.LevelVar)
	var jsonBuf, prettyBuf bytes.Buffer
	logger := slog.New(newFanoutHandler(
		newJSONHandler(&jsonBuf, lvl, false),
		newPrettyHandler(&prettyBuf, lvl, false),
	))

	logger.Info("login attempt",
		slog.String("email", "dana@example.com"),
		slog.String("password", "hunter2"),
		slog.Group("request", slog.String("api_token", "abc123")),
	)

	for name, out := range map[string]string{"json": jsonBuf.String(), "console": prettyBuf.String()} {
		if strings.Contains(out, "hunter2") || strings.Contains(out, "abc123") {
			t.Fatalf("%s output leaked a secret: %s", name, out)
		}
		if !strings.Contains(out, Redacted) || !strings.Contains(out, "dana@example.com") {
			t.Fatalf("%s output missing expected fields: %s", name, out)
		}
	}
}
