package logging

import (
	"log/slog"
	"strings"
)

// Redacted replaces the value of secret-bearing attributes.
const Redacted = "[redacted]"

var secretKeys = []string{"password", "token", "authorization", "cookie"}

func isSecretKey(key string) bool {
	key = strings.ToLower(key)
	for _, secret := range secretKeys {
		if strings.Contains(key, secret) {
			return true
		}
	}
	return false
}

func redactAttr(attr slog.Attr) slog.Attr {
	if attr.Value.Kind() != slog.KindGroup && isSecretKey(attr.Key) {
		attr.Value = slog.StringValue(Redacted)
	}
	return attr
}
