package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validatePlayback(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return errors.New("paths.log_dir must be set")
	}
	if strings.TrimSpace(c.Paths.UploadDir) == "" {
		return errors.New("paths.upload_dir must be set")
	}
	if c.Paths.APIBind != "" {
		if _, _, err := net.SplitHostPort(c.Paths.APIBind); err != nil {
			return fmt.Errorf("paths.api_bind: %w", err)
		}
	}
	return nil
}

func (c *Config) validatePlayback() error {
	hasFile := false
	for _, arg := range c.Playback.PlayerArgs {
		if strings.Contains(arg, "{file}") {
			hasFile = true
			break
		}
	}
	if !hasFile {
		return errors.New("playback.player_args must contain a {file} placeholder")
	}
	if c.Playback.FallbackVisualMillis > c.Playback.MaxVisualMillis {
		return fmt.Errorf("playback.fallback_visual_ms (%d) must not exceed playback.max_visual_ms (%d)",
			c.Playback.FallbackVisualMillis, c.Playback.MaxVisualMillis)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}
