// Package config loads, normalizes, and validates soundboard configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// SOUNDBOARD_API_TOKEN. The Config type centralizes every knob the daemon and
// CLI need: where clips and the catalog manifest live, which player binary
// sounds a clip, and how long playback visuals persist.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
