// Package upload validates uploaded audio and spools it into a per-session
// directory the daemon removes on shutdown.
package upload
