// Package playback tracks which sounds are audibly playing and drives the
// host's audio player.
//
// Tracker.Play resolves an id through the Registry, applies the short
// "pressed" pulse, starts the clip via a Player, and keeps the sound marked
// as playing for min(duration, max window), or the fallback window when the
// duration is unknown. Re-triggering an id replaces its pending auto-clear so
// only the newest trigger's window applies. Timers come from an injectable
// Clock so tests control time.
package playback
