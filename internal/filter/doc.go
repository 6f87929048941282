// Package filter computes which catalog entries are visible and in what order.
//
// ComputeVisible is pure: it derives the display list from the catalog's
// insertion order and a State on every call, so no ordering is ever stored.
// State transitions (category selection, just-added mode, clear, home) are
// value methods returning the next State.
package filter
