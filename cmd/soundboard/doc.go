// Package main hosts the soundboard CLI entrypoint and command graph.
//
// The Cobra command tree translates terminal invocations into IPC calls
// against the daemon: board filtering, playback, uploads, the simulated
// account flow, and daemon lifecycle. The interactive terminal board and
// configuration scaffolding also live here.
//
// Keep this package lean. Board behavior belongs in internal packages; the
// commands only parse flags, call the daemon, and render the result.
package main
