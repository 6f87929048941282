// Package preflight provides readiness checks for the binaries, directories,
// and catalog manifest the soundboard depends on.
//
// These checks run in two contexts:
//   - The daemon calls RunAll at startup and logs each failure as a warning;
//     the board still starts so clips can be fixed without a restart loop.
//   - The CLI "soundboard status" command renders the same results.
package preflight
