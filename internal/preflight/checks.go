package preflight

import (
	"fmt"
	"net"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"soundboard/internal/catalog"
	"soundboard/internal/config"
	"soundboard/internal/deps"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckReadable verifies that the directory exists and can be listed.
// The clip library may be a read-only mount.
func CheckReadable(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not readable: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
}

// CheckCatalog loads the manifest and reports how many sounds it declares.
// A missing manifest passes with an empty-board note.
func CheckCatalog(cfg *config.Config) Result {
	const name = "Catalog"
	clips, exists, err := catalog.LoadManifest(cfg.Paths.CatalogPath, cfg.Paths.ClipsDir)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	if !exists {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (missing, board starts empty)", cfg.Paths.CatalogPath)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d sounds)", cfg.Paths.CatalogPath, len(clips))}
}

// CheckAPIBind verifies the HTTP bind address parses. An empty bind disables HTTP.
func CheckAPIBind(bind string) Result {
	const name = "HTTP bind"
	bind = strings.TrimSpace(bind)
	if bind == "" {
		return Result{Name: name, Passed: true, Detail: "Disabled"}
	}
	if _, _, err := net.SplitHostPort(bind); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", bind, err)}
	}
	return Result{Name: name, Passed: true, Detail: bind}
}

// CheckSystemDeps evaluates the external binaries for the given config.
// Both the daemon and the CLI status command use this to avoid duplicating
// the requirements list.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	player, _ := cfg.PlayerCommand()
	requirements := []deps.Requirement{
		{
			Name:        "Player",
			Command:     player,
			Description: "Required for clip playback",
		},
		{
			Name:        "FFprobe",
			Command:     deps.ResolveCompanion(cfg.Playback.FFprobeBinary, player),
			Description: "Measures clip durations; the fallback window is used without it",
			Optional:    true,
		},
	}
	return deps.CheckBinaries(requirements)
}
