package deps

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// ResolveCompanion finds a tool that ships alongside the player binary.
//
// FFmpeg distributions install ffplay and ffprobe side by side, often outside
// PATH. When the configured command is a bare name that PATH cannot resolve,
// the directory of the resolved player is tried before giving up. The
// configured value is returned unchanged when nothing better is found so
// status output still names what was looked for.
func ResolveCompanion(command, player string) string {
	command = strings.TrimSpace(command)
	if command == "" {
		return ""
	}
	if _, err := exec.LookPath(command); err == nil {
		return command
	}
	if strings.ContainsRune(command, os.PathSeparator) {
		return command
	}
	player = strings.TrimSpace(player)
	if player == "" {
		return command
	}
	resolved, err := exec.LookPath(player)
	if err != nil {
		return command
	}
	candidate := filepath.Join(filepath.Dir(resolved), executableName(command))
	if info, statErr := os.Stat(candidate); statErr == nil && isExecutable(info) {
		return candidate
	}
	return command
}

func executableName(base string) string {
	if runtime.GOOS == "windows" && !strings.HasSuffix(base, ".exe") {
		return base + ".exe"
	}
	return base
}

func isExecutable(info os.FileInfo) bool {
	if info == nil {
		return false
	}
	if info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
