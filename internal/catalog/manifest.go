package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"soundboard/internal/services"
)

// Clip pairs a catalog entry with the audio file backing it.
type Clip struct {
	Entry SoundEntry
	Path  string
}

type manifestFile struct {
	Sounds []manifestSound `toml:"sound"`
}

type manifestSound struct {
	ID       string `toml:"id"`
	Label    string `toml:"label"`
	Category string `toml:"category"`
	Added    int    `toml:"added"`
	File     string `toml:"file"`
	Color    string `toml:"color"`
}

// LoadManifest reads a [[sound]] manifest. Relative file paths resolve
// against clipsDir. A missing manifest is not an error: it returns no clips
// and exists=false so callers can warn and continue with an empty board.
func LoadManifest(path, clipsDir string) ([]Clip, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, services.Wrap(services.ErrConfiguration, "catalog", "read manifest", path, err)
	}

	var manifest manifestFile
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, true, services.Wrap(services.ErrConfiguration, "catalog", "parse manifest", path, err)
	}

	clips := make([]Clip, 0, len(manifest.Sounds))
	seen := make(map[string]struct{}, len(manifest.Sounds))
	for idx, sound := range manifest.Sounds {
		id := strings.TrimSpace(sound.ID)
		if id == "" {
			return nil, true, services.Wrap(services.ErrConfiguration, "catalog", "parse manifest",
				fmt.Sprintf("sound #%d has no id", idx+1), nil)
		}
		if _, dup := seen[id]; dup {
			return nil, true, services.Wrap(services.ErrConfiguration, "catalog", "parse manifest",
				fmt.Sprintf("duplicate sound id %q", id), nil)
		}
		seen[id] = struct{}{}

		file := strings.TrimSpace(sound.File)
		if file == "" {
			return nil, true, services.Wrap(services.ErrConfiguration, "catalog", "parse manifest",
				fmt.Sprintf("sound %q has no file", id), nil)
		}
		if !filepath.IsAbs(file) {
			file = filepath.Join(clipsDir, file)
		}

		rank := sound.Added
		if rank == math.MaxInt {
			return nil, true, services.Wrap(services.ErrConfiguration, "catalog", "parse manifest",
				fmt.Sprintf("sound %q: added rank is out of range", id), nil)
		}
		if rank <= 0 {
			rank = idx + 1
		}
		color := strings.ToLower(strings.TrimSpace(sound.Color))
		if !slices.Contains(Palette, color) {
			color = ""
		}
		clips = append(clips, Clip{
			Entry: SoundEntry{
				ID:        id,
				Label:     sound.Label,
				Category:  NormalizeCategory(sound.Category),
				AddedRank: rank,
				Color:     color,
			},
			Path: file,
		})
	}
	return clips, true, nil
}

// FromClips builds a catalog holding the clips' entries in manifest order.
func FromClips(clips []Clip) (*Catalog, error) {
	c := New()
	for _, clip := range clips {
		if err := c.Insert(clip.Entry); err != nil {
			return nil, err
		}
	}
	return c, nil
}
