// Package levels ships the game's built-in levels as embedded files, with an
// on-disk override so a level can be edited and replayed without a rebuild.
package levels

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/automoto/icefall/level"
)

//go:embed data/*.txt data/*.tmx
var levelsFS embed.FS

// playOrder fixes the progression; any other embedded files are reachable by
// name but not part of the default rotation.
var playOrder = []string{"frostgate.txt", "thaw.txt", "summit.tmx"}

// Names returns the built-in levels in play order.
func Names() []string {
	out := make([]string, len(playOrder))
	copy(out, playOrder)
	return out
}

// All lists every embedded level file, sorted, for the menu and -level flag.
func All() []string {
	entries, err := levelsFS.ReadDir("data")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// Load reads a level by file name, picking the parser by extension. A file of
// the same name under levels/data/ in the working directory wins over the
// embedded copy.
func Load(name string) (*level.Level, error) {
	switch {
	case strings.HasSuffix(name, ".txt"):
		data, err := read(name)
		if err != nil {
			return nil, fmt.Errorf("levels: %w", err)
		}
		return level.Parse(strings.TrimSuffix(name, ".txt"), bytes.NewReader(data))
	case strings.HasSuffix(name, ".tmx"):
		// go-tiled resolves tileset references itself, so it gets the
		// filesystem rather than the bytes. Disk override applies here too.
		if _, err := os.Stat(diskPath(name)); err == nil {
			return level.LoadTMX(os.DirFS("levels"), path.Join("data", name))
		}
		return level.LoadTMX(levelsFS, path.Join("data", name))
	default:
		return nil, fmt.Errorf("levels: %s: unknown level format", name)
	}
}

// MustLoad is for startup paths where a missing built-in level is a bug.
func MustLoad(name string) *level.Level {
	lvl, err := Load(name)
	if err != nil {
		panic(err)
	}
	return lvl
}

func read(name string) ([]byte, error) {
	if data, err := os.ReadFile(diskPath(name)); err == nil {
		return data, nil
	}
	return levelsFS.ReadFile(path.Join("data", name))
}

func diskPath(name string) string {
	return path.Join("levels", "data", name)
}
