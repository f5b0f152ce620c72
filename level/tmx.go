package level

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadTMX parses a Tiled map into a Level. The first tile layer is the kind
// layer; each tileset tile names its kind through a string property "kind"
// (solid, kill, slip, unstable). Tiles without the property block like rock.
// The spawn point comes from the first object in the PlayerSpawn object group.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}
	if len(levelMap.Layers) == 0 {
		return nil, fmt.Errorf("load TMX %s: no tile layers", tmxPath)
	}

	grid := NewGrid(levelMap.Height, levelMap.Width, float64(levelMap.TileWidth))

	layer := levelMap.Layers[0]
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}
			kind := Solid
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				if name := tilesetTile.Properties.GetString("kind"); name != "" {
					kind = KindByName(name)
				}
			}
			grid.SetTile(y, x, kind)
		}
	}

	lvl := &Level{
		Name: strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Grid: grid,
	}

	found := false
	for _, og := range levelMap.ObjectGroups {
		if og.Name != "PlayerSpawn" {
			continue
		}
		for _, o := range og.Objects {
			lvl.SpawnX = o.X
			lvl.SpawnY = o.Y
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("load TMX %s: no PlayerSpawn object", tmxPath)
	}
	return lvl, nil
}
