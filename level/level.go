package level

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TileSize is the tile edge in pixels for text-authored levels. TMX maps carry
// their own (square) tile size.
const TileSize = 16.0

// Level bundles a parsed grid with its name and player spawn point. Spawn is
// the pixel position the body's top-left corner is placed at.
type Level struct {
	Name   string
	Grid   *Grid
	SpawnX float64
	SpawnY float64
}

// Parse reads a text level: one rune per tile, rows top to bottom.
//
//	. or space  empty
//	#           solid rock
//	^           spikes
//	~           sheet ice
//	%           cracked ice
//	P           player spawn (cell stays empty)
//
// Lines may be ragged; short lines pad with empty tiles. Unrecognized runes
// read as empty. The first P wins; a level without one is an error.
func Parse(name string, r io.Reader) (*Level, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("level %s: empty", name)
	}

	cols := 0
	for _, line := range lines {
		if len(line) > cols {
			cols = len(line)
		}
	}

	grid := NewGrid(len(lines), cols, TileSize)
	lvl := &Level{Name: name, Grid: grid, SpawnX: -1, SpawnY: -1}
	spawned := false

	for row, line := range lines {
		for col := 0; col < len(line); col++ {
			switch line[col] {
			case '#':
				grid.SetTile(row, col, Solid)
			case '^':
				grid.SetTile(row, col, Kill)
			case '~':
				grid.SetTile(row, col, Slip)
			case '%':
				grid.SetTile(row, col, Unstable)
			case 'P':
				if !spawned {
					lvl.SpawnX = float64(col) * TileSize
					lvl.SpawnY = float64(row) * TileSize
					spawned = true
				}
			}
		}
	}
	if !spawned {
		return nil, fmt.Errorf("level %s: no spawn point (P)", name)
	}
	return lvl, nil
}
