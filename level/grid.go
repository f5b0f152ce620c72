package level

import (
	"math"
	"time"
)

// Cell is an integer grid coordinate.
type Cell struct {
	Row, Col int
}

// Grid is a dense tile grid plus the decay timers armed against it. Dimensions
// are fixed at construction; all reads are bounds-checked and total, so probing
// outside the level is safe and reads as Empty.
type Grid struct {
	rows, cols int
	tileSize   float64
	tiles      []Kind
	decays     map[Cell]time.Duration
}

// NewGrid returns a rows x cols grid of Empty tiles.
func NewGrid(rows, cols int, tileSize float64) *Grid {
	return &Grid{
		rows:     rows,
		cols:     cols,
		tileSize: tileSize,
		tiles:    make([]Kind, rows*cols),
		decays:   make(map[Cell]time.Duration),
	}
}

func (g *Grid) Rows() int          { return g.rows }
func (g *Grid) Cols() int          { return g.cols }
func (g *Grid) TileSize() float64  { return g.tileSize }
func (g *Grid) PixelWidth() float64  { return float64(g.cols) * g.tileSize }
func (g *Grid) PixelHeight() float64 { return float64(g.rows) * g.tileSize }

// TileAt returns the kind at (row, col), or Empty outside the grid.
func (g *Grid) TileAt(row, col int) Kind {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Empty
	}
	return g.tiles[row*g.cols+col]
}

// SetTile writes a kind at (row, col). Writes outside the grid are dropped.
func (g *Grid) SetTile(row, col int, k Kind) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	g.tiles[row*g.cols+col] = k
}

// CellAtPosition maps a pixel position to its grid cell, flooring so negative
// coordinates land in negative cells rather than cell zero.
func (g *Grid) CellAtPosition(x, y float64) Cell {
	return Cell{
		Row: int(math.Floor(y / g.tileSize)),
		Col: int(math.Floor(x / g.tileSize)),
	}
}

// TileAtPosition returns the kind under a pixel position.
func (g *Grid) TileAtPosition(x, y float64) Kind {
	c := g.CellAtPosition(x, y)
	return g.TileAt(c.Row, c.Col)
}
