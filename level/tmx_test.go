package level

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTMX(t *testing.T) {
	lvl, err := LoadTMX(os.DirFS("testdata"), "cavern.tmx")
	require.NoError(t, err)

	assert.Equal(t, "cavern", lvl.Name)
	assert.Equal(t, 6, lvl.Grid.Rows())
	assert.Equal(t, 8, lvl.Grid.Cols())
	assert.Equal(t, 16.0, lvl.Grid.TileSize())
	assert.Equal(t, 32.0, lvl.SpawnX)
	assert.Equal(t, 32.0, lvl.SpawnY)

	assert.Equal(t, Empty, lvl.Grid.TileAt(0, 0))
	assert.Equal(t, Unstable, lvl.Grid.TileAt(2, 4))
	assert.Equal(t, Unstable, lvl.Grid.TileAt(2, 5))
	assert.Equal(t, Slip, lvl.Grid.TileAt(4, 1))
	assert.Equal(t, Kill, lvl.Grid.TileAt(4, 6))
	for col := 0; col < 8; col++ {
		assert.Equal(t, Solid, lvl.Grid.TileAt(5, col), "floor col %d", col)
	}

	// Tiles without a kind property block like rock.
	assert.Equal(t, Solid, lvl.Grid.TileAt(4, 0))
}

func TestLoadTMXMissingFile(t *testing.T) {
	_, err := LoadTMX(os.DirFS("testdata"), "nope.tmx")
	assert.ErrorContains(t, err, "load TMX nope.tmx")
}
