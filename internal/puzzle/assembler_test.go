package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linkedTiles(t *testing.T, n int) []*Tile {
	t.Helper()
	tiles := make([]*Tile, n)
	for i := range tiles {
		tiles[i] = solidTile(t, i, 2, 2, red)
	}
	return tiles
}

func TestFindCorner(t *testing.T) {
	tiles := linkedTiles(t, 3)
	tiles[0].Neighbors[Left] = 2
	tiles[1].Neighbors[Up] = 2
	// tiles[2] has neither: the unique corner.

	corner, ok := FindCorner(tiles)
	assert.True(t, ok)
	assert.Equal(t, 2, corner.ID)
}

func TestFindCorner_Fallback(t *testing.T) {
	t.Run("several candidates", func(t *testing.T) {
		tiles := linkedTiles(t, 3)
		tiles[0].Neighbors[Up] = 1

		corner, ok := FindCorner(tiles)
		assert.False(t, ok)
		assert.Equal(t, 0, corner.ID)
	})

	t.Run("no candidate", func(t *testing.T) {
		tiles := linkedTiles(t, 2)
		tiles[0].Neighbors[Up] = 1
		tiles[1].Neighbors[Left] = 0

		corner, ok := FindCorner(tiles)
		assert.False(t, ok)
		assert.Equal(t, 0, corner.ID)
	})

	t.Run("empty", func(t *testing.T) {
		corner, ok := FindCorner(nil)
		assert.False(t, ok)
		assert.Nil(t, corner)
	})
}

func TestAssemble_FollowsLinks(t *testing.T) {
	// Intended 3x2 grid (ids): 4 0 2 / 1 5 3
	tiles := linkedTiles(t, 6)
	tiles[4].Neighbors[Right] = 0
	tiles[4].Neighbors[Down] = 1
	tiles[0].Neighbors[Left] = 4
	tiles[0].Neighbors[Right] = 2
	tiles[0].Neighbors[Down] = 5
	tiles[2].Neighbors[Left] = 0
	tiles[2].Neighbors[Down] = 3
	tiles[1].Neighbors[Up] = 4
	tiles[1].Neighbors[Right] = 5
	tiles[5].Neighbors[Up] = 0
	tiles[5].Neighbors[Left] = 1
	tiles[5].Neighbors[Right] = 3
	tiles[3].Neighbors[Up] = 2
	tiles[3].Neighbors[Left] = 5

	blank, err := NewBlankTile(2, 2, 3)
	require.NoError(t, err)

	placement := Assemble(Layout{Across: 3, Down: 2}, tiles, blank)
	assert.Equal(t, []int{4, 0, 2, 1, 5, 3}, placementIDs(placement))
}

func TestAssemble_EdgesStopPropagation(t *testing.T) {
	// A right link from the last column and a down link from the last row
	// must not wrap into other slots.
	tiles := linkedTiles(t, 4)
	tiles[0].Neighbors[Right] = 1
	tiles[1].Neighbors[Right] = 2
	tiles[1].Neighbors[Down] = 3
	tiles[3].Neighbors[Down] = 2
	tiles[1].Neighbors[Up] = 9 // keeps tile 1 out of the corner race

	placement := Assemble(Layout{Across: 2, Down: 2}, tiles, nil)

	assert.Equal(t, []int{0, 1, BlankID, 3}, placementIDs(placement))
}

func TestAssemble_LastWriteWins(t *testing.T) {
	// Slot 3 is reached from slot 1 (down) and then from slot 2 (right).
	tiles := linkedTiles(t, 5)
	tiles[0].Neighbors[Right] = 1
	tiles[0].Neighbors[Down] = 2
	tiles[1].Neighbors[Down] = 3
	tiles[2].Neighbors[Right] = 4
	tiles[1].Neighbors[Left] = 0
	tiles[2].Neighbors[Up] = 0
	tiles[3].Neighbors[Up] = 1
	tiles[4].Neighbors[Left] = 2

	placement := Assemble(Layout{Across: 2, Down: 2}, tiles, nil)

	assert.Equal(t, []int{0, 1, 2, 4}, placementIDs(placement))
}

func TestAssemble_NeverNil(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		tiles  []*Tile
	}{
		{"disconnected", Layout{Across: 3, Down: 3}, linkedTiles(t, 9)},
		{"no tiles", Layout{Across: 2, Down: 2}, nil},
		{"dangling ids", Layout{Across: 2, Down: 1}, func() []*Tile {
			ts := linkedTiles(t, 2)
			ts[0].Neighbors[Right] = 42
			return ts
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placement := Assemble(tt.layout, tt.tiles, nil)
			require.Len(t, placement, tt.layout.Total())
			for s, tile := range placement {
				assert.NotNil(t, tile, "slot %d", s)
			}
		})
	}
}

func TestAssemble_Cycle(t *testing.T) {
	// 0 -> 1 -> 0 to the right: every slot in the row alternates.
	tiles := linkedTiles(t, 2)
	tiles[0].Neighbors[Right] = 1
	tiles[1].Neighbors[Right] = 0
	tiles[1].Neighbors[Left] = 0

	placement := Assemble(Layout{Across: 4, Down: 1}, tiles, nil)

	assert.Equal(t, []int{0, 1, 0, 1}, placementIDs(placement))
}
