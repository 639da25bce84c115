package puzzle

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_ShuffledTwoByTwo(t *testing.T) {
	pix, rows, cols := seamImage()
	layout := Layout{Across: 2, Down: 2}

	tests := []struct {
		name  string
		order []int // order[id] = original slot
	}{
		{"identity", []int{0, 1, 2, 3}},
		{"reversed", []int{3, 2, 1, 0}},
		{"rotated", []int{2, 0, 3, 1}},
		{"swapped rows", []int{2, 3, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := cutGrid(t, pix, rows, cols, layout, tt.order)

			res, err := Solve(context.Background(), tiles, layout, Options{Workers: 2})
			require.NoError(t, err)

			// Invert order to get the id expected at each slot.
			want := make([]int, len(tt.order))
			for id, slot := range tt.order {
				want[slot] = id
			}
			assert.Equal(t, want, placementIDs(res.Placement))
			assert.True(t, res.CornerDetected)
			assert.Equal(t, want[0], res.Corner.ID)
			assert.Equal(t, 4, res.Placed())
		})
	}
}

// Four solid colours differ on every border pixel, so no side is within the
// threshold: nothing links, every tile is a corner candidate and tile 0 is
// used as the fallback corner.
func TestSolve_DistinctSolidColours(t *testing.T) {
	colours := []rgb{red, green, blue, yellow}
	tiles := make([]*Tile, len(colours))
	for id, c := range colours {
		tiles[id] = solidTile(t, id, 10, 10, c)
	}

	res, err := Solve(context.Background(), tiles, Layout{Across: 2, Down: 2}, Options{Workers: 2})
	require.NoError(t, err)

	for _, tile := range tiles {
		assert.Equal(t, [NumDirections]int{NoNeighbor, NoNeighbor, NoNeighbor, NoNeighbor}, tile.Neighbors, "tile %d", tile.ID)
	}
	assert.False(t, res.CornerDetected)
	assert.Same(t, tiles[0], res.Corner)
	require.Len(t, res.Placement, 4)
	assert.Same(t, tiles[0], res.Placement[0])
	for _, blank := range res.Placement[1:] {
		assert.True(t, blank.IsBlank())
	}
	assert.Equal(t, 1, res.Placed())
}

func TestSolve_SingleTile(t *testing.T) {
	tile := solidTile(t, 0, 10, 10, red)

	res, err := Solve(context.Background(), []*Tile{tile}, Layout{Across: 1, Down: 1}, Options{})
	require.NoError(t, err)

	require.Len(t, res.Placement, 1)
	assert.Same(t, tile, res.Placement[0])
	assert.True(t, res.CornerDetected)
}

func TestSolve_IsolatedNoisyTile(t *testing.T) {
	pix, rows, cols := seamImage()
	layout := Layout{Across: 2, Down: 2}
	tiles := cutGrid(t, pix, rows, cols, layout, []int{0, 1, 2, 3})
	tiles[3] = noisyTile(t, 3, 10, 10)

	res, err := Solve(context.Background(), tiles, layout, Options{})
	require.NoError(t, err)

	assert.Equal(t, [NumDirections]int{NoNeighbor, NoNeighbor, NoNeighbor, NoNeighbor}, tiles[3].Neighbors)
	for _, tile := range tiles[:3] {
		for _, id := range tile.Neighbors {
			assert.NotEqual(t, 3, id, "tile %d linked to the noisy tile", tile.ID)
		}
	}

	// The noisy tile also qualifies as a corner, so tile 0 is the fallback.
	assert.False(t, res.CornerDetected)
	assert.Equal(t, []int{0, 1, 2, BlankID}, placementIDs(res.Placement))
	assert.True(t, res.Placement[3].IsBlank())
	assert.Equal(t, 3, res.Placed())
}

func TestSolve_MutualOnly(t *testing.T) {
	pix, rows, cols := seamImage()
	layout := Layout{Across: 2, Down: 2}
	tiles := cutGrid(t, pix, rows, cols, layout, []int{1, 3, 0, 2})

	res, err := Solve(context.Background(), tiles, layout, Options{MutualOnly: true})
	require.NoError(t, err)

	assert.Zero(t, res.Dropped, "all seam links are mutual")
	assert.Equal(t, []int{2, 0, 3, 1}, placementIDs(res.Placement))
}

func TestSolve_InvalidLayout(t *testing.T) {
	tiles := []*Tile{solidTile(t, 0, 2, 2, red), solidTile(t, 1, 2, 2, red)}

	_, err := Solve(context.Background(), tiles, Layout{Across: 3, Down: 1}, Options{})
	assert.ErrorIs(t, err, ErrInvalidLayout)

	_, err = Solve(context.Background(), tiles, Layout{Across: 0, Down: 2}, Options{})
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestSolve_LogsPhases(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	pix, rows, cols := seamImage()
	layout := Layout{Across: 2, Down: 2}
	tiles := cutGrid(t, pix, rows, cols, layout, []int{0, 1, 2, 3})

	_, err := Solve(context.Background(), tiles, layout, Options{Logger: logger})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "pairs scored")
	assert.Contains(t, buf.String(), "grid assembled")
}
