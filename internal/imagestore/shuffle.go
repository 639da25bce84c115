package imagestore

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/anthonynsimon/bild/noise"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/puzzle-tools-mcp/internal/puzzle"
)

// Shuffle cuts buf into layout tiles and recomposes them in a random order
// drawn from seed. The returned permutation maps each output slot to the
// original slot whose tile now sits there.
func Shuffle(buf *Buffer, layout puzzle.Layout, size TileSize, seed uint64) (*Buffer, []int, error) {
	tiles, err := SliceIntoTiles(buf, layout, size)
	if err != nil {
		return nil, nil, err
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x5deece66d))
	perm := rng.Perm(len(tiles))

	placement := make([]*puzzle.Tile, len(tiles))
	for s, orig := range perm {
		placement[s] = tiles[orig]
	}

	out, err := ComposeFromTiles(placement, layout, color.Black)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compose shuffled image: %w", err)
	}
	return out, perm, nil
}

// AddNoise overwrites the tile at slot with uniform random noise, producing a
// tile whose borders match nothing.
func AddNoise(buf *Buffer, layout puzzle.Layout, size TileSize, slot int) (*Buffer, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if slot < 0 || slot >= layout.Total() {
		return nil, fmt.Errorf("slot %d outside %s grid", slot, layout)
	}

	row, col := layout.Position(slot)
	patch := noise.Generate(size.Cols, size.Rows, &noise.Options{NoiseFn: noise.Uniform})
	out := imaging.Paste(buf.Image(), patch, image.Pt(col*size.Cols, row*size.Rows))
	return FromImage(out), nil
}
