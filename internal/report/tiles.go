package report

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/ironsheep/puzzle-tools-mcp/internal/imagestore"
	"github.com/ironsheep/puzzle-tools-mcp/internal/puzzle"
)

// PairScores is the ranked score list of one tile against another.
type PairScores struct {
	Other  int                `json:"other"`
	Best   puzzle.Candidate   `json:"best"`
	Ranked []puzzle.Candidate `json:"ranked"`
}

// TileDetail describes one tile after a solve: its chosen neighbors and its
// best-matching partners.
type TileDetail struct {
	ID        int            `json:"id"`
	MeanColor string         `json:"mean_color"`
	Neighbors map[string]int `json:"neighbors"`
	Pairs     []PairScores   `json:"pairs"`
}

// DescribeTile returns tile id's neighbors and up to limit partners ordered by
// their best score, ties by partner id. limit < 1 returns every partner.
func DescribeTile(tiles []*puzzle.Tile, id, limit int) (*TileDetail, error) {
	if id < 0 || id >= len(tiles) {
		return nil, fmt.Errorf("%w: tile %d of %d", puzzle.ErrInvalidTileID, id, len(tiles))
	}
	t := tiles[id]

	detail := &TileDetail{
		ID:        t.ID,
		MeanColor: imagestore.MeanColorHex(t),
		Neighbors: make(map[string]int, puzzle.NumDirections),
	}
	for d := puzzle.Direction(0); d < puzzle.NumDirections; d++ {
		detail.Neighbors[d.String()] = t.Neighbors[d]
	}

	for other, list := range t.Scores {
		if list == nil {
			continue
		}
		detail.Pairs = append(detail.Pairs, PairScores{
			Other:  other,
			Best:   list.Best(),
			Ranked: slices.Clone(list[:]),
		})
	}
	slices.SortFunc(detail.Pairs, func(a, b PairScores) int {
		return cmp.Or(cmp.Compare(a.Best.Score, b.Best.Score), cmp.Compare(a.Other, b.Other))
	})
	if limit > 0 && len(detail.Pairs) > limit {
		detail.Pairs = detail.Pairs[:limit]
	}
	return detail, nil
}
