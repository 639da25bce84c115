package puzzle

// DifferenceRateThreshold bounds an accepted neighbor's score as a fraction of
// the border length on that side.
const DifferenceRateThreshold = 0.6

// Acceptable reports whether score is low enough to link a neighbor on side d
// of t.
func (t *Tile) Acceptable(d Direction, score int) bool {
	return float64(score) <= DifferenceRateThreshold*float64(t.borderLength(d))
}

type pick struct {
	id    int
	score int
}

// SelectNeighbors fills t.Neighbors from t.Scores.
//
// Every other tile votes for the single direction of its best orientation.
// Per direction the lowest score wins, the lowest ID on ties, and the winner
// is linked only if Acceptable. Directions nobody votes for stay empty.
// Previous neighbor links are discarded.
func SelectNeighbors(t *Tile) {
	var picks [NumDirections]*pick
	for k, list := range t.Scores {
		if list == nil || k == t.ID {
			continue
		}
		best := list.Best()
		if p := picks[best.Dir]; p == nil || p.score > best.Score {
			picks[best.Dir] = &pick{id: k, score: best.Score}
		}
	}

	t.clearNeighbors()
	for d, p := range picks {
		if p != nil && t.Acceptable(Direction(d), p.score) {
			t.Neighbors[d] = p.id
		}
	}
}

// SelectAll runs SelectNeighbors on every tile. It must be called after
// MatchAll has returned.
func SelectAll(tiles []*Tile) {
	for _, t := range tiles {
		SelectNeighbors(t)
	}
}

// KeepMutual drops every link A->B in direction d unless B links back to A in
// the opposite direction. Decisions are made against the links as they were
// on entry, so the result does not depend on tile order. It returns the number
// of links dropped.
func KeepMutual(tiles []*Tile) int {
	type link struct {
		tile *Tile
		dir  Direction
	}

	var drop []link
	for _, t := range tiles {
		for d := Direction(0); d < NumDirections; d++ {
			id, ok := t.Neighbor(d)
			if !ok {
				continue
			}
			if id < 0 || id >= len(tiles) || tiles[id].Neighbors[d.Opposite()] != t.ID {
				drop = append(drop, link{tile: t, dir: d})
			}
		}
	}

	for _, l := range drop {
		l.tile.Neighbors[l.dir] = NoNeighbor
	}
	return len(drop)
}
