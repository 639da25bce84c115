package puzzle

import (
	"cmp"
	"context"
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Candidate is the dissimilarity of placing another tile in direction Dir.
type Candidate struct {
	Score int       `json:"score"`
	Dir   Direction `json:"direction"`
}

// ScoreList holds one Candidate per direction, sorted by ascending score with
// the direction index breaking ties. ScoreList[0] is the best orientation.
type ScoreList [NumDirections]Candidate

// Best returns the lowest-scoring orientation.
func (s *ScoreList) Best() Candidate {
	return s[0]
}

// For returns the score recorded for direction d.
func (s *ScoreList) For(d Direction) int {
	for _, c := range s {
		if c.Dir == d {
			return c.Score
		}
	}
	return 0
}

// rank builds a sorted ScoreList from scores given clockwise from Up.
func rank(up, right, down, left int) ScoreList {
	s := ScoreList{
		{Score: up, Dir: Up},
		{Score: right, Dir: Right},
		{Score: down, Dir: Down},
		{Score: left, Dir: Left},
	}
	slices.SortStableFunc(s[:], func(x, y Candidate) int {
		if c := cmp.Compare(x.Score, y.Score); c != 0 {
			return c
		}
		return cmp.Compare(x.Dir, y.Dir)
	})
	return s
}

// ScorePair scores tiles a and b against each other in all four orientations.
//
// The returned ab is a's view of b: ab's Up entry is the cost of b sitting
// directly above a, Right the cost of b directly right of a, and so on. ba is
// the mirrored view from b. Neither tile is modified.
//
// Returns ErrDimensionMismatch if facing borders differ in length.
func ScorePair(a, b *Tile) (ab, ba ScoreList, err error) {
	vab, err := BorderDifference(a.Border(Down), b.Border(Up))
	if err != nil {
		return ab, ba, err
	}
	vba, err := BorderDifference(b.Border(Down), a.Border(Up))
	if err != nil {
		return ab, ba, err
	}
	hab, err := BorderDifference(a.Border(Right), b.Border(Left))
	if err != nil {
		return ab, ba, err
	}
	hba, err := BorderDifference(b.Border(Right), a.Border(Left))
	if err != nil {
		return ab, ba, err
	}

	ab = rank(vba, hab, vab, hba)
	ba = rank(vab, hba, vba, hab)
	return ab, ba, nil
}

// MatchAll scores every unordered pair of tiles and stores the results in each
// tile's Scores slice. tiles[i].ID must equal i.
//
// Work is split per tile row of the pair triangle and run on up to workers
// goroutines (GOMAXPROCS when workers < 1). Each pair writes only
// tiles[i].Scores[j] and tiles[j].Scores[i], so no locking is needed. MatchAll
// returns once every pair has been scored, or on the first error or context
// cancellation.
func MatchAll(ctx context.Context, tiles []*Tile, workers int) error {
	total := len(tiles)
	for i, t := range tiles {
		if t == nil || t.ID != i {
			return fmt.Errorf("%w: position %d", ErrInvalidTileID, i)
		}
		t.Scores = make([]*ScoreList, total)
	}

	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < total-1; i++ {
		if gctx.Err() != nil {
			break
		}
		a := tiles[i]
		g.Go(func() error {
			for _, b := range tiles[a.ID+1:] {
				if err := gctx.Err(); err != nil {
					return err
				}
				ab, ba, err := ScorePair(a, b)
				if err != nil {
					return fmt.Errorf("failed to score tiles %d and %d: %w", a.ID, b.ID, err)
				}
				a.Scores[b.ID] = &ab
				b.Scores[a.ID] = &ba
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
