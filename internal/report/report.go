package report

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/ironsheep/puzzle-tools-mcp/internal/puzzle"
)

// Report summarises one solve run.
type Report struct {
	RunID  string        `json:"run_id"`
	Image  string        `json:"image,omitempty"`
	Output string        `json:"output,omitempty"`
	Layout puzzle.Layout `json:"layout"`

	Tiles  int `json:"tiles"`
	Placed int `json:"placed"`
	Blanks int `json:"blanks"`

	Corner         int  `json:"corner"`
	CornerDetected bool `json:"corner_detected"`

	// Links counts directed neighbor links after selection.
	Links int `json:"links"`
	// Isolated counts tiles with no link in or out.
	Isolated int `json:"isolated"`
	// Fragments counts connected groups of tiles in the link graph.
	Fragments int `json:"fragments"`
	// Dropped counts links removed by mutual filtering.
	Dropped int `json:"dropped"`

	ScoreMean   float64 `json:"score_mean"`
	ScoreStdDev float64 `json:"score_stddev"`

	// Placement lists the tile id per slot, row-major, puzzle.BlankID for
	// blanks.
	Placement []int `json:"placement"`
}

// Build summarises res. tiles must be the slice that was solved, with
// scores and neighbors still attached.
func Build(res *puzzle.Result, tiles []*puzzle.Tile) *Report {
	r := &Report{
		RunID:          uuid.NewString(),
		Layout:         res.Layout,
		Tiles:          len(tiles),
		Placed:         res.Placed(),
		CornerDetected: res.CornerDetected,
		Dropped:        res.Dropped,
		Corner:         puzzle.BlankID,
		Placement:      PlacementIDs(res.Placement),
	}
	r.Blanks = len(res.Placement) - r.Placed
	if res.Corner != nil {
		r.Corner = res.Corner.ID
	}

	scores := linkScores(tiles)
	r.Links = len(scores)
	if len(scores) > 0 {
		r.ScoreMean = stat.Mean(scores, nil)
	}
	if len(scores) > 1 {
		r.ScoreStdDev = stat.StdDev(scores, nil)
	}

	r.Fragments, r.Isolated = fragments(tiles)
	return r
}

// PlacementIDs maps a placement to tile ids.
func PlacementIDs(placement []*puzzle.Tile) []int {
	ids := make([]int, len(placement))
	for i, t := range placement {
		ids[i] = t.ID
	}
	return ids
}

// linkScores collects the dissimilarity score of every chosen link.
func linkScores(tiles []*puzzle.Tile) []float64 {
	var scores []float64
	for _, t := range tiles {
		for d := puzzle.Direction(0); d < puzzle.NumDirections; d++ {
			n, ok := t.Neighbor(d)
			if !ok || n < 0 || n >= len(t.Scores) || t.Scores[n] == nil {
				continue
			}
			scores = append(scores, float64(t.Scores[n].For(d)))
		}
	}
	return scores
}

// fragments counts connected components of the undirected link graph and
// the tiles that have no link at all.
func fragments(tiles []*puzzle.Tile) (groups, isolated int) {
	adj := make([][]int, len(tiles))
	for _, t := range tiles {
		for _, n := range t.Neighbors {
			if n < 0 || n >= len(tiles) || n == t.ID {
				continue
			}
			adj[t.ID] = append(adj[t.ID], n)
			adj[n] = append(adj[n], t.ID)
		}
	}

	seen := make([]bool, len(tiles))
	for start := range tiles {
		if seen[start] {
			continue
		}
		groups++
		if len(adj[start]) == 0 {
			isolated++
		}
		queue := []int{start}
		seen[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, n := range adj[cur] {
				if !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
	}
	return groups, isolated
}
