package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/ironsheep/puzzle-tools-mcp/internal/imagestore"
	"github.com/ironsheep/puzzle-tools-mcp/internal/puzzle"
)

// ToDOT converts the neighbor links of tiles to Graphviz DOT. Each tile is a
// node filled with its mean colour; each link is an edge labelled with its
// direction and score. Mutual links are drawn once, bold and undirected.
func ToDOT(tiles []*puzzle.Tile) string {
	var buf bytes.Buffer
	buf.WriteString("digraph tiles {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=monospace];\n")
	buf.WriteString("\n")

	for _, t := range tiles {
		fill := imagestore.MeanColorHex(t)
		fmt.Fprintf(&buf, "  t%d [label=\"%d\", fillcolor=%q, fontcolor=%q];\n", t.ID, t.ID, fill, labelColor(fill))
	}

	buf.WriteString("\n")
	for _, t := range tiles {
		for d := puzzle.Direction(0); d < puzzle.NumDirections; d++ {
			n, ok := t.Neighbor(d)
			if !ok || n < 0 || n >= len(tiles) {
				continue
			}
			label := d.String()
			if n < len(t.Scores) && t.Scores[n] != nil {
				label = fmt.Sprintf("%s %d", d, t.Scores[n].For(d))
			}

			back, _ := tiles[n].Neighbor(d.Opposite())
			switch {
			case back == t.ID && n < t.ID:
				// drawn from the lower id
			case back == t.ID:
				fmt.Fprintf(&buf, "  t%d -> t%d [label=%q, dir=none, penwidth=2];\n", t.ID, n, label)
			default:
				fmt.Fprintf(&buf, "  t%d -> t%d [label=%q, style=dashed];\n", t.ID, n, label)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// labelColor picks black or white text for a "#rrggbb" fill.
func labelColor(fill string) string {
	c, err := imagestore.ParseHexColor(fill)
	if err != nil {
		return "black"
	}
	if int(c.R)*299+int(c.G)*587+int(c.B)*114 < 128*1000 {
		return "white"
	}
	return "black"
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("failed to parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render graph: %w", err)
	}
	return buf.Bytes(), nil
}
