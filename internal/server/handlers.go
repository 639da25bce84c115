package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ironsheep/puzzle-tools-mcp/internal/imagestore"
	"github.com/ironsheep/puzzle-tools-mcp/internal/pipeline"
	"github.com/ironsheep/puzzle-tools-mcp/internal/puzzle"
	"github.com/ironsheep/puzzle-tools-mcp/internal/report"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "puzzle_solve").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "err", err)
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "puzzle_solve":
		return s.handlePuzzleSolve(ctx, args)
	case "puzzle_shuffle":
		return s.handlePuzzleShuffle(args)
	case "puzzle_tile_scores":
		return s.handlePuzzleTileScores(ctx, args)
	case "puzzle_tile_image":
		return s.handlePuzzleTileImage(args)
	case "puzzle_link_graph":
		return s.handlePuzzleLinkGraph(ctx, args)
	case "puzzle_grid_overlay":
		return s.handlePuzzleGridOverlay(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response. An empty data is omitted.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{Code: code, Message: message}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{JSONRPC: "2.0", ID: id, Error: e}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return fmt.Errorf("missing arguments")
	}
	return json.Unmarshal(args, v)
}

// gridArgs is embedded by every puzzle tool.
type gridArgs struct {
	Path   string `json:"path"`
	Across int    `json:"across"`
	Down   int    `json:"down"`
}

// job fills unset grid dimensions from the server config.
func (s *Server) job(a gridArgs) (pipeline.Job, error) {
	if a.Path == "" {
		return pipeline.Job{}, fmt.Errorf("path is required")
	}
	layout := s.cfg.Layout
	if a.Across != 0 {
		layout.Across = a.Across
	}
	if a.Down != 0 {
		layout.Down = a.Down
	}
	if err := layout.Validate(); err != nil {
		return pipeline.Job{}, err
	}
	return pipeline.Job{Input: a.Path, Layout: layout}, nil
}

// === Image Information ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return imagestore.LoadImageInfo(s.runner.Cache(), a.Path)
}

// === Solving ===

type puzzleSolveArgs struct {
	gridArgs
	Output       string `json:"output"`
	Save         *bool  `json:"save"`
	MutualOnly   bool   `json:"mutual_only"`
	IncludeImage bool   `json:"include_image"`
}

type puzzleSolveResult struct {
	*report.Report
	TileSize    imagestore.TileSize `json:"tile_size"`
	ImageBase64 string              `json:"image_base64,omitempty"`
	MimeType    string              `json:"mime_type,omitempty"`
}

func (s *Server) handlePuzzleSolve(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a puzzleSolveArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	job, err := s.job(a.gridArgs)
	if err != nil {
		return nil, err
	}
	job.Output = a.Output
	job.MutualOnly = a.MutualOnly

	var solved *pipeline.Solved
	if a.Save == nil || *a.Save {
		solved, err = s.runner.SolveAndSave(ctx, job)
	} else {
		solved, err = s.runner.Solve(ctx, job)
	}
	if err != nil {
		return nil, err
	}

	result := &puzzleSolveResult{Report: solved.Report, TileSize: solved.TileSize}
	if a.IncludeImage {
		encoded, err := imagestore.EncodePNGBase64(solved.Image)
		if err != nil {
			return nil, err
		}
		result.ImageBase64 = encoded
		result.MimeType = "image/png"
	}
	return result, nil
}

type puzzleShuffleArgs struct {
	gridArgs
	Output    string  `json:"output"`
	Seed      *uint64 `json:"seed"`
	NoiseTile *int    `json:"noise_tile"`
}

type puzzleShuffleResult struct {
	Output      string        `json:"output"`
	Layout      puzzle.Layout `json:"layout"`
	Seed        uint64        `json:"seed"`
	Permutation []int         `json:"permutation"`
	NoiseTile   *int          `json:"noise_tile,omitempty"`
}

func (s *Server) handlePuzzleShuffle(args json.RawMessage) (interface{}, error) {
	var a puzzleShuffleArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	job, err := s.job(a.gridArgs)
	if err != nil {
		return nil, err
	}
	job.Output = a.Output

	sj := pipeline.ShuffleJob{Job: job, Seed: 1, NoiseSlot: -1}
	if a.Seed != nil {
		sj.Seed = *a.Seed
	}
	if a.NoiseTile != nil {
		sj.NoiseSlot = *a.NoiseTile
	}

	perm, err := s.runner.Shuffle(sj)
	if err != nil {
		return nil, err
	}
	return &puzzleShuffleResult{
		Output:      job.Output,
		Layout:      job.Layout,
		Seed:        sj.Seed,
		Permutation: perm,
		NoiseTile:   a.NoiseTile,
	}, nil
}

// === Inspection ===

type puzzleTileScoresArgs struct {
	gridArgs
	Tile  *int `json:"tile"`
	Limit int  `json:"limit"`
}

func (s *Server) handlePuzzleTileScores(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a puzzleTileScoresArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Tile == nil {
		return nil, fmt.Errorf("tile is required")
	}
	if a.Limit == 0 {
		a.Limit = 5
	}
	job, err := s.job(a.gridArgs)
	if err != nil {
		return nil, err
	}

	solved, err := s.runner.Solve(ctx, job)
	if err != nil {
		return nil, err
	}
	return report.DescribeTile(solved.Tiles, *a.Tile, a.Limit)
}

type puzzleTileImageArgs struct {
	gridArgs
	Tile  *int    `json:"tile"`
	Scale float64 `json:"scale"`
}

func (s *Server) handlePuzzleTileImage(args json.RawMessage) (interface{}, error) {
	var a puzzleTileImageArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Tile == nil {
		return nil, fmt.Errorf("tile is required")
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	job, err := s.job(a.gridArgs)
	if err != nil {
		return nil, err
	}

	tiles, _, _, err := s.runner.Slice(job)
	if err != nil {
		return nil, err
	}
	return imagestore.CropTile(tiles, *a.Tile, a.Scale)
}

type puzzleLinkGraphArgs struct {
	gridArgs
	SVG bool `json:"svg"`
}

type puzzleLinkGraphResult struct {
	DOT       string `json:"dot"`
	SVG       string `json:"svg,omitempty"`
	Links     int    `json:"links"`
	Fragments int    `json:"fragments"`
}

func (s *Server) handlePuzzleLinkGraph(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a puzzleLinkGraphArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	job, err := s.job(a.gridArgs)
	if err != nil {
		return nil, err
	}

	dot, solved, err := s.runner.Graph(ctx, job)
	if err != nil {
		return nil, err
	}
	result := &puzzleLinkGraphResult{
		DOT:       dot,
		Links:     solved.Report.Links,
		Fragments: solved.Report.Fragments,
	}
	if a.SVG {
		svg, err := report.RenderSVG(ctx, dot)
		if err != nil {
			return nil, err
		}
		result.SVG = string(svg)
	}
	return result, nil
}

type puzzleGridOverlayArgs struct {
	gridArgs
	ShowIDs   *bool  `json:"show_ids"`
	GridColor string `json:"grid_color"`
}

func (s *Server) handlePuzzleGridOverlay(args json.RawMessage) (interface{}, error) {
	var a puzzleGridOverlayArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.GridColor == "" {
		a.GridColor = "#FF0000"
	}
	job, err := s.job(a.gridArgs)
	if err != nil {
		return nil, err
	}

	tiles, size, _, err := s.runner.Slice(job)
	if err != nil {
		return nil, err
	}
	img, err := s.runner.Cache().Load(job.Input)
	if err != nil {
		return nil, err
	}

	var labels []int
	if a.ShowIDs == nil || *a.ShowIDs {
		labels = make([]int, len(tiles))
		for i, t := range tiles {
			labels[i] = t.ID
		}
	}
	return imagestore.GridOverlay(img, job.Layout, size, labels, a.GridColor)
}
