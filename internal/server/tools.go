package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func layoutProperties(props map[string]interface{}) map[string]interface{} {
	props["path"] = pathProperty()
	props["across"] = map[string]interface{}{
		"type":        "integer",
		"description": "Tiles per row. Default from config (16)",
	}
	props["down"] = map[string]interface{}{
		"type":        "integer",
		"description": "Rows of tiles. Default from config (9)",
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "puzzle_solve",
			Description: "Reassemble an image whose tiles were scrambled on a fixed grid by matching tile borders. Returns a solve report and optionally writes or returns the recomposed image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": layoutProperties(map[string]interface{}{
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Optional output file. Default <image stem>_result.bmp when save is true",
					},
					"save": map[string]interface{}{
						"type":        "boolean",
						"description": "Write the result to disk. Default true",
						"default":     true,
					},
					"mutual_only": map[string]interface{}{
						"type":        "boolean",
						"description": "Keep only neighbor links confirmed from both sides",
						"default":     false,
					},
					"include_image": map[string]interface{}{
						"type":        "boolean",
						"description": "Return the recomposed image as base64 PNG",
						"default":     false,
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "puzzle_shuffle",
			Description: "Cut an image into a tile grid and write the tiles in a random order. Returns the permutation: perm[slot] is the original slot of the tile now at slot.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": layoutProperties(map[string]interface{}{
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Output file for the scrambled image",
					},
					"seed": map[string]interface{}{
						"type":        "integer",
						"description": "Random seed. Default 1",
						"default":     1,
					},
					"noise_tile": map[string]interface{}{
						"type":        "integer",
						"description": "Optional output slot to replace with random noise",
					},
				}),
				"required": []string{"path", "output"},
			},
		},
		{
			Name:        "puzzle_tile_scores",
			Description: "Solve a puzzle and describe one tile: its chosen neighbors, mean colour and best-matching partners with their ranked border scores.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": layoutProperties(map[string]interface{}{
					"tile": map[string]interface{}{
						"type":        "integer",
						"description": "Tile id (row-major slot in the input image)",
					},
					"limit": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum partners to return. Default 5",
						"default":     5,
					},
				}),
				"required": []string{"path", "tile"},
			},
		},
		{
			Name:        "puzzle_tile_image",
			Description: "Cut one tile out of an image and return it as base64-encoded PNG, optionally scaled with nearest-neighbor sampling so border pixels stay exact.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": layoutProperties(map[string]interface{}{
					"tile": map[string]interface{}{
						"type":        "integer",
						"description": "Tile id (row-major slot in the input image)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 4.0 to enlarge). Default 1.0",
						"default":     1.0,
					},
				}),
				"required": []string{"path", "tile"},
			},
		},
		{
			Name:        "puzzle_link_graph",
			Description: "Solve a puzzle and return its neighbor links as a Graphviz DOT graph, optionally rendered to SVG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": layoutProperties(map[string]interface{}{
					"svg": map[string]interface{}{
						"type":        "boolean",
						"description": "Also render the graph as SVG",
						"default":     false,
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "puzzle_grid_overlay",
			Description: "Draw the tile grid over an image with each tile's id in its corner. Returns base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": layoutProperties(map[string]interface{}{
					"show_ids": map[string]interface{}{
						"type":        "boolean",
						"description": "Label each tile with its id. Default true",
						"default":     true,
					},
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Grid line color in hex format. Default #FF0000",
						"default":     "#FF0000",
					},
				}),
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
