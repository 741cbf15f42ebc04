package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema for the image path argument every tool takes.
var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

// directionProperty is the schema for the seam direction argument.
var directionProperty = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"vertical", "horizontal"},
	"description": "vertical seams run top to bottom and narrow the image; horizontal seams run left to right and shorten it. Default vertical unless the server config says otherwise",
	"default":     "vertical",
}

// blurProperty is the schema for the optional pre-blur radius.
var blurProperty = map[string]interface{}{
	"type":        "number",
	"description": "Optional Gaussian blur radius applied before computing energy, to make seams ignore fine texture. Pixels are removed from the unblurred image. Default 0 (off) unless the server config sets one",
	"default":     0,
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, and how many vertical and horizontal seams can be removed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_crop",
			Description: "Crop a rectangular region from an image and return it as base64-encoded PNG. Useful for inspecting what a seam passes through.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},

		// Energy
		{
			Name:        "seam_energy",
			Description: "Get the seam-carving energy of one pixel. Border pixels are 1000; interior pixels are the dual-gradient magnitude of their four neighbours.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "seam_energy_map",
			Description: "Render the energy of every pixel as a grayscale PNG. Bright areas are preserved by carving; dark areas are removed first. Border pixels are drawn white.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty,
					"blur_radius": blurProperty,
				},
				"required": []string{"path"},
			},
		},

		// Seams
		{
			Name:        "seam_find",
			Description: "Find the lowest-energy seam. Returns one index per row (vertical) or per column (horizontal) and the seam's total energy.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty,
					"direction":   directionProperty,
					"blur_radius": blurProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "seam_overlay",
			Description: "Draw the next N seams that carving would remove on top of the original image, returned as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty,
					"direction": directionProperty,
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of successive seams to draw. Default 1",
						"default":     1,
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Seam color as #RRGGBB or #RRGGBBAA. Default #FF0000",
						"default":     "#FF0000",
					},
					"blur_radius": blurProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "seam_carve",
			Description: "Shrink an image by removing low-energy seams. Either remove `count` seams in one direction, or give target_width and/or target_height. Returns the carved image as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty,
					"direction": directionProperty,
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of seams to remove in `direction`. Ignored when a target size is given. Default 1",
						"default":     1,
					},
					"target_width": map[string]interface{}{
						"type":        "integer",
						"description": "Desired width in pixels; must not exceed the current width",
					},
					"target_height": map[string]interface{}{
						"type":        "integer",
						"description": "Desired height in pixels; must not exceed the current height",
					},
					"blur_radius": blurProperty,
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file to write the carved image to. Format follows the extension (.png, .jpg, .gif, .bmp, .tif)",
					},
					"include_comparison": map[string]interface{}{
						"type":        "boolean",
						"description": "Also return the original scaled to the same size without seam carving, for comparison",
						"default":     false,
					},
				},
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
