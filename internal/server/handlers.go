package server

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"time"

	"github.com/ironsheep/seam-carver-mcp/internal/carver"
	"github.com/ironsheep/seam-carver-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "seam_find", "seam_carve").
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
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.log.Error("tools", "tool execution failed", err, map[string]interface{}{"tool": params.Name})
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	s.log.Debug("tools", "tool executed", map[string]interface{}{
		"tool":        params.Name,
		"duration_ms": time.Since(start).Milliseconds(),
	})

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
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_crop":
		return s.handleImageCrop(args)

	// Energy
	case "seam_energy":
		return s.handleSeamEnergy(args)
	case "seam_energy_map":
		return s.handleSeamEnergyMap(args)

	// Seams
	case "seam_find":
		return s.handleSeamFind(args)
	case "seam_overlay":
		return s.handleSeamOverlay(ctx, args)
	case "seam_carve":
		return s.handleSeamCarve(ctx, args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// loadCarver loads path through the cache and builds a Carver for it. The
// returned guide chooses seams: it is c itself when blurRadius is 0, or a
// Carver over a blurred copy otherwise.
func (s *Server) loadCarver(path string, blurRadius float64) (image.Image, *carver.Carver, *carver.Carver, error) {
	if blurRadius < 0 {
		return nil, nil, nil, fmt.Errorf("blur_radius must not be negative: %g", blurRadius)
	}

	img, err := s.cache.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}

	c, err := carver.New(img)
	if err != nil {
		return nil, nil, nil, err
	}
	if blurRadius == 0 {
		return img, c, c, nil
	}

	guide, err := carver.New(imaging.Smooth(img, blurRadius))
	if err != nil {
		return nil, nil, nil, err
	}
	return img, c, guide, nil
}

func (s *Server) direction(arg string) (carver.Direction, error) {
	if arg == "" {
		return s.cfg.Direction, nil
	}
	return carver.ParseDirection(arg)
}

func (s *Server) blurRadius(arg *float64) float64 {
	if arg == nil {
		return s.cfg.BlurRadius
	}
	return *arg
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type pointArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a pointArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageCropArgs struct {
	Path  string  `json:"path"`
	X1    int     `json:"x1"`
	Y1    int     `json:"y1"`
	X2    int     `json:"x2"`
	Y2    int     `json:"y2"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Crop(img, a.X1, a.Y1, a.X2, a.Y2, a.Scale)
}

// === Energy Handlers ===

// EnergyResult is the energy of a single pixel.
type EnergyResult struct {
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Energy float64 `json:"energy"`
	Border bool    `json:"border"`
}

func (s *Server) handleSeamEnergy(args json.RawMessage) (interface{}, error) {
	var a pointArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	_, c, _, err := s.loadCarver(a.Path, 0)
	if err != nil {
		return nil, err
	}
	e, err := c.Energy(a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return &EnergyResult{
		X:      a.X,
		Y:      a.Y,
		Energy: e,
		Border: a.X == 0 || a.Y == 0 || a.X == c.Width()-1 || a.Y == c.Height()-1,
	}, nil
}

type seamEnergyMapArgs struct {
	Path       string   `json:"path"`
	BlurRadius *float64 `json:"blur_radius"`
}

func (s *Server) handleSeamEnergyMap(args json.RawMessage) (interface{}, error) {
	var a seamEnergyMapArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	_, _, guide, err := s.loadCarver(a.Path, s.blurRadius(a.BlurRadius))
	if err != nil {
		return nil, err
	}
	return imaging.EnergyMap(guide.EnergyGrid(), carver.BorderEnergy)
}

// === Seam Handlers ===

// SeamResult describes one seam.
type SeamResult struct {
	Direction string `json:"direction"`

	// Seam holds one column index per row (vertical) or one row index per
	// column (horizontal).
	Seam []int `json:"seam"`

	// TotalEnergy is the sum of the unblurred energies along the seam.
	TotalEnergy float64 `json:"total_energy"`

	Width  int `json:"width"`
	Height int `json:"height"`
}

type seamFindArgs struct {
	Path       string   `json:"path"`
	Direction  string   `json:"direction"`
	BlurRadius *float64 `json:"blur_radius"`
}

func (s *Server) handleSeamFind(args json.RawMessage) (interface{}, error) {
	var a seamFindArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	dir, err := s.direction(a.Direction)
	if err != nil {
		return nil, err
	}
	_, c, guide, err := s.loadCarver(a.Path, s.blurRadius(a.BlurRadius))
	if err != nil {
		return nil, err
	}

	seam := guide.FindSeam(dir)
	total, err := c.SeamEnergy(dir, seam)
	if err != nil {
		return nil, err
	}
	return &SeamResult{
		Direction:   dir.String(),
		Seam:        seam,
		TotalEnergy: total,
		Width:       c.Width(),
		Height:      c.Height(),
	}, nil
}

type seamOverlayArgs struct {
	Path       string   `json:"path"`
	Direction  string   `json:"direction"`
	Count      int      `json:"count"`
	Color      string   `json:"color"`
	BlurRadius *float64 `json:"blur_radius"`
}

func (s *Server) handleSeamOverlay(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a seamOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 1
	}
	if a.Color == "" {
		a.Color = s.cfg.OverlayColor
	}
	dir, err := s.direction(a.Direction)
	if err != nil {
		return nil, err
	}
	img, _, guide, err := s.loadCarver(a.Path, s.blurRadius(a.BlurRadius))
	if err != nil {
		return nil, err
	}

	paths, err := carver.TraceSeams(ctx, guide, dir, a.Count)
	if err != nil {
		return nil, err
	}
	return imaging.SeamOverlay(img, paths, a.Color)
}

// CarveResult is a seam-carved image.
type CarveResult struct {
	imaging.EncodedImage

	OriginalWidth  int `json:"original_width"`
	OriginalHeight int `json:"original_height"`
	SeamsRemoved   int `json:"seams_removed"`

	// OutputPath is set when the result was also written to disk.
	OutputPath string `json:"output_path,omitempty"`

	// Comparison is the original resampled to the same size without regard
	// to content, when requested.
	Comparison *imaging.EncodedImage `json:"comparison,omitempty"`
}

type seamCarveArgs struct {
	Path              string   `json:"path"`
	Direction         string   `json:"direction"`
	Count             int      `json:"count"`
	TargetWidth       int      `json:"target_width"`
	TargetHeight      int      `json:"target_height"`
	BlurRadius        *float64 `json:"blur_radius"`
	OutputPath        string   `json:"output_path"`
	IncludeComparison bool     `json:"include_comparison"`
}

func (s *Server) handleSeamCarve(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a seamCarveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, c, guide, err := s.loadCarver(a.Path, s.blurRadius(a.BlurRadius))
	if err != nil {
		return nil, err
	}
	origWidth, origHeight := c.Width(), c.Height()

	width, height := origWidth, origHeight
	if a.TargetWidth != 0 || a.TargetHeight != 0 {
		if a.TargetWidth != 0 {
			width = a.TargetWidth
		}
		if a.TargetHeight != 0 {
			height = a.TargetHeight
		}
	} else {
		if a.Count == 0 {
			a.Count = 1
		}
		if a.Count < 0 {
			return nil, fmt.Errorf("count must be positive: %d", a.Count)
		}
		dir, err := s.direction(a.Direction)
		if err != nil {
			return nil, err
		}
		if dir == carver.Horizontal {
			height -= a.Count
		} else {
			width -= a.Count
		}
	}

	s.log.Debug("tools", "carving", map[string]interface{}{
		"path":   a.Path,
		"from":   fmt.Sprintf("%dx%d", origWidth, origHeight),
		"to":     fmt.Sprintf("%dx%d", width, height),
		"blur":   s.blurRadius(a.BlurRadius),
		"output": a.OutputPath,
	})

	removed, err := carver.ShrinkGuided(ctx, c, guide, width, height)
	if err != nil {
		return nil, err
	}

	pic := c.Picture()
	encoded, err := imaging.EncodePNG(pic)
	if err != nil {
		return nil, err
	}
	result := &CarveResult{
		EncodedImage:   *encoded,
		OriginalWidth:  origWidth,
		OriginalHeight: origHeight,
		SeamsRemoved:   removed,
	}

	if a.OutputPath != "" {
		if err := imaging.SaveImage(s.cache, pic, a.OutputPath); err != nil {
			return nil, err
		}
		result.OutputPath = a.OutputPath
	}

	if a.IncludeComparison {
		scaled, err := imaging.Scale(img, width, height)
		if err != nil {
			return nil, err
		}
		if result.Comparison, err = imaging.EncodePNG(scaled); err != nil {
			return nil, err
		}
	}

	return result, nil
}
