// Package config loads optional server defaults from an HCL file.
//
// A config file looks like:
//
//	log_level = "debug"
//
//	seams {
//	  direction     = "horizontal"
//	  blur_radius   = 1.5
//	  overlay_color = "#00FF0080"
//	}
//
// Every attribute is optional. Tool arguments always override these defaults.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/ironsheep/seam-carver-mcp/internal/carver"
)

// PathEnv names the environment variable holding the config file path.
const PathEnv = "SEAM_MCP_CONFIG"

// Config holds server-wide defaults.
type Config struct {
	// LogLevel is used when SEAM_MCP_LOG_LEVEL is unset.
	LogLevel string

	// Direction is the seam direction used when a tool call omits one.
	Direction carver.Direction

	// BlurRadius is the pre-blur radius used when a tool call omits one.
	BlurRadius float64

	// OverlayColor is the seam_overlay color used when a call omits one.
	OverlayColor string
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		LogLevel:     "info",
		Direction:    carver.Vertical,
		BlurRadius:   0,
		OverlayColor: "#FF0000",
	}
}

type hclConfigFile struct {
	LogLevel string         `hcl:"log_level,optional"`
	Seams    *hclSeamsBlock `hcl:"seams,block"`
}

type hclSeamsBlock struct {
	Direction    string  `hcl:"direction,optional"`
	BlurRadius   float64 `hcl:"blur_radius,optional"`
	OverlayColor string  `hcl:"overlay_color,optional"`
}

// Load reads the config file at path. An empty path yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var parsed hclConfigFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	if parsed.LogLevel != "" {
		cfg.LogLevel = parsed.LogLevel
	}
	if s := parsed.Seams; s != nil {
		if s.Direction != "" {
			dir, err := carver.ParseDirection(s.Direction)
			if err != nil {
				return nil, fmt.Errorf("config file %s: %w", path, err)
			}
			cfg.Direction = dir
		}
		if s.BlurRadius < 0 {
			return nil, fmt.Errorf("config file %s: blur_radius must not be negative: %g", path, s.BlurRadius)
		}
		cfg.BlurRadius = s.BlurRadius
		if s.OverlayColor != "" {
			cfg.OverlayColor = s.OverlayColor
		}
	}

	return cfg, nil
}

// FromEnv loads the file named by SEAM_MCP_CONFIG, or the defaults if it is unset.
func FromEnv() (*Config, error) {
	return Load(os.Getenv(PathEnv))
}
