package main

import (
	"fmt"
	"os"

	"github.com/ironsheep/seam-carver-mcp/internal/config"
	"github.com/ironsheep/seam-carver-mcp/internal/logger"
	"github.com/ironsheep/seam-carver-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("seam-carver-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("seam-carver-mcp - MCP server for content-aware image resizing")
			fmt.Println()
			fmt.Println("Usage: seam-carver-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println("  --config <file>  Load defaults from an HCL config file")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug    Log level (debug, info, warn, error; default info)\n", logger.LevelEnv)
			fmt.Printf("  %s=<file>      Config file, if --config is not given\n", config.PathEnv)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	configPath := os.Getenv(config.PathEnv)
	if len(os.Args) > 2 && os.Args[1] == "--config" {
		configPath = os.Args[2]
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seam-carver-mcp: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr; stdout is for MCP protocol
	log := logger.FromEnv(cfg.LogLevel)
	log.Info("main", "starting", map[string]interface{}{
		"version":    Version,
		"build_time": BuildTime,
		"git_commit": GitCommit,
		"config":     configPath,
	})

	srv := server.New(server.WithLogger(log), server.WithConfig(cfg))
	if err := srv.Run(); err != nil {
		log.Error("main", "server error", err, nil)
		os.Exit(1)
	}
}
