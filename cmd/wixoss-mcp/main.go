package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/wixoss/internal/cache"
	"github.com/peterkuimelis/wixoss/internal/config"
	"github.com/peterkuimelis/wixoss/internal/log"
	wixossmcp "github.com/peterkuimelis/wixoss/internal/mcp"
)

func main() {
	configPath := flag.String("config", "", "config file (default $XDG_CONFIG_HOME/wixoss/config.toml)")
	cacheDir := flag.String("cache-dir", "", "directory of downloaded card pages")
	verbose := flag.Bool("v", false, "log parse events to stderr")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		config.Exitf("%v", err)
	}
	if *cacheDir != "" {
		cfg.CacheDir = *cacheDir
	}
	if err := cfg.Validate(); err != nil {
		config.Exitf("%v", err)
	}

	// stdout carries the protocol; events may only go to stderr.
	var logger log.EventLogger = log.Discard{}
	if *verbose {
		logger = log.NewTextLogger(os.Stderr)
	}
	wixossmcp.SetSession(wixossmcp.NewSession(cache.NewDir(cfg.CacheDir), logger))

	s := server.NewMCPServer("wixoss", "1.0.0")
	wixossmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
