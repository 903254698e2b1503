package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/peterkuimelis/wixoss/internal/cache"
	"github.com/peterkuimelis/wixoss/internal/config"
	plog "github.com/peterkuimelis/wixoss/internal/log"
	"github.com/peterkuimelis/wixoss/internal/web"
)

func main() {
	configPath := flag.String("config", "", "config file (default $XDG_CONFIG_HOME/wixoss/config.toml)")
	addr := flag.String("addr", "", "HTTP address to listen on (default from config, :8080)")
	cacheDir := flag.String("cache-dir", "", "directory of downloaded card pages")
	verbose := flag.Bool("v", false, "log parse events to stderr")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		config.Exitf("%v", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *cacheDir != "" {
		cfg.CacheDir = *cacheDir
	}
	if err := cfg.Validate(); err != nil {
		config.Exitf("%v", err)
	}

	var events plog.EventLogger = plog.Discard{}
	if *verbose {
		events = plog.NewTextLogger(os.Stderr)
	}
	srv := web.NewServer(cache.NewDir(cfg.CacheDir), events)

	log.Printf("wixoss web API listening on %s (cache %s)", cfg.Addr, cfg.CacheDir)
	if err := srv.ListenAndServe(cfg.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
