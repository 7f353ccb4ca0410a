package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"PaintBoard/internal/config"
	"PaintBoard/internal/logging"
	"PaintBoard/internal/state"
	"PaintBoard/internal/ui"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to a TOML config file")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A freehand drawing board.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logging.SetLevel(logging.ParseLevel(cfg.LogLevel))
	if *debug {
		logging.SetLevel(logging.LevelDebug)
	}

	model, err := state.NewDrawing(cfg.Color, cfg.StrokeWidth)
	if err != nil {
		log.Fatalf("Invalid drawing defaults: %v", err)
	}

	log.Printf("Starting board %dx%d", cfg.Width, cfg.Height)
	if err := ui.RunApp(cfg, model); err != nil {
		log.Fatalf("Failed to start UI: %v", err)
	}
}
