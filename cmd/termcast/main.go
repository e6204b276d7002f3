package main

import (
	"flag"
	"log"
	"os"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/render/term"
	"chosenoffset.com/raycaster/internal/world/gridmap"
)

func main() {
	flags := config.BindFlags(flag.CommandLine)
	logPath := flag.String("log", "termcast.log", "File to write log output to (the terminal is taken)")
	flag.Parse()

	if flags.List {
		cfg, err := flags.Load()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if err := gridmap.PrintLevels(os.Stdout, cfg.Level.DataDir); err != nil {
			log.Fatalf("Failed to scan data directory: %v", err)
		}
		return
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()

	cfg, err := flags.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.SetOutput(logFile)

	screen, err := term.New(cfg.Camera.KeyTurnRate)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to start: %v", err)
	}

	g, err := game.Setup(cfg, game.Options{LevelPath: cfg.Level.Path, Flat: flags.Flat}, term.Loader{}, screen)
	if err != nil {
		screen.Close()
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to start: %v", err)
	}

	log.Printf("Starting terminal raycaster on level %q", g.Level.Name)
	err = screen.RunGame(g)
	screen.Close()
	g.Close()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
