package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/game"
	ebitenrender "chosenoffset.com/raycaster/internal/render/ebiten"
	"chosenoffset.com/raycaster/internal/world/gridmap"
)

func main() {
	flags := config.BindFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if flags.List {
		if err := gridmap.PrintLevels(os.Stdout, cfg.Level.DataDir); err != nil {
			log.Fatalf("Failed to scan data directory: %v", err)
		}
		return
	}

	// Initialize the render backend (ebiten)
	inputMgr := ebitenrender.NewInputManager(cfg.Camera.KeyTurnRate, cfg.Camera.MouseSensitivity)
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	g, err := game.Setup(cfg, game.Options{LevelPath: cfg.Level.Path, Flat: flags.Flat}, loader, inputMgr)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer g.Close()

	// Set up the window
	engine.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	engine.SetWindowTitle(fmt.Sprintf("%s [%s] - WASD to move, mouse to look", cfg.Screen.Title, g.Level.Name))
	engine.SetWindowResizable(cfg.Screen.Resizable)
	engine.SetCursorCaptured(cfg.Screen.CaptureCursor)

	log.Printf("Starting raycaster (%dx%d, %d workers)...", cfg.Screen.Width, cfg.Screen.Height, cfg.Render.Workers)
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

