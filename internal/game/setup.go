// Package game wires the map, player, caster and projector into a frame
// loop the render engines can drive.
package game

import (
	"log"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/render/material"
	"chosenoffset.com/raycaster/internal/world/gridmap"
)

// Options select what Setup loads.
type Options struct {
	LevelPath string // Empty for the built-in level
	Flat      bool   // Ignore textures, draw flat colours
}

// Setup loads the level and materials named by cfg and opts and builds a
// game. Failures are *render.FatalInitError.
func Setup(cfg *config.Config, opts Options, loader render.MaterialLoader, input render.InputPoller) (*Game, error) {
	level, err := loadLevel(opts.LevelPath)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded level %q (%dx%d)", level.Name, level.Map.Width(), level.Map.Height())

	specs, err := cfg.MaterialSpecs(opts.Flat)
	if err != nil {
		return nil, &render.FatalInitError{Op: "configure materials", Err: err}
	}

	materials := material.NewRegistry(cfg.Render.SideShade)
	if err := materials.Load(loader, specs); err != nil {
		return nil, err
	}

	return New(cfg, level, materials, input), nil
}

func loadLevel(path string) (*gridmap.Level, error) {
	if path == "" {
		return gridmap.DefaultLevel(), nil
	}
	level, err := gridmap.LoadLevel(path)
	if err != nil {
		return nil, &render.FatalInitError{Op: "load level", Path: path, Err: err}
	}
	return level, nil
}
