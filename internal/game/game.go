package game

import (
	"image/color"
	"log"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/movement"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/render/material"
	"chosenoffset.com/raycaster/internal/render/projection"
	"chosenoffset.com/raycaster/internal/world/gridmap"
)

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	Level      *gridmap.Level
	Player     movement.Player
	Controller *movement.Controller
	Caster     *raycast.Caster
	Projector  *projection.Projector
	Materials  *material.Registry
	Input      render.InputPoller
	Background color.RGBA

	// Debug
	FrameCount int
}

// New builds a game on level using cfg. The registry must already hold the
// level's materials; tags without one are drawn with the fallback material.
func New(cfg *config.Config, level *gridmap.Level, materials *material.Registry, input render.InputPoller) *Game {
	for _, tag := range level.Map.Tags() {
		if !materials.Has(tag) {
			log.Printf("Warning: level %q uses tag %d with no material", level.Name, tag)
		}
	}

	return &Game{
		ScreenWidth:  cfg.Screen.Width,
		ScreenHeight: cfg.Screen.Height,
		Level:        level,
		Player:       movement.NewPlayer(level.Spawn, level.Facing, cfg.Camera.PlaneLength),
		Controller:   movement.NewController(level.Map, cfg.Camera.MoveSpeed, cfg.Camera.RotateSpeed),
		Caster:       raycast.NewCaster(level.Map, cfg.Render.Workers),
		Projector:    projection.NewProjector(materials),
		Materials:    materials,
		Input:        input,
		Background:   cfg.BackgroundColor(),
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.FrameCount++

	in := g.Input.PollInput()
	if in.Quit {
		log.Printf("Quit after %d frames", g.FrameCount)
		return render.ErrQuit
	}

	g.Controller.Update(&g.Player, in.Intents)
	return nil
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// View returns the camera for the current pose.
func (g *Game) View() raycast.View {
	return raycast.View{Pos: g.Player.Pos, Dir: g.Player.Dir, Plane: g.Player.Plane}
}

// Close releases the material textures.
func (g *Game) Close() {
	g.Materials.Dispose()
}
