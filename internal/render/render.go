// Package render defines the boundary between the raycaster and the
// windowing backend. Game logic only talks to these interfaces, so the
// ebiten window and the terminal backend are interchangeable.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"chosenoffset.com/raycaster/internal/core/movement"
)

// ErrQuit is returned from Game.Update when the user asked to quit. Engines
// stop their loop and return nil.
var ErrQuit = errors.New("quit requested")

// Image represents a renderable image surface: the frame being drawn or a
// loaded material texture.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)
	Clear()

	SliceDrawer

	// Resource management
	Dispose()
}

// SliceDrawer draws one-pixel-wide vertical wall strips.
type SliceDrawer interface {
	// DrawVerticalSlice fills rows [yStart, yEnd) of column with m. The
	// material image, if any, is stretched over the whole range. yEnd <=
	// yStart draws nothing.
	DrawVerticalSlice(column, yStart, yEnd int, m Material)
}

// Material is a drawable wall surface.
type Material struct {
	Tag   uint8
	Name  string
	Color color.RGBA // Flat colour, also used where images cannot be shown
	Image Image      // Optional texture
	Shade float64    // Darkening applied to Image, 0 = none, 1 = black
}

// MaterialLoader loads material textures.
type MaterialLoader interface {
	LoadMaterial(tag uint8, path string) (Image, error)
}

// Input is the user input sampled for one frame.
type Input struct {
	Quit bool
	movement.Intents
}

// InputPoller samples input once per frame.
type InputPoller interface {
	PollInput() Input
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the raycaster binds.
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

// Keys lists every bound key.
var Keys = []Key{KeyW, KeyA, KeyS, KeyD, KeyQ, KeyE, KeyUp, KeyDown, KeyLeft, KeyRight, KeyEscape}

// IntentsFromKeys maps held keys to movement intents. WASD and the up/down
// arrows move, Q/E and the left/right arrows turn at keyTurn per frame.
func IntentsFromKeys(pressed func(Key) bool, keyTurn float64) Input {
	in := Input{Quit: pressed(KeyEscape)}
	in.Forward = pressed(KeyW) || pressed(KeyUp)
	in.Backward = pressed(KeyS) || pressed(KeyDown)
	in.StrafeLeft = pressed(KeyA)
	in.StrafeRight = pressed(KeyD)

	if pressed(KeyQ) || pressed(KeyLeft) {
		in.Turn += keyTurn
	}
	if pressed(KeyE) || pressed(KeyRight) {
		in.Turn -= keyTurn
	}
	return in
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update advances one frame of logic. Returning ErrQuit ends the loop.
	Update() error

	// Draw draws the frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// SetCursorCaptured hides the pointer and reports relative motion,
	// for mouse-look.
	SetCursorCaptured(captured bool)

	// RunGame runs the game loop with the provided game. It presents each
	// frame and blocks until the game quits.
	RunGame(game Game) error
}

// FatalInitError reports a startup precondition that failed: a window,
// screen or material could not be created. There is no recovery; the
// entrypoint reports it and exits.
type FatalInitError struct {
	Op   string
	Path string
	Err  error
}

func (e *FatalInitError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FatalInitError) Unwrap() error {
	return e.Err
}
