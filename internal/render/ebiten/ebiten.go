// Package ebiten implements the render interfaces on top of an Ebiten window.
package ebiten

import (
	"errors"
	"image"
	"image/color"
	_ "image/png" // material textures are PNG

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/raycaster/internal/render"
)

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Clear clears the image to transparent.
func (i *EbitenImage) Clear() {
	i.img.Clear()
}

// Dispose releases the image resources.
func (i *EbitenImage) Dispose() {
	if i.img != nil {
		i.img.Dispose()
	}
}

// DrawVerticalSlice stretches the material texture over a one pixel wide
// strip. Materials without an Ebiten texture are drawn as a flat colour.
func (i *EbitenImage) DrawVerticalSlice(column, yStart, yEnd int, m render.Material) {
	if yEnd <= yStart {
		return
	}
	height := float64(yEnd - yStart)

	tex, ok := m.Image.(*EbitenImage)
	if !ok || tex == nil || tex.img == nil {
		vector.DrawFilledRect(i.img, float32(column), float32(yStart), 1, float32(height), m.Color, false)
		return
	}

	tw, th := tex.Size()
	if tw == 0 || th == 0 {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(1/float64(tw), height/float64(th))
	opts.GeoM.Translate(float64(column), float64(yStart))
	if m.Shade > 0 {
		f := float32(1 - m.Shade)
		opts.ColorScale.Scale(f, f, f, 1)
	}
	i.img.DrawImage(tex.img, opts)
}

// GetEbitenImage returns the underlying ebiten.Image.
func (i *EbitenImage) GetEbitenImage() *ebiten.Image {
	return i.img
}

// WrapEbitenImage wraps an existing ebiten.Image as a render.Image.
func WrapEbitenImage(img *ebiten.Image) render.Image {
	return &EbitenImage{img: img}
}

// EbitenInputManager samples the keyboard and, when the cursor is
// captured, horizontal mouse motion.
type EbitenInputManager struct {
	keyTurn     float64
	sensitivity float64

	lastX   int
	hasLast bool
}

// NewInputManager creates an input manager. keyTurn is the turn applied per
// frame while a turn key is held, sensitivity scales mouse motion.
func NewInputManager(keyTurn, sensitivity float64) *EbitenInputManager {
	return &EbitenInputManager{keyTurn: keyTurn, sensitivity: sensitivity}
}

// PollInput implements render.InputPoller.
func (m *EbitenInputManager) PollInput() render.Input {
	in := render.IntentsFromKeys(m.IsKeyPressed, m.keyTurn)

	// Tab frees or recaptures the pointer.
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.CursorMode() == ebiten.CursorModeCaptured {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		}
	}

	if ebiten.CursorMode() == ebiten.CursorModeCaptured {
		x, _ := ebiten.CursorPosition()
		if m.hasLast {
			in.Turn += float64(x-m.lastX) * m.sensitivity
		}
		m.lastX, m.hasLast = x, true
	} else {
		m.hasLast = false
	}
	return in
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && ebiten.IsKeyPressed(k)
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) (ebiten.Key, bool) {
	switch key {
	case render.KeyW:
		return ebiten.KeyW, true
	case render.KeyA:
		return ebiten.KeyA, true
	case render.KeyS:
		return ebiten.KeyS, true
	case render.KeyD:
		return ebiten.KeyD, true
	case render.KeyQ:
		return ebiten.KeyQ, true
	case render.KeyE:
		return ebiten.KeyE, true
	case render.KeyUp:
		return ebiten.KeyArrowUp, true
	case render.KeyDown:
		return ebiten.KeyArrowDown, true
	case render.KeyLeft:
		return ebiten.KeyArrowLeft, true
	case render.KeyRight:
		return ebiten.KeyArrowRight, true
	case render.KeyEscape:
		return ebiten.KeyEscape, true
	default:
		return 0, false
	}
}

// EbitenResourceLoader implements render.MaterialLoader using Ebiten.
type EbitenResourceLoader struct{}

// NewResourceLoader creates a new Ebiten-based resource loader.
func NewResourceLoader() render.MaterialLoader {
	return &EbitenResourceLoader{}
}

// LoadMaterial loads a material texture from the specified file path.
func (l *EbitenResourceLoader) LoadMaterial(tag uint8, path string) (render.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return &EbitenImage{img: img}, nil
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// SetCursorCaptured hides the pointer and locks it to the window.
func (e *EbitenEngine) SetCursorCaptured(captured bool) {
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// RunGame runs the game loop with the provided game. A game that returns
// render.ErrQuit ends the loop cleanly.
func (e *EbitenEngine) RunGame(game render.Game) error {
	err := ebiten.RunGame(&gameAdapter{game: game})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
