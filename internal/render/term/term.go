// Package term draws the raycaster into a terminal with tcell. Every cell
// column is one wall slice, shaded with block glyphs.
package term

import (
	"errors"
	"image"
	"image/color"
	_ "image/png" // material textures are PNG
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/render/material"
)

const (
	defaultTick       = 16 * time.Millisecond
	defaultHoldFrames = 6 // Terminals only report key presses, not releases
)

// Screen is a terminal backed Engine and InputPoller.
type Screen struct {
	screen     tcell.Screen
	tick       time.Duration
	holdFrames int
	keyTurn    float64

	held map[render.Key]int
	quit bool
}

// New opens the terminal.
func New(keyTurn float64) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, &render.FatalInitError{Op: "open terminal", Err: err}
	}
	return NewWithScreen(s, keyTurn)
}

// NewWithScreen initialises an existing tcell screen, such as a
// simulation screen.
func NewWithScreen(s tcell.Screen, keyTurn float64) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, &render.FatalInitError{Op: "init terminal", Err: err}
	}
	s.HideCursor()
	s.Clear()
	return &Screen{
		screen:     s,
		tick:       defaultTick,
		holdFrames: defaultHoldFrames,
		keyTurn:    keyTurn,
		held:       make(map[render.Key]int),
	}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Image returns the terminal as a drawing surface.
func (s *Screen) Image() render.Image {
	return &Image{screen: s.screen}
}

// The terminal sizes itself; window settings are ignored.
func (s *Screen) SetWindowSize(width, height int)   {}
func (s *Screen) SetWindowTitle(title string)       {}
func (s *Screen) SetWindowResizable(resizable bool) {}
func (s *Screen) SetCursorCaptured(captured bool)   {}

// RunGame drives game at a fixed tick until it returns render.ErrQuit or an
// error.
func (s *Screen) RunGame(game render.Game) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	img := s.Image()
	for {
		select {
		case ev := <-events:
			s.HandleEvent(ev)

		case <-ticker.C:
			err := game.Update()
			if errors.Is(err, render.ErrQuit) {
				return nil
			}
			if err != nil {
				return err
			}
			game.Layout(s.screen.Size())
			game.Draw(img)
			s.screen.Show()
		}
	}
}

// HandleEvent records key presses and reacts to resizes.
func (s *Screen) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			s.quit = true
			return
		}
		if k, ok := keyFor(ev.Key(), ev.Rune()); ok {
			s.held[k] = s.holdFrames
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

// PollInput implements render.InputPoller. A key counts as held for a few
// frames after its last press event.
func (s *Screen) PollInput() render.Input {
	in := render.IntentsFromKeys(func(k render.Key) bool { return s.held[k] > 0 }, s.keyTurn)
	in.Quit = in.Quit || s.quit

	for k, n := range s.held {
		if n <= 1 {
			delete(s.held, k)
		} else {
			s.held[k] = n - 1
		}
	}
	return in
}

// keyFor maps a terminal key to a bound key.
func keyFor(key tcell.Key, r rune) (render.Key, bool) {
	switch key {
	case tcell.KeyUp:
		return render.KeyUp, true
	case tcell.KeyDown:
		return render.KeyDown, true
	case tcell.KeyLeft:
		return render.KeyLeft, true
	case tcell.KeyRight:
		return render.KeyRight, true
	case tcell.KeyEscape:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return render.KeyW, true
		case 'a', 'A':
			return render.KeyA, true
		case 's', 'S':
			return render.KeyS, true
		case 'd', 'D':
			return render.KeyD, true
		case 'q', 'Q':
			return render.KeyQ, true
		case 'e', 'E':
			return render.KeyE, true
		}
	}
	return 0, false
}

// Image draws onto the terminal cells.
type Image struct {
	screen     tcell.Screen
	background tcell.Style
}

func (i *Image) Bounds() image.Rectangle {
	w, h := i.screen.Size()
	return image.Rect(0, 0, w, h)
}

func (i *Image) Size() (width, height int) {
	return i.screen.Size()
}

// Fill paints every cell with clr.
func (i *Image) Fill(clr color.Color) {
	i.background = tcell.StyleDefault.Background(toTcell(clr))
	i.screen.Fill(' ', i.background)
}

func (i *Image) Clear() {
	i.background = tcell.StyleDefault
	i.screen.Clear()
}

func (i *Image) Dispose() {}

// DrawVerticalSlice fills a column with a glyph picked by how much of the
// screen the slice covers. Nearer walls are denser.
func (i *Image) DrawVerticalSlice(column, yStart, yEnd int, m render.Material) {
	if yEnd <= yStart {
		return
	}
	_, h := i.screen.Size()
	glyph := Glyph(yEnd-yStart, h)

	clr := m.Color
	if tex, ok := m.Image.(*Texture); ok {
		clr = material.Darken(tex.Average, m.Shade)
	}
	style := i.background.Foreground(toTcell(clr))

	for y := yStart; y < yEnd; y++ {
		i.screen.SetContent(column, y, glyph, nil, style)
	}
}

var glyphs = []rune{'░', '▒', '▓', '█'}

// Glyph returns the block glyph for a slice of the given height.
func Glyph(sliceHeight, screenHeight int) rune {
	if screenHeight <= 0 || sliceHeight >= screenHeight {
		return glyphs[len(glyphs)-1]
	}
	if sliceHeight <= 0 {
		return glyphs[0]
	}
	idx := sliceHeight * len(glyphs) / screenHeight
	return glyphs[idx]
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// Texture is a material image reduced to its average colour.
type Texture struct {
	Average color.RGBA
	bounds  image.Rectangle
}

func (t *Texture) Bounds() image.Rectangle                                       { return t.bounds }
func (t *Texture) Size() (width, height int)                                     { return t.bounds.Dx(), t.bounds.Dy() }
func (t *Texture) Fill(clr color.Color)                                          {}
func (t *Texture) Clear()                                                        {}
func (t *Texture) Dispose()                                                      {}
func (t *Texture) DrawVerticalSlice(column, yStart, yEnd int, m render.Material) {}

// Loader decodes material images into textures.
type Loader struct{}

// LoadMaterial decodes the image at path and averages its pixels.
func (Loader) LoadMaterial(tag uint8, path string) (render.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return NewTexture(img), nil
}

// NewTexture averages img.
func NewTexture(img image.Image) *Texture {
	b := img.Bounds()
	var r, g, bl, n uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			pr, pg, pb, _ := img.At(x, y).RGBA()
			r += uint64(pr >> 8)
			g += uint64(pg >> 8)
			bl += uint64(pb >> 8)
			n++
		}
	}
	t := &Texture{bounds: b, Average: color.RGBA{A: 255}}
	if n > 0 {
		t.Average.R = uint8(r / n)
		t.Average.G = uint8(g / n)
		t.Average.B = uint8(bl / n)
	}
	return t
}
