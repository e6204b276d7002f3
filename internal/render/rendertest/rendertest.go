// Package rendertest provides in-memory stand-ins for the render
// interfaces so game logic can be tested without a window or terminal.
package rendertest

import (
	"fmt"
	"image"
	"image/color"

	"chosenoffset.com/raycaster/internal/render"
)

// DrawnSlice records one DrawVerticalSlice call.
type DrawnSlice struct {
	Column   int
	YStart   int
	YEnd     int
	Material render.Material
}

// Canvas is an Image that records what was drawn on it.
type Canvas struct {
	Width, Height int
	Slices        []DrawnSlice
	Filled        color.Color
	Disposed      bool
}

// NewCanvas returns an empty canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{Width: width, Height: height}
}

func (c *Canvas) Bounds() image.Rectangle    { return image.Rect(0, 0, c.Width, c.Height) }
func (c *Canvas) Size() (width, height int) { return c.Width, c.Height }
func (c *Canvas) Fill(clr color.Color)      { c.Filled = clr; c.Slices = nil }
func (c *Canvas) Clear()                    { c.Fill(color.Transparent) }
func (c *Canvas) Dispose()                  { c.Disposed = true }

// DrawVerticalSlice records the call. Calls outside the canvas are a bug in
// the caller and panic.
func (c *Canvas) DrawVerticalSlice(column, yStart, yEnd int, m render.Material) {
	if column < 0 || column >= c.Width || yStart < 0 || yEnd > c.Height {
		panic(fmt.Sprintf("rendertest: slice col %d rows [%d, %d) outside %dx%d", column, yStart, yEnd, c.Width, c.Height))
	}
	if yEnd <= yStart {
		return
	}
	c.Slices = append(c.Slices, DrawnSlice{Column: column, YStart: yStart, YEnd: yEnd, Material: m})
}

// Loader hands out canvases for material paths. Paths listed in Missing fail.
type Loader struct {
	Missing map[string]error
	Loaded  map[string]*Canvas
}

// NewLoader returns a loader where every path succeeds.
func NewLoader() *Loader {
	return &Loader{
		Missing: make(map[string]error),
		Loaded:  make(map[string]*Canvas),
	}
}

func (l *Loader) LoadMaterial(tag uint8, path string) (render.Image, error) {
	if err, ok := l.Missing[path]; ok {
		return nil, err
	}
	c := NewCanvas(64, 64)
	l.Loaded[path] = c
	return c, nil
}

// Script replays a fixed sequence of inputs, then returns Quit.
type Script struct {
	Frames []render.Input
	Polled int
}

func (s *Script) PollInput() render.Input {
	if s.Polled >= len(s.Frames) {
		s.Polled++
		return render.Input{Quit: true}
	}
	in := s.Frames[s.Polled]
	s.Polled++
	return in
}
