// Package gridmap holds the static tile grid the raycaster walks through.
// A GridMap is immutable once built and is shared read-only by the movement
// controller and the raycaster.
package gridmap

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensions is returned when a map's size or cell count is invalid.
	ErrDimensions = errors.New("invalid map dimensions")
	// ErrOpenBorder is returned when a border cell is empty. Every ray relies
	// on the wall ring to terminate.
	ErrOpenBorder = errors.New("map border is not fully walled")
)

// Empty is the tag of a walkable, transparent cell.
const Empty uint8 = 0

// GridMap is a width x height grid of cell tags stored row-major with the
// origin at the top-left. Tag 0 is empty; any other tag is a wall material.
type GridMap struct {
	width  int
	height int
	cells  []uint8
}

// New builds a map from row-major cells. The slice is copied.
func New(width, height int, cells []uint8) (*GridMap, error) {
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: expected %d cells, got %d", ErrDimensions, width*height, len(cells))
	}

	m := &GridMap{
		width:  width,
		height: height,
		cells:  append([]uint8(nil), cells...),
	}

	for x := 0; x < width; x++ {
		if m.cells[x] == Empty || m.cells[(height-1)*width+x] == Empty {
			return nil, fmt.Errorf("%w: gap in column %d", ErrOpenBorder, x)
		}
	}
	for y := 0; y < height; y++ {
		if m.cells[y*width] == Empty || m.cells[y*width+width-1] == Empty {
			return nil, fmt.Errorf("%w: gap in row %d", ErrOpenBorder, y)
		}
	}

	return m, nil
}

// Width returns the number of columns.
func (m *GridMap) Width() int { return m.width }

// Height returns the number of rows.
func (m *GridMap) Height() int { return m.height }

// InBounds reports whether (x, y) is a cell of the map.
func (m *GridMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// CellAt returns the tag at (x, y). Reading outside the map means a caller
// walked past the wall ring, which is a bug, so it panics.
func (m *GridMap) CellAt(x, y int) uint8 {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("gridmap: cell (%d, %d) outside %dx%d map", x, y, m.width, m.height))
	}
	return m.cells[y*m.width+x]
}

// IsWall reports whether the cell at (x, y) is obstructed.
func (m *GridMap) IsWall(x, y int) bool {
	return m.CellAt(x, y) != Empty
}

// Open reports whether the cell at (x, y) is inside the map and empty.
func (m *GridMap) Open(x, y int) bool {
	return m.InBounds(x, y) && m.cells[y*m.width+x] == Empty
}

// Tags returns the distinct non-empty tags used by the map, in ascending order.
func (m *GridMap) Tags() []uint8 {
	var seen [256]bool
	for _, c := range m.cells {
		seen[c] = true
	}
	var tags []uint8
	for tag := 1; tag < len(seen); tag++ {
		if seen[tag] {
			tags = append(tags, uint8(tag))
		}
	}
	return tags
}

// defaultSize is the edge length of the built-in level.
const defaultSize = 16

var defaultCells = [defaultSize * defaultSize]uint8{
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
	1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
	1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
	1, 0, 0, 0, 0, 0, 0, 0, 2, 2, 0, 0, 0, 0, 0, 1,
	1, 0, 0, 0, 0, 0, 3, 2, 2, 0, 0, 0, 0, 0, 0, 1,
	1, 0, 0, 0, 3, 3, 3, 0, 0, 0, 0, 0, 0, 2, 0, 1,
	1, 0, 0, 0, 0, 0, 3, 0, 0, 0, 0, 0, 0, 2, 0, 1,
	1, 0, 0, 0, 0, 0, 3, 2, 2, 2, 2, 2, 2, 2, 0, 1,
	1, 0, 0, 0, 0, 0, 3, 0, 0, 0, 0, 2, 0, 0, 0, 1,
	1, 0, 0, 0, 0, 0, 3, 0, 0, 0, 0, 2, 0, 0, 0, 1,
	1, 0, 0, 0, 3, 3, 3, 0, 0, 0, 0, 2, 0, 0, 0, 1,
	1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 1,
	1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
	1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
}

// Default returns the built-in 16x16 level.
func Default() *GridMap {
	m, err := New(defaultSize, defaultSize, defaultCells[:])
	if err != nil {
		panic(err)
	}
	return m
}

// Bordered returns a width x height map whose border is filled with wallTag
// and whose interior is empty.
func Bordered(width, height int, wallTag uint8) (*GridMap, error) {
	if wallTag == Empty {
		return nil, fmt.Errorf("%w: wall tag must be non-zero", ErrOpenBorder)
	}
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	cells := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				cells[y*width+x] = wallTag
			}
		}
	}
	return New(width, height, cells)
}
