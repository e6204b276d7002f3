// Package projection turns ray hits into screen-space wall slices and hands
// them to the backend's draw primitive.
package projection

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/render/material"
)

// MaxLineHeight caps the projected height of a wall at zero distance.
const MaxLineHeight = math.MaxInt32

// Slice is the vertical strip drawn for one column.
type Slice struct {
	Column    int
	DrawStart int // First row, inclusive
	DrawEnd   int // Last row, exclusive
	Material  uint8
	Side      raycast.Side
}

// Height returns the number of rows the slice covers.
func (s Slice) Height() int {
	return s.DrawEnd - s.DrawStart
}

// LineHeight is the pinhole projection of a wall at perpDist: inversely
// proportional to distance, floored. Non-positive or tiny distances
// saturate at MaxLineHeight.
func LineHeight(screenHeight int, perpDist float64) int {
	if !(perpDist > 0) {
		return MaxLineHeight
	}
	h := float64(screenHeight) / perpDist
	if h >= MaxLineHeight {
		return MaxLineHeight
	}
	return int(h)
}

// Project centres the wall for hit on the screen's middle row and clamps it
// to [0, screenHeight].
func Project(column, screenHeight int, hit raycast.HitResult) Slice {
	lineHeight := LineHeight(screenHeight, hit.PerpDist)
	mid := screenHeight / 2

	return Slice{
		Column:    column,
		DrawStart: max(0, mid-lineHeight/2),
		DrawEnd:   min(screenHeight, mid+lineHeight/2),
		Material:  hit.Material,
		Side:      hit.Side,
	}
}

// Projector composes a frame of hits into slices and draws them.
type Projector struct {
	Materials *material.Registry
}

// NewProjector returns a projector drawing with materials from reg.
func NewProjector(reg *material.Registry) *Projector {
	return &Projector{Materials: reg}
}

// Compose projects hits[x] to column x.
func (p *Projector) Compose(screenHeight int, hits []raycast.HitResult) []Slice {
	slices := make([]Slice, len(hits))
	for x, hit := range hits {
		slices[x] = Project(x, screenHeight, hit)
	}
	return slices
}

// Draw projects every hit and draws the non-empty slices on dst. Walls hit
// on a north/south face use the shaded material.
func (p *Projector) Draw(dst render.SliceDrawer, screenHeight int, hits []raycast.HitResult) {
	for x, hit := range hits {
		s := Project(x, screenHeight, hit)
		if s.Height() <= 0 {
			continue
		}
		m := p.Materials.Lookup(s.Material, s.Side == raycast.NorthSouth)
		dst.DrawVerticalSlice(s.Column, s.DrawStart, s.DrawEnd, m)
	}
}
