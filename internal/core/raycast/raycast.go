// Package raycast finds, for each screen column, the first wall a view ray
// hits on the grid using DDA traversal, and reports its perpendicular
// distance so the projection has no fisheye distortion.
package raycast

import (
	"fmt"
	"math"

	"chosenoffset.com/raycaster/internal/core/vmath"
)

// Side is the grid-line orientation a ray crossed when it hit a wall.
type Side uint8

const (
	// NorthSouth means the ray last advanced along Y and struck a wall face
	// running east-west.
	NorthSouth Side = iota
	// EastWest means the ray last advanced along X.
	EastWest
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case NorthSouth:
		return "NorthSouth"
	case EastWest:
		return "EastWest"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// infiniteDelta stands in for 1/0 on an axis the ray never crosses.
const infiniteDelta = 1e30

// Grid is the read-only map a ray traverses.
type Grid interface {
	CellAt(x, y int) uint8
	Width() int
	Height() int
}

// View is the camera a frame is cast from.
type View struct {
	Pos   vmath.Vec2F
	Dir   vmath.Vec2F
	Plane vmath.Vec2F
}

// HitResult is what one ray reports back to the projector.
type HitResult struct {
	PerpDist float64     // Distance along the view direction, not the ray
	Material uint8       // Tag of the wall cell that was hit
	Side     Side        // Orientation of the crossed grid line
	Cell     vmath.Vec2I // Grid cell that was hit
	Steps    int         // DDA iterations taken
}

// Ray is the traversal state for a single column.
type Ray struct {
	Dir       vmath.Vec2F // Not normalized
	Cell      vmath.Vec2I
	Step      vmath.Vec2I // +1 or -1 per axis
	SideDist  vmath.Vec2F // Ray length to the next grid line on each axis
	DeltaDist vmath.Vec2F // Ray length to cross one full cell on each axis
}

// CameraX maps a screen column to camera space: -1 at the left edge, 0 at
// the centre, approaching +1 at the right edge.
func CameraX(column, width int) float64 {
	return 2*float64(column)/float64(width) - 1
}

// NewRay prepares the ray for the given camera-space offset.
func NewRay(v View, cameraX float64) Ray {
	dir := v.Dir.Add(v.Plane.Scale(cameraX))
	r := Ray{
		Dir:       dir,
		Cell:      v.Pos.Floor(),
		DeltaDist: vmath.Vec2F{X: deltaDist(dir.X), Y: deltaDist(dir.Y)},
	}

	if dir.X < 0 {
		r.Step.X = -1
		r.SideDist.X = (v.Pos.X - float64(r.Cell.X)) * r.DeltaDist.X
	} else {
		r.Step.X = 1
		r.SideDist.X = (float64(r.Cell.X) + 1 - v.Pos.X) * r.DeltaDist.X
	}
	if dir.Y < 0 {
		r.Step.Y = -1
		r.SideDist.Y = (v.Pos.Y - float64(r.Cell.Y)) * r.DeltaDist.Y
	} else {
		r.Step.Y = 1
		r.SideDist.Y = (float64(r.Cell.Y) + 1 - v.Pos.Y) * r.DeltaDist.Y
	}

	return r
}

func deltaDist(component float64) float64 {
	if component == 0 {
		return infiniteDelta
	}
	return math.Abs(1 / component)
}

// Cast walks the ray through g until it enters a non-empty cell.
//
// The map's wall ring bounds the walk to width+height steps; exceeding that
// means the ring is broken and Cast panics.
func (r *Ray) Cast(g Grid) HitResult {
	limit := g.Width() + g.Height()
	var side Side

	for steps := 1; ; steps++ {
		if steps > limit {
			panic(fmt.Sprintf("raycast: no wall within %d steps from cell %v", limit, r.Cell))
		}

		if r.SideDist.X < r.SideDist.Y {
			r.SideDist.X += r.DeltaDist.X
			r.Cell.X += r.Step.X
			side = EastWest
		} else {
			r.SideDist.Y += r.DeltaDist.Y
			r.Cell.Y += r.Step.Y
			side = NorthSouth
		}

		tag := g.CellAt(r.Cell.X, r.Cell.Y)
		if tag == 0 {
			continue
		}

		hit := HitResult{
			Material: tag,
			Side:     side,
			Cell:     r.Cell,
			Steps:    steps,
		}
		if side == EastWest {
			hit.PerpDist = r.SideDist.X - r.DeltaDist.X
		} else {
			hit.PerpDist = r.SideDist.Y - r.DeltaDist.Y
		}
		return hit
	}
}

// Cast casts a single ray from v at the given camera-space offset.
func Cast(g Grid, v View, cameraX float64) HitResult {
	r := NewRay(v, cameraX)
	return r.Cast(g)
}
