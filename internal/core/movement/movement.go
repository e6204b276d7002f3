// Package movement turns per-frame input intents into player pose updates.
package movement

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/vmath"
)

// Player is the viewer's pose on the grid.
type Player struct {
	Pos   vmath.Vec2F // Position in grid units
	Dir   vmath.Vec2F // Unit forward vector
	Plane vmath.Vec2F // Camera plane, perpendicular to Dir; its length sets the FOV
}

// NewPlayer places a player at pos looking along facing. The camera plane is
// put to the right of the view direction (screen column width-1 side) with
// the given length.
func NewPlayer(pos, facing vmath.Vec2F, planeLength float64) Player {
	dir := facing.Normalize()
	return Player{
		Pos:   pos,
		Dir:   dir,
		Plane: dir.Perp().Scale(-planeLength),
	}
}

// FOV returns the horizontal field of view in radians.
func (p Player) FOV() float64 {
	return 2 * math.Atan2(p.Plane.Len(), p.Dir.Len())
}

// Intents is the movement requested for one frame.
type Intents struct {
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
	// Turn is a signed rotation amount, scaled by Controller.RotateSpeed.
	// Positive turns toward the left edge of the screen.
	Turn float64
}

// Occupancy answers whether a grid cell blocks movement.
type Occupancy interface {
	IsWall(x, y int) bool
}

// Controller applies intents to a player against a map.
type Controller struct {
	Map         Occupancy
	MoveSpeed   float64 // Grid units per frame
	RotateSpeed float64 // Radians per unit of Turn
}

// NewController returns a controller with the given speeds.
func NewController(m Occupancy, moveSpeed, rotateSpeed float64) *Controller {
	return &Controller{
		Map:         m,
		MoveSpeed:   moveSpeed,
		RotateSpeed: rotateSpeed,
	}
}

// Rotate turns the view by angle radians. Direction and camera plane go
// through the same rotation matrix so the FOV stays constant.
func (c *Controller) Rotate(p *Player, angle float64) {
	p.Dir, p.Plane = vmath.RotatePair(p.Dir, p.Plane, angle)
}

// Update applies one frame of intents: rotation first, then each requested
// translation with wall sliding.
func (c *Controller) Update(p *Player, in Intents) {
	if in.Turn != 0 {
		c.Rotate(p, in.Turn*c.RotateSpeed)
	}

	step := p.Dir.Scale(c.MoveSpeed)
	left := StrafeLeft(*p).Scale(c.MoveSpeed)

	if in.Forward {
		c.slide(p, step)
	}
	if in.Backward {
		c.slide(p, step.Scale(-1))
	}
	if in.StrafeLeft {
		c.slide(p, left)
	}
	if in.StrafeRight {
		c.slide(p, left.Scale(-1))
	}
}

// StrafeLeft returns Dir rotated a quarter turn toward the left edge of the
// screen, i.e. away from the camera plane.
func StrafeLeft(p Player) vmath.Vec2F {
	left := p.Dir.Perp()
	if left.Dot(p.Plane) > 0 {
		left = left.Scale(-1)
	}
	return left
}

// slide moves along each axis independently so a blocked axis does not stop
// motion along the other one.
func (c *Controller) slide(p *Player, delta vmath.Vec2F) {
	if !c.blocked(p.Pos.X+delta.X, p.Pos.Y) {
		p.Pos.X += delta.X
	}
	if !c.blocked(p.Pos.X, p.Pos.Y+delta.Y) {
		p.Pos.Y += delta.Y
	}
}

func (c *Controller) blocked(x, y float64) bool {
	return c.Map.IsWall(int(math.Floor(x)), int(math.Floor(y)))
}
