package movement

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/raycaster/internal/core/vmath"
	"chosenoffset.com/raycaster/internal/world/gridmap"
)

func givenAnOpenRoom(t *testing.T) *gridmap.GridMap {
	t.Helper()
	m, err := gridmap.Bordered(16, 16, 1)
	require.NoError(t, err)
	return m
}

func TestNewPlayerDefaultPose(t *testing.T) {
	p := NewPlayer(vmath.Vec2F{X: 4, Y: 4}, vmath.Vec2F{X: -1, Y: 0}, 0.66)

	assert.Equal(t, vmath.Vec2F{X: -1, Y: 0}, p.Dir)
	assert.True(t, vmath.ApproxEqual(p.Plane, vmath.Vec2F{X: 0, Y: 0.66}, 1e-12), "plane %v", p.Plane)
	assert.InDelta(t, 2*math.Atan(0.66), p.FOV(), 1e-12)
}

func TestForwardIntoWallKeepsAxis(t *testing.T) {
	c := NewController(givenAnOpenRoom(t), 0.05, 0.025)
	p := NewPlayer(vmath.Vec2F{X: 1.02, Y: 4.5}, vmath.Vec2F{X: -1, Y: 0}, 0.66)

	c.Update(&p, Intents{Forward: true})

	assert.Equal(t, 1.02, p.Pos.X)
	assert.Equal(t, 4.5, p.Pos.Y)
}

func TestDiagonalContactSlides(t *testing.T) {
	c := NewController(givenAnOpenRoom(t), 0.05, 0.025)
	p := NewPlayer(vmath.Vec2F{X: 1.02, Y: 4.5}, vmath.Vec2F{X: -1, Y: -1}, 0.66)

	c.Update(&p, Intents{Forward: true})

	assert.Equal(t, 1.02, p.Pos.X, "x is blocked by the west wall")
	assert.InDelta(t, 4.5-0.05/math.Sqrt2, p.Pos.Y, 1e-12, "y slides along the wall")
}

func TestDiagonalCornerNeverEntersWall(t *testing.T) {
	// Only the diagonal neighbour (1,1) is a wall; (1,2) and (2,1) are open.
	m, err := gridmap.New(5, 5, []uint8{
		1, 1, 1, 1, 1,
		1, 1, 0, 0, 1,
		1, 0, 0, 0, 1,
		1, 0, 0, 0, 1,
		1, 1, 1, 1, 1,
	})
	require.NoError(t, err)

	c := NewController(m, 0.05, 0.025)
	p := NewPlayer(vmath.Vec2F{X: 2.01, Y: 2.01}, vmath.Vec2F{X: -1, Y: -1}, 0.66)

	for frame := 0; frame < 60; frame++ {
		c.Update(&p, Intents{Forward: true})
		cell := p.Pos.Floor()
		require.False(t, m.IsWall(cell.X, cell.Y), "frame %d: inside wall at %v", frame, p.Pos)
	}

	assert.GreaterOrEqual(t, p.Pos.Y, 2.0, "y is held out of the corner cell")
	assert.Less(t, p.Pos.X, 2.0, "x slid past the corner")
}

func TestBackwardAndStrafeBlocked(t *testing.T) {
	tests := []struct {
		name   string
		pos    vmath.Vec2F
		in     Intents
		wantX  float64
		wantY  float64
		deltaY float64
	}{
		{
			name:  "backward into east wall",
			pos:   vmath.Vec2F{X: 14.98, Y: 7.5},
			in:    Intents{Backward: true},
			wantX: 14.98,
			wantY: 7.5,
		},
		{
			name:  "strafe left into north wall",
			pos:   vmath.Vec2F{X: 7.5, Y: 1.01},
			in:    Intents{StrafeLeft: true},
			wantX: 7.5,
			wantY: 1.01,
		},
		{
			name:  "strafe right into south wall",
			pos:   vmath.Vec2F{X: 7.5, Y: 14.99},
			in:    Intents{StrafeRight: true},
			wantX: 7.5,
			wantY: 14.99,
		},
		{
			name:  "strafe right in the open",
			pos:   vmath.Vec2F{X: 7.5, Y: 7.5},
			in:    Intents{StrafeRight: true},
			wantX: 7.5,
			wantY: 7.55,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(givenAnOpenRoom(t), 0.05, 0.025)
			p := NewPlayer(tt.pos, vmath.Vec2F{X: -1, Y: 0}, 0.66)

			c.Update(&p, tt.in)

			assert.InDelta(t, tt.wantX, p.Pos.X, 1e-12)
			assert.InDelta(t, tt.wantY, p.Pos.Y, 1e-12)
		})
	}
}

func TestStrafeLeftFollowsLeftScreenEdge(t *testing.T) {
	c := NewController(givenAnOpenRoom(t), 0.05, 0.025)
	p := NewPlayer(vmath.Vec2F{X: 8, Y: 8}, vmath.Vec2F{X: -1, Y: 0}, 0.66)

	for i := 0; i < 16; i++ {
		left := StrafeLeft(p)
		leftEdgeRay := p.Dir.Add(p.Plane.Scale(-1))
		rightEdgeRay := p.Dir.Add(p.Plane.Scale(1))

		assert.InDelta(t, 0, left.Dot(p.Dir), 1e-12)
		assert.Greater(t, left.Cross(p.Dir)*leftEdgeRay.Cross(p.Dir), 0.0, "rotation %d", i)
		assert.Less(t, left.Cross(p.Dir)*rightEdgeRay.Cross(p.Dir), 0.0, "rotation %d", i)

		c.Rotate(&p, math.Pi/8)
	}
}

func TestStrafeMovesTowardLeftEdge(t *testing.T) {
	c := NewController(givenAnOpenRoom(t), 0.05, 0.025)
	p := NewPlayer(vmath.Vec2F{X: 8, Y: 8}, vmath.Vec2F{X: -1, Y: 0}, 0.66)

	c.Update(&p, Intents{StrafeLeft: true})

	// Facing -x with the plane on +y, the left screen edge shows -y.
	assert.InDelta(t, 8, p.Pos.X, 1e-12)
	assert.InDelta(t, 7.95, p.Pos.Y, 1e-12)
}

func TestRotationRoundTrip(t *testing.T) {
	c := NewController(givenAnOpenRoom(t), 0.05, 0.025)
	p := NewPlayer(vmath.Vec2F{X: 8, Y: 8}, vmath.Vec2F{X: -1, Y: 0}, 0.66)
	start := p

	for _, theta := range []float64{0.025, 0.5, -1.2, math.Pi} {
		c.Rotate(&p, theta)
		c.Rotate(&p, -theta)
		require.True(t, vmath.ApproxEqual(start.Dir, p.Dir, 1e-9), "dir %v", p.Dir)
		require.True(t, vmath.ApproxEqual(start.Plane, p.Plane, 1e-9), "plane %v", p.Plane)
	}
}

func TestTurnIntentPreservesFOV(t *testing.T) {
	c := NewController(givenAnOpenRoom(t), 0.05, 0.025)
	p := NewPlayer(vmath.Vec2F{X: 8, Y: 8}, vmath.Vec2F{X: -1, Y: 0}, 0.66)
	angle := vmath.Angle(p.Dir, p.Plane)
	fov := p.FOV()

	for i := 0; i < 500; i++ {
		c.Update(&p, Intents{Turn: float64(i%5) - 1.5})
		assert.InDelta(t, angle, vmath.Angle(p.Dir, p.Plane), 1e-9)
	}
	assert.InDelta(t, fov, p.FOV(), 1e-9)
	assert.Equal(t, vmath.Vec2F{X: 8, Y: 8}, p.Pos)
}

func TestPositiveTurnFacesLeft(t *testing.T) {
	c := NewController(givenAnOpenRoom(t), 0.05, 0.025)
	p := NewPlayer(vmath.Vec2F{X: 8, Y: 8}, vmath.Vec2F{X: -1, Y: 0}, 0.66)
	before := StrafeLeft(p)

	c.Update(&p, Intents{Turn: 1})

	assert.Greater(t, p.Dir.Dot(before), 0.0)
	assert.InDelta(t, 0.025, vmath.Angle(vmath.Vec2F{X: -1, Y: 0}, p.Dir), 1e-12)
}
