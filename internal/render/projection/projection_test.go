package projection

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/render/material"
	"chosenoffset.com/raycaster/internal/render/rendertest"
)

func TestLineHeight(t *testing.T) {
	assert.Equal(t, 720, LineHeight(720, 1))
	assert.Equal(t, 240, LineHeight(720, 3))
	assert.Equal(t, 1440, LineHeight(720, 0.5))
	assert.Equal(t, 205, LineHeight(720, 3.5))
	assert.Equal(t, MaxLineHeight, LineHeight(720, 0))
	assert.Equal(t, MaxLineHeight, LineHeight(720, -1))
	assert.Equal(t, MaxLineHeight, LineHeight(720, 1e-300))
	assert.Equal(t, MaxLineHeight, LineHeight(720, math.NaN()))
}

func TestLineHeightMonotonicAndHalving(t *testing.T) {
	const h = 720
	prev := LineHeight(h, 0.01)
	for d := 0.02; d < 40; d += 0.01 {
		lh := LineHeight(h, d)
		require.LessOrEqual(t, lh, prev, "distance %v", d)
		prev = lh

		doubled := LineHeight(h, 2*d)
		require.InDelta(t, float64(lh)/2, float64(doubled), 1, "distance %v", d)
	}
}

func TestProjectStaysOnScreen(t *testing.T) {
	heights := []int{0, 1, 2, 101, 720}
	distances := []float64{0, 1e-12, 1e-6, 0.1, 0.5, 1, 2.25, 10, 1e6, 1e30, math.Inf(1)}

	for _, h := range heights {
		for _, d := range distances {
			s := Project(3, h, raycast.HitResult{PerpDist: d, Material: 2})
			assert.GreaterOrEqual(t, s.DrawStart, 0, "h %d d %v", h, d)
			assert.LessOrEqual(t, s.DrawEnd, h, "h %d d %v", h, d)
			assert.LessOrEqual(t, s.DrawStart, s.DrawEnd, "h %d d %v", h, d)
		}
	}
}

func TestProjectCentres(t *testing.T) {
	tests := []struct {
		name      string
		dist      float64
		wantStart int
		wantEnd   int
	}{
		{"fills column at distance one", 1, 0, 720},
		{"closer than one clamps", 0.25, 0, 720},
		{"three away", 3, 240, 480},
		{"far away", 1000, 360, 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Project(17, 720, raycast.HitResult{PerpDist: tt.dist, Material: 1, Side: raycast.EastWest})
			assert.Equal(t, 17, s.Column)
			assert.Equal(t, tt.wantStart, s.DrawStart)
			assert.Equal(t, tt.wantEnd, s.DrawEnd)
			assert.Equal(t, uint8(1), s.Material)
			assert.Equal(t, raycast.EastWest, s.Side)
		})
	}
}

func givenARegistry(t *testing.T) *material.Registry {
	t.Helper()
	reg := material.NewRegistry(0.5)
	require.NoError(t, reg.Register(render.Material{Tag: 1, Name: "wood", Color: color.RGBA{139, 69, 19, 255}}))
	require.NoError(t, reg.Register(render.Material{Tag: 2, Name: "redbrick", Color: color.RGBA{178, 34, 34, 255}}))
	return reg
}

func TestProjectorDraw(t *testing.T) {
	reg := givenARegistry(t)
	p := NewProjector(reg)
	canvas := rendertest.NewCanvas(4, 100)

	hits := []raycast.HitResult{
		{PerpDist: 2, Material: 1, Side: raycast.EastWest},
		{PerpDist: 4, Material: 2, Side: raycast.NorthSouth},
		{PerpDist: 1000, Material: 2, Side: raycast.EastWest},
		{PerpDist: 0, Material: 9, Side: raycast.EastWest},
	}
	p.Draw(canvas, 100, hits)

	require.Len(t, canvas.Slices, 3, "the far wall projects to zero rows")

	assert.Equal(t, rendertest.DrawnSlice{Column: 0, YStart: 25, YEnd: 75, Material: reg.Lookup(1, false)}, canvas.Slices[0])
	assert.Equal(t, rendertest.DrawnSlice{Column: 1, YStart: 38, YEnd: 62, Material: reg.Lookup(2, true)}, canvas.Slices[1])
	assert.Equal(t, 3, canvas.Slices[2].Column)
	assert.Equal(t, 0, canvas.Slices[2].YStart)
	assert.Equal(t, 100, canvas.Slices[2].YEnd)
	assert.Equal(t, material.Fallback.Color, canvas.Slices[2].Material.Color)

	slices := p.Compose(100, hits)
	require.Len(t, slices, 4)
	assert.Equal(t, 0, slices[2].Height())
}
