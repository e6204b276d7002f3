package raycast

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Caster casts every column of a frame.
type Caster struct {
	Map Grid
	// Workers is the number of column bands cast concurrently. Values
	// below 2 cast sequentially on the calling goroutine.
	Workers int
}

// NewCaster returns a caster over m.
func NewCaster(m Grid, workers int) *Caster {
	return &Caster{Map: m, Workers: workers}
}

// CastFrame returns one hit per column for a screen width pixels wide.
// Columns share no state, so bands write disjoint parts of the result and
// the output matches the sequential order exactly. ctx is checked before
// each band starts; a band in progress always finishes.
func (c *Caster) CastFrame(ctx context.Context, v View, width int) ([]HitResult, error) {
	if width <= 0 {
		return nil, nil
	}

	hits := make([]HitResult, width)

	if c.Workers < 2 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c.castBand(hits, v, 0, width)
		return hits, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Workers)

	band := (width + c.Workers - 1) / c.Workers
	for start := 0; start < width; start += band {
		start, end := start, min(start+band, width)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c.castBand(hits, v, start, end)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return hits, nil
}

func (c *Caster) castBand(hits []HitResult, v View, start, end int) {
	width := len(hits)
	for x := start; x < end; x++ {
		hits[x] = Cast(c.Map, v, CameraX(x, width))
	}
}
