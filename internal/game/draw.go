package game

import (
	"context"
	"log"

	"chosenoffset.com/raycaster/internal/render"
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	w, h := screen.Size()

	screen.Fill(g.Background)

	hits, err := g.Caster.CastFrame(context.Background(), g.View(), w)
	if err != nil {
		log.Printf("Warning: cast failed on frame %d: %v", g.FrameCount, err)
		return
	}
	g.Projector.Draw(screen, h, hits)
}
