package locomotion

import "github.com/stride-xr/stride/game"

// groundSnap is the reactive ground-contact behavior. It runs every frame,
// movement or not: a downward probe from above the rig finds the nearest
// walkable surface and the rig height is blended toward it. With no surface
// beneath the rig the height is left untouched; there is no fallback height.
type groundSnap struct{}

func (groundSnap) name() string {
	return "ground_snap"
}

func (groundSnap) tick(ctx *frameContext) {
	c := ctx.c
	if c.Walkable == nil {
		return
	}

	hit, ok := c.Walkable.IntersectFirst(game.DownRay(ctx.state.Pos))
	if !ok {
		c.debugf("ground snap: no surface beneath %v", ctx.state.Pos)
		return
	}

	ctx.groundHit = true
	ctx.groundHeight = hit.Point.Y()
	c.smoothHeight(hit.Point.Y())
	c.debugf("ground snap: surface at %v, height now %v", hit.Point.Y(), ctx.state.Height)
}
