package locomotion

import "github.com/stride-xr/stride/game"

// probeAhead is the proactive move-and-follow behavior. Before committing a
// horizontal move it probes beneath the candidate position; a hit commits
// the move and blends the rig height toward the surface found there. With no
// ground ahead the move is left to the controller's fallback translation, or
// rejected outright when Options.RequireGround is set.
type probeAhead struct{}

func (probeAhead) name() string {
	return "probe_ahead"
}

func (probeAhead) tick(ctx *frameContext) {
	c := ctx.c
	if !ctx.hasMove || ctx.blocked || c.Walkable == nil {
		return
	}

	hit, ok := c.Walkable.IntersectFirst(game.DownRay(ctx.candidate))
	if !ok {
		if c.Options.RequireGround {
			ctx.rejected = true
			c.debugf("probe ahead: no ground at %v, move rejected", ctx.candidate)
		}
		return
	}

	ctx.state.Pos[0] = ctx.candidate.X()
	ctx.state.Pos[2] = ctx.candidate.Z()

	ctx.groundHit = true
	ctx.groundHeight = hit.Point.Y()
	c.smoothHeight(hit.Point.Y())

	ctx.committed = true
	c.debugf("probe ahead: committed to %v on surface at %v", ctx.state.Pos, hit.Point.Y())
}
