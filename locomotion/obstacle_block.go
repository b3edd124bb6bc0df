package locomotion

import "github.com/stride-xr/stride/game"

// obstacleBlock vetoes horizontal movement when a short forward probe from
// the candidate position, along the move direction, hits anything in the
// obstacle set. It performs no height adjustment of its own.
type obstacleBlock struct{}

func (obstacleBlock) name() string {
	return "obstacle_block"
}

func (obstacleBlock) tick(ctx *frameContext) {
	c := ctx.c
	if !ctx.hasMove || c.Obstacles == nil {
		return
	}

	if c.Obstacles.IntersectAny(game.ForwardRay(ctx.candidate, ctx.move)) {
		ctx.blocked = true
		c.debugf("obstacle block: move toward %v vetoed", ctx.candidate)
	}
}
