package locomotion

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// frameContext carries the per-frame scratch state threaded through the
// registered policies. It is pooled; a frame acquires one at the start of
// Update and releases it before returning.
type frameContext struct {
	c     *Controller
	state *State

	move      mgl32.Vec3
	hasMove   bool
	candidate mgl32.Vec3

	blocked   bool
	committed bool
	rejected  bool

	groundHit    bool
	groundHeight float32

	nearChanged    bool
	targetDistance float32
}

var ctxPool = sync.Pool{
	New: func() any {
		return &frameContext{}
	},
}

func newCtx(c *Controller) *frameContext {
	ctx := ctxPool.Get().(*frameContext)
	ctx.c = c
	ctx.state = c.state
	return ctx
}

func putCtx(ctx *frameContext) {
	ctx.reset()
	ctxPool.Put(ctx)
}

func (ctx *frameContext) reset() {
	ctx.c = nil
	ctx.state = nil
	ctx.move = mgl32.Vec3{}
	ctx.hasMove = false
	ctx.candidate = mgl32.Vec3{}
	ctx.blocked = false
	ctx.committed = false
	ctx.rejected = false
	ctx.groundHit = false
	ctx.groundHeight = 0
	ctx.nearChanged = false
	ctx.targetDistance = 0
}
