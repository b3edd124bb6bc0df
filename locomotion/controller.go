package locomotion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stride-xr/stride/game"
	"github.com/stride-xr/stride/scene"
)

// SurfaceSource bridges the static scene geometry a controller probes
// against. *scene.Set satisfies it; tests substitute mocks.
type SurfaceSource interface {
	IntersectFirst(r game.Ray) (game.RayHit, bool)
	IntersectAny(r game.Ray) bool
}

// Controller owns a rig's locomotion state and evolves it once per rendered
// frame. All of its work is synchronous and must stay well within one frame
// period; probe cost is bounded by the ray far ranges and by querying only
// the registered walkable/obstacle sets rather than a full scene graph.
type Controller struct {
	// Walkable is the set of surfaces eligible to be treated as ground.
	Walkable SurfaceSource
	// Obstacles is the separate set probed by the obstacle-blocking variant.
	// May be nil when no such variant is configured.
	Obstacles SurfaceSource
	// Target is the object the proximity variant reacts to. May be nil.
	Target *scene.Target

	Options Options

	state    *State
	policies []policy
}

// NewController creates a controller around the given state, configured with
// the given behavior variants.
func NewController(state *State, opts Options, variants ...Variant) *Controller {
	return &Controller{
		Options:  opts,
		state:    state,
		policies: policiesFor(variants),
	}
}

// State returns the locomotion state owned by the controller.
func (c *Controller) State() *State {
	return c.state
}

// Update runs a single frame. move is the world-space planar movement
// direction produced by the input sampler; hasMove is false when there was
// no movement intent this frame. The ground-probe policies run regardless of
// movement so the rig height stays correct while stationary.
func (c *Controller) Update(move mgl32.Vec3, hasMove bool) FrameResult {
	ctx := newCtx(c)
	defer putCtx(ctx)

	ctx.move = move
	ctx.hasMove = hasMove
	if hasMove {
		ctx.candidate = c.state.Pos.Add(move.Mul(c.Options.MoveSpeed))
	}

	// LastPos is captured once here so PosDelta reports the whole frame's
	// displacement regardless of how many policies touched the position.
	c.state.LastPos = c.state.Pos

	for _, p := range c.policies {
		p.tick(ctx)
	}
	c.finishMove(ctx)
	c.state.Tick++

	return c.resultFromCtx(ctx)
}

// finishMove applies the fallback translation: a frame with movement intent
// that no policy committed, blocked, or rejected still translates the rig by
// the full move at the current height. Horizontal movement never waits for a
// ground confirmation unless RequireGround is set.
func (c *Controller) finishMove(ctx *frameContext) {
	if !ctx.hasMove || ctx.blocked || ctx.committed || ctx.rejected {
		return
	}
	next := ctx.candidate
	next[1] = c.state.Pos.Y()
	c.state.Pos = next
	c.debugf("unconfirmed translation to %v", next)
}

// smoothHeight blends the smoothed eye height toward the given surface
// height plus the eye offset and applies it to the rig. This is the only way
// Height changes after initialization.
func (c *Controller) smoothHeight(surfaceHeight float32) {
	c.state.Height = game.Lerp32(c.state.Height, surfaceHeight+c.Options.EyeOffset, c.Options.Smoothing)
	c.state.Pos[1] = c.state.Height
}

func (c *Controller) resultFromCtx(ctx *frameContext) FrameResult {
	res := FrameResult{
		Position:       c.state.Pos,
		Height:         c.state.Height,
		GroundHit:      ctx.groundHit,
		GroundHeight:   ctx.groundHeight,
		Near:           c.state.Near,
		NearChanged:    ctx.nearChanged,
		TargetDistance: ctx.targetDistance,
	}

	switch {
	case !ctx.hasMove:
		res.Outcome = OutcomeIdle
	case ctx.blocked:
		res.Outcome = OutcomeBlocked
	case ctx.rejected:
		res.Outcome = OutcomeRejected
	case ctx.committed:
		res.Outcome = OutcomeMoved
	default:
		res.Outcome = OutcomeMovedUnconfirmed
	}
	return res
}

func (c *Controller) debugf(format string, args ...any) {
	if c.Options.Debugf != nil {
		c.Options.Debugf(format, args...)
	}
}
