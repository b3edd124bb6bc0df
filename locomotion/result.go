package locomotion

import "github.com/go-gl/mathgl/mgl32"

// Outcome describes which path the controller took for the current frame.
type Outcome uint8

const (
	// OutcomeIdle means no movement intent this frame.
	OutcomeIdle Outcome = iota
	// OutcomeMoved means the horizontal move was committed onto confirmed
	// walkable ground.
	OutcomeMoved
	// OutcomeMovedUnconfirmed means the move was committed without a ground
	// confirmation beneath the destination.
	OutcomeMovedUnconfirmed
	// OutcomeBlocked means an obstacle probe vetoed the horizontal move.
	OutcomeBlocked
	// OutcomeRejected means the look-ahead probe found no ground and
	// Options.RequireGround discarded the move.
	OutcomeRejected
)

// FrameResult captures the outcome of a single frame update.
type FrameResult struct {
	Position mgl32.Vec3
	Height   float32

	Outcome Outcome

	GroundHit    bool
	GroundHeight float32

	Near           bool
	NearChanged    bool
	TargetDistance float32
}
