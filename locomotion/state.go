package locomotion

import "github.com/go-gl/mathgl/mgl32"

// State holds the mutable per-rig locomotion state evolved once per frame.
// It is owned by a single Controller; nothing else writes to it.
type State struct {
	// Pos is the rig's world position, the anchor the viewer's camera is
	// attached to.
	Pos, LastPos mgl32.Vec3

	// Height is the low-pass-filtered eye height. It only changes through
	// the smoothing update, so the rig never snaps discontinuously to a new
	// surface except at initialization.
	Height float32

	// Near is the proximity flag maintained by the proximity policy.
	Near bool

	// Tick counts frames since the state was created. It drives the
	// proximity scale oscillation.
	Tick uint64
}

// NewState creates locomotion state anchored at the given position. The
// smoothed height starts at the initial eye height, which is the one
// permitted discontinuity.
func NewState(pos mgl32.Vec3) *State {
	return &State{
		Pos:     pos,
		LastPos: pos,
		Height:  pos.Y(),
	}
}

// SetPos repositions the rig from outside the frame update, e.g. a scene
// teleport. The previous position is retained.
func (s *State) SetPos(newPos mgl32.Vec3) {
	s.LastPos = s.Pos
	s.Pos = newPos
}

// PosDelta returns the rig's displacement over the last frame.
func (s *State) PosDelta() mgl32.Vec3 {
	return s.Pos.Sub(s.LastPos)
}
