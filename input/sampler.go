package input

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stride-xr/stride/game"
)

// Sampler turns raw stick axes into a world-space planar movement direction.
// It is a pure function of the device state and the viewer orientation; a
// nil or untracked device simply yields no movement intent.
type Sampler struct {
	// Deadzone is the per-axis magnitude at or below which stick input is
	// ignored to prevent drift from imperfect centering.
	Deadzone float32
}

// NewSampler creates a sampler with the default deadzone.
func NewSampler() *Sampler {
	return &Sampler{Deadzone: game.DefaultDeadzone}
}

// Sample reads the device and returns a unit-length planar movement vector
// rotated into world space by the viewer orientation. ok is false when there
// is no movement intent: missing/untracked device, malformed axes, both axes
// inside the deadzone, or a direction that degenerates once flattened.
func (s *Sampler) Sample(dev Device, orientation mgl32.Quat) (mgl32.Vec3, bool) {
	if dev == nil || !dev.Tracked() {
		return mgl32.Vec3{}, false
	}

	x, y, ok := dev.Axes()
	if !ok {
		return mgl32.Vec3{}, false
	}
	if math32.Abs(x) <= s.Deadzone && math32.Abs(y) <= s.Deadzone {
		return mgl32.Vec3{}, false
	}

	local := mgl32.Vec3{x, 0, y}
	world := orientation.Rotate(local)
	return game.FlattenVec3(world)
}
