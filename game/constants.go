package game

const (
	// DefaultDeadzone is the stick magnitude below which input is treated as
	// imperfect centering rather than movement intent.
	DefaultDeadzone = float32(0.15)
	// DefaultMoveSpeed is measured in length units per frame, tuned for a
	// 60 Hz refresh cadence (roughly 3 units per second).
	DefaultMoveSpeed = float32(0.05)
	// DefaultEyeOffset places the viewer's eye level above detected ground.
	DefaultEyeOffset = float32(1.6)
	// DefaultSmoothing is the per-frame lerp factor applied to the rig's
	// vertical position while following ground.
	DefaultSmoothing = float32(0.2)

	ProbeOriginLift  = float32(5)
	ProbeFarRange    = float32(20)
	ObstacleFarRange = float32(1.0)
	ProximityRange   = float32(4.0)

	DefaultScaleAmplitude   = float32(0.25)
	DefaultScalePeriodTicks = 60

	DefaultRefreshRate = 60
)
