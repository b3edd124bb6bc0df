package locomotion

import "github.com/stride-xr/stride/game"

// Options define controller tuning. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	// MoveSpeed is the horizontal displacement per frame for full stick
	// deflection, in length units.
	MoveSpeed float32
	// EyeOffset is the fixed vertical distance between detected ground and
	// the viewer's eye level.
	EyeOffset float32
	// Smoothing is the per-frame lerp factor used when blending the rig's
	// height toward a detected surface.
	Smoothing float32

	// RequireGround rejects horizontal moves whose look-ahead probe finds no
	// walkable surface, instead of committing the move unconfirmed.
	RequireGround bool

	// ProximityRange is the distance below which the proximity policy
	// considers the rig near its target. The boundary itself counts as far.
	ProximityRange float32

	// ScaleAmplitude and ScalePeriodTicks shape the pulsing scale effect the
	// proximity policy applies to a near target.
	ScaleAmplitude   float32
	ScalePeriodTicks int

	// Debugf receives internal per-frame trace logs for callers that need
	// deep diagnostics.
	Debugf func(format string, args ...any)
}

// DefaultOptions returns the tuning used by the tutorial scenes.
func DefaultOptions() Options {
	return Options{
		MoveSpeed:        game.DefaultMoveSpeed,
		EyeOffset:        game.DefaultEyeOffset,
		Smoothing:        game.DefaultSmoothing,
		ProximityRange:   game.ProximityRange,
		ScaleAmplitude:   game.DefaultScaleAmplitude,
		ScalePeriodTicks: game.DefaultScalePeriodTicks,
	}
}
