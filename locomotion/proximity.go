package locomotion

import (
	"github.com/chewxy/math32"
	"github.com/stride-xr/stride/scene"
)

// proximityTrigger tracks the rig's distance to the target object every
// frame. Crossing inside the proximity range (strictly; the boundary itself
// counts as far) flips the near flag, swaps the target material once per
// transition edge, and drives a continuous pulsing scale while near.
type proximityTrigger struct{}

func (proximityTrigger) name() string {
	return "proximity_trigger"
}

func (proximityTrigger) tick(ctx *frameContext) {
	c := ctx.c
	if c.Target == nil {
		return
	}

	dist := c.Target.Pos().Sub(ctx.state.Pos).Len()
	ctx.targetDistance = dist

	near := dist < c.Options.ProximityRange
	if near != ctx.state.Near {
		ctx.state.Near = near
		ctx.nearChanged = true
		if near {
			c.Target.SetMaterial(scene.MaterialHighlight)
			c.debugf("proximity: entered range at distance %v", dist)
		} else {
			c.Target.SetMaterial(scene.MaterialIdle)
			c.Target.ResetScale()
			c.debugf("proximity: left range at distance %v", dist)
		}
	}

	if ctx.state.Near {
		pulse(c, ctx.state.Tick)
	}
}

// pulse oscillates the target scale around its base, one full cycle per
// ScalePeriodTicks frames.
func pulse(c *Controller, tick uint64) {
	period := c.Options.ScalePeriodTicks
	if period <= 0 {
		return
	}

	phase := float32(tick%uint64(period)) / float32(period)
	factor := 1 + c.Options.ScaleAmplitude*math32.Sin(2*math32.Pi*phase)
	c.Target.SetScale(c.Target.BaseScale() * factor)
}
