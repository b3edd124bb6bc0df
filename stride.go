// Package stride assembles the locomotion toolkit: a per-frame input
// sampler, a rig locomotion controller with configurable behavior variants,
// and a session tying them to a host render loop.
package stride

import (
	"github.com/sirupsen/logrus"
	"github.com/stride-xr/stride/input"
	"github.com/stride-xr/stride/locomotion"
	"github.com/stride-xr/stride/scene"
	"github.com/stride-xr/stride/session"
	"github.com/stride-xr/stride/settings"
)

// NewSession wires a scene, settings, and a device into a ready-to-run
// session. The rig spawns at the scene's spawn point with the configured
// variants and tuning applied.
func NewSession(log *logrus.Logger, dev input.Device, orientation session.OrientationFunc, sc *scene.Scene, conf settings.Settings) (*session.Session, error) {
	variants, err := conf.Variants()
	if err != nil {
		return nil, err
	}

	state := locomotion.NewState(sc.Spawn)
	ctrl := locomotion.NewController(state, conf.Options(), variants...)
	ctrl.Walkable = sc.Walkable
	ctrl.Obstacles = sc.Obstacles
	ctrl.Target = sc.Target()

	sess := session.New(log, dev, orientation, ctrl)
	if conf.Movement.Deadzone > 0 {
		sess.Sampler().Deadzone = conf.Movement.Deadzone
	}
	return sess, nil
}
