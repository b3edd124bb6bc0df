package main

import (
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"github.com/stride-xr/stride/game"
	"github.com/stride-xr/stride/locomotion"
	"github.com/stride-xr/stride/scene"
	"github.com/stride-xr/stride/session"
)

// stick walks the rig toward the target, pauses inside the trigger range,
// then retreats.
type stick struct {
	start time.Time
}

func (s *stick) Tracked() bool {
	return true
}

func (s *stick) Axes() (float32, float32, bool) {
	elapsed := time.Since(s.start)
	switch {
	case elapsed < 3*time.Second:
		return 0, -1, true
	case elapsed < 5*time.Second:
		return 0, 0, true
	default:
		return 0, 1, true
	}
}

// The following program approaches a proximity target headlessly and logs
// the near/far transitions and the pulsing scale effect.
func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	sc := scene.New("proximity-demo")
	sc.Spawn = mgl32.Vec3{0, game.DefaultEyeOffset, 8}
	sc.Walkable.Add(scene.NewBox("floor", cube.Box(-12, -0.1, -12, 12, 0, 12)))
	sc.Targets = append(sc.Targets, scene.NewTarget("beacon", mgl32.Vec3{0, 1, 0}, 1))

	state := locomotion.NewState(sc.Spawn)
	ctrl := locomotion.NewController(state, locomotion.DefaultOptions(),
		locomotion.VariantGroundSnapOnly, locomotion.VariantProximityTrigger)
	ctrl.Walkable = sc.Walkable
	ctrl.Target = sc.Target()

	sess := session.New(logger, &stick{start: time.Now()}, nil, ctrl)

	ticker := time.NewTicker(time.Second / game.DefaultRefreshRate)
	defer ticker.Stop()

	for frame := 0; frame < 9*game.DefaultRefreshRate; frame++ {
		<-ticker.C
		sess.Update()

		if frame%game.DefaultRefreshRate == 0 {
			pos := ctrl.State().Pos
			logger.Infof("rig at (%.2f, %.2f, %.2f), target scale %.3f, material %d",
				pos.X(), pos.Y(), pos.Z(), sc.Target().Scale(), sc.Target().Material())
		}
	}
	logger.Infof("recorded %d frame events", sess.Recorder().Len())
}
