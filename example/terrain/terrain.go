package main

import (
	"context"
	"os"
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"github.com/stride-xr/stride/game"
	"github.com/stride-xr/stride/locomotion"
	"github.com/stride-xr/stride/scene"
	"github.com/stride-xr/stride/session"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// stick pushes forward for a while, then releases, so the rig walks up the
// steps and onto the ramp before settling.
type stick struct {
	start time.Time
}

func (s *stick) Tracked() bool {
	return true
}

func (s *stick) Axes() (float32, float32, bool) {
	if time.Since(s.start) < 6*time.Second {
		return 0, -1, true
	}
	return 0, 0, true
}

// The following program walks a rig across a small terrain course headlessly
// and logs the ground-following behavior.
func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	if os.Getenv("PPROF_ENABLED") != "" {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	sc := scene.New("terrain-course")
	sc.Spawn = mgl32.Vec3{0, game.DefaultEyeOffset, 3}
	sc.Walkable.Add(
		scene.NewBox("floor", cube.Box(-10, -0.1, -10, 10, 0, 10)),
		scene.NewBox("step-1", cube.Box(-10, 0, -12, 10, 0.2, -10)),
		scene.NewBox("step-2", cube.Box(-10, 0, -14, 10, 0.4, -12)),
		scene.NewTriangle("ramp",
			mgl32.Vec3{-10, 0.4, -14},
			mgl32.Vec3{10, 0.4, -14},
			mgl32.Vec3{0, 2.4, -20},
		),
	)

	state := locomotion.NewState(sc.Spawn)
	ctrl := locomotion.NewController(state, locomotion.DefaultOptions(), locomotion.VariantGroundSnapProbeAhead)
	ctrl.Walkable = sc.Walkable
	ctrl.Options.Debugf = logger.Debugf

	sess := session.New(logger, &stick{start: time.Now()}, nil, ctrl)

	ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()
	sess.Run(ctx, game.DefaultRefreshRate)

	pos := ctrl.State().Pos
	logger.Infof("finished at (%.2f, %.2f, %.2f), height %.3f, %d frames, %d events",
		pos.X(), pos.Y(), pos.Z(), ctrl.State().Height, sess.Frame(), sess.Recorder().Len())
}
