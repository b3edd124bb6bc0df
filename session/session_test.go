package session

import (
	"math"
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stride-xr/stride/event"
	"github.com/stride-xr/stride/input"
	"github.com/stride-xr/stride/locomotion"
	"github.com/stride-xr/stride/scene"
)

func approxEqual(t *testing.T, got, want, tol float32, field string) {
	t.Helper()
	if math.Abs(float64(got-want)) > float64(tol) {
		t.Fatalf("%s = %.6f, want %.6f (tol=%.6f)", field, got, want, tol)
	}
}

func terrainController(spawn mgl32.Vec3) *locomotion.Controller {
	c := locomotion.NewController(locomotion.NewState(spawn), locomotion.DefaultOptions(),
		locomotion.VariantGroundSnapProbeAhead)
	c.Walkable = scene.NewSet(scene.NewBox("floor", cube.Box(-50, -0.1, -50, 50, 0, 50)))
	return c
}

func TestSessionMovesRigForward(t *testing.T) {
	ctrl := terrainController(mgl32.Vec3{0, 1.6, 0})
	sess := New(nil, input.Stick{Y: -1, Connected: true}, nil, ctrl)

	for i := 0; i < 20; i++ {
		sess.Update()
	}

	if sess.Frame() != 20 {
		t.Fatalf("frame = %d, want 20", sess.Frame())
	}
	// Forward stick with the identity orientation walks toward -Z at
	// MoveSpeed per frame.
	approxEqual(t, ctrl.State().Pos.Z(), -1, 1e-4, "Z after 20 frames")
	approxEqual(t, ctrl.State().Pos.Y(), 1.6, 1e-4, "height on flat floor")
}

func TestSessionNilDeviceStaysPut(t *testing.T) {
	ctrl := terrainController(mgl32.Vec3{0, 1.6, 3})
	sess := New(nil, nil, nil, ctrl)

	for i := 0; i < 5; i++ {
		sess.Update()
	}
	approxEqual(t, ctrl.State().Pos.Z(), 3, 1e-6, "Z without device")
}

func TestSessionRecordsEvents(t *testing.T) {
	ctrl := terrainController(mgl32.Vec3{0, 1.6, 0})
	sess := New(nil, input.Stick{Y: -1, Connected: true}, nil, ctrl)

	sess.Update()
	events, err := sess.Recorder().Events()
	if err != nil {
		t.Fatalf("Events: %v", err)
	}

	var snaps, moves int
	for _, ev := range events {
		switch e := ev.(type) {
		case event.GroundSnapEvent:
			snaps++
		case event.MoveEvent:
			moves++
			if !e.Confirmed {
				t.Fatal("move over flat floor should be confirmed")
			}
		}
	}
	if snaps != 1 || moves != 1 {
		t.Fatalf("recorded snaps=%d moves=%d, want 1 and 1", snaps, moves)
	}
}

func TestSessionOrientationSteersMovement(t *testing.T) {
	ctrl := terrainController(mgl32.Vec3{0, 1.6, 0})
	yawed := mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	sess := New(nil, input.Stick{Y: -1, Connected: true}, func() mgl32.Quat { return yawed }, ctrl)

	for i := 0; i < 20; i++ {
		sess.Update()
	}
	approxEqual(t, ctrl.State().Pos.X(), -1, 1e-4, "X after yawed walk")
	approxEqual(t, ctrl.State().Pos.Z(), 0, 1e-4, "Z after yawed walk")
}

func TestSessionSetDeviceSwapsInput(t *testing.T) {
	ctrl := terrainController(mgl32.Vec3{0, 1.6, 0})
	sess := New(nil, nil, nil, ctrl)

	for i := 0; i < 5; i++ {
		sess.Update()
	}
	approxEqual(t, ctrl.State().Pos.Z(), 0, 1e-6, "Z before a device is tracked")

	sess.SetDevice(input.Stick{Y: -1, Connected: true})
	for i := 0; i < 10; i++ {
		sess.Update()
	}
	approxEqual(t, ctrl.State().Pos.Z(), -0.5, 1e-4, "Z after the swapped-in device walks")
}
