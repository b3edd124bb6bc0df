package session

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"github.com/stride-xr/stride/event"
	"github.com/stride-xr/stride/input"
	"github.com/stride-xr/stride/locomotion"
)

// OrientationFunc supplies the viewer's current orientation, refreshed by
// the host rendering/XR layer every frame.
type OrientationFunc func() mgl32.Quat

// Session glues a device, an input sampler, and a locomotion controller into
// the single per-frame entry point a host render loop calls. It reads
// ambient device and orientation state, so Update takes no parameters and
// returns nothing; all effects are mutations of the rig state and, for the
// proximity variant, of the target object.
type Session struct {
	log *logrus.Logger

	dev         input.Device
	sampler     *input.Sampler
	orientation OrientationFunc

	ctrl *locomotion.Controller
	rec  *event.Recorder

	frame uint64
}

// New creates a session around the given controller. log may be nil to
// disable logging entirely; dev may be nil when the host has no input device
// yet, which degrades to no movement intent.
func New(log *logrus.Logger, dev input.Device, orientation OrientationFunc, ctrl *locomotion.Controller) *Session {
	s := &Session{
		log:         log,
		dev:         dev,
		sampler:     input.NewSampler(),
		orientation: orientation,
		ctrl:        ctrl,
		rec:         event.NewRecorder(),
	}
	if s.orientation == nil {
		s.orientation = func() mgl32.Quat { return mgl32.QuatIdent() }
	}
	return s
}

// Sampler returns the input sampler so hosts can adjust the deadzone.
func (s *Session) Sampler() *input.Sampler {
	return s.sampler
}

// Controller returns the locomotion controller driven by the session.
func (s *Session) Controller() *locomotion.Controller {
	return s.ctrl
}

// Recorder returns the frame-event recording of the session.
func (s *Session) Recorder() *event.Recorder {
	return s.rec
}

// Frame returns the number of frames the session has run.
func (s *Session) Frame() uint64 {
	return s.frame
}

// SetDevice swaps the input device, e.g. when the tracked hand changes.
func (s *Session) SetDevice(dev input.Device) {
	s.dev = dev
}

// Update runs one frame: sample the device, evolve the rig, record what
// happened. It is meant to be called exactly once per rendered frame from a
// single goroutine.
func (s *Session) Update() {
	move, hasMove := s.sampler.Sample(s.dev, s.orientation())
	res := s.ctrl.Update(move, hasMove)
	s.frame++

	now := time.Now().UnixMilli()
	if res.GroundHit {
		s.rec.Push(event.GroundSnapEvent{NopEvent: event.NopEvent{EvTime: now}, Height: res.Height})
	}

	switch res.Outcome {
	case locomotion.OutcomeMoved:
		s.rec.Push(event.MoveEvent{NopEvent: event.NopEvent{EvTime: now}, Pos: res.Position, Confirmed: true})
	case locomotion.OutcomeMovedUnconfirmed:
		s.rec.Push(event.MoveEvent{NopEvent: event.NopEvent{EvTime: now}, Pos: res.Position, Confirmed: false})
		s.debugf("unconfirmed move to %v", res.Position)
	case locomotion.OutcomeBlocked:
		s.rec.Push(event.BlockedEvent{NopEvent: event.NopEvent{EvTime: now}})
		s.debugf("move blocked at %v", res.Position)
	case locomotion.OutcomeRejected:
		s.debugf("move rejected at %v", res.Position)
	}

	if res.NearChanged {
		s.rec.Push(event.ProximityEvent{
			NopEvent: event.NopEvent{EvTime: now},
			Near:     res.Near,
			Distance: res.TargetDistance,
		})
		s.infof("proximity transition: near=%v distance=%.2f", res.Near, res.TargetDistance)
	}
}

func (s *Session) debugf(format string, args ...any) {
	if s.log != nil {
		s.log.Debugf(format, args...)
	}
}

func (s *Session) infof(format string, args ...any) {
	if s.log != nil {
		s.log.Infof(format, args...)
	}
}
