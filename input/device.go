package input

// Device is the adapter for a spatial input device polled once per frame.
// Hosts bridge their XR/gamepad layer behind this; the sampler never fails
// on a misbehaving device, it just reports no input.
type Device interface {
	// Tracked reports whether this is the designated, currently tracked
	// device for locomotion.
	Tracked() bool
	// Axes returns the two stick axis values in [-1, 1]. ok is false when
	// the axis data is absent or malformed.
	Axes() (x, y float32, ok bool)
}

// Stick is a trivial Device backed by plain values, used by tests and the
// headless examples.
type Stick struct {
	X, Y      float32
	Connected bool
}

func (s Stick) Tracked() bool {
	return s.Connected
}

func (s Stick) Axes() (float32, float32, bool) {
	return s.X, s.Y, true
}
