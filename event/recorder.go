package event

import "bytes"

// Recorder accumulates encoded events from a session. It is not safe for
// concurrent use; the frame callback is its only writer.
type Recorder struct {
	buf   bytes.Buffer
	count int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Push encodes the given event and appends it to the recording.
func (r *Recorder) Push(ev Event) {
	r.buf.Write(ev.Encode())
	r.count++
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	return r.count
}

// Bytes returns the encoded recording.
func (r *Recorder) Bytes() []byte {
	return r.buf.Bytes()
}

// Events decodes the recording back into typed events.
func (r *Recorder) Events() ([]Event, error) {
	return DecodeEvents(r.buf.Bytes())
}
