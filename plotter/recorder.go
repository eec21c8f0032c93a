package plotter

import "plotstudio/geom"

// Recorder implements the in-memory bookkeeping half of the Plotter
// contract: current position, pen state, the append-only segment log, and
// the alignment offset. Hardware adapters embed it so that the recorded
// path matches what the device was actually told to do.
//
// The initial position is the origin and the initial pen state is Up.
type Recorder struct {
	pos    geom.Vec2
	pen    PenState
	path   []Segment
	offset geom.Vec2
}

// SetPen sets the recorded pen state.
func (r *Recorder) SetPen(s PenState) {
	r.pen = s
}

// Move applies the alignment offset to the requested position, appends a
// segment from the current position under the current pen state, and
// advances the position. It returns the adjusted position, which is what
// a hardware adapter must forward to the device.
func (r *Recorder) Move(p geom.Vec2) geom.Vec2 {
	adjusted := p.Add(r.offset)
	r.path = append(r.path, Segment{From: r.pos, To: adjusted, Pen: r.pen})
	r.pos = adjusted
	return adjusted
}

// Pos returns the current device-true position.
func (r *Recorder) Pos() geom.Vec2 {
	return r.pos
}

// State returns the current pen state.
func (r *Recorder) State() PenState {
	return r.pen
}

// Path returns the recorded motion history. The slice is the live log;
// callers must not modify it.
func (r *Recorder) Path() []Segment {
	return r.path
}

// SetAlignmentOffsets sets the additive position correction.
func (r *Recorder) SetAlignmentOffsets(v geom.Vec2) {
	r.offset = v
}

// ResetAlignmentOffsets clears the position correction.
func (r *Recorder) ResetAlignmentOffsets() {
	r.offset = geom.Vec2{}
}

// Offset returns the active alignment offset.
func (r *Recorder) Offset() geom.Vec2 {
	return r.offset
}
