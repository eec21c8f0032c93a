package plotter

import "plotstudio/geom"

// Mock is a pure in-memory Plotter used for tests and offline
// visualization. It records exactly what a hardware adapter would record
// and never fails.
type Mock struct {
	rec Recorder
}

// NewMock creates a mock plotter at the origin with the pen up.
func NewMock() *Mock {
	return &Mock{}
}

// PenUp raises the pen.
func (m *Mock) PenUp() error {
	m.rec.SetPen(Up)
	return nil
}

// PenDown lowers the pen.
func (m *Mock) PenDown() error {
	m.rec.SetPen(Down)
	return nil
}

// SetPenState sets the pen state directly.
func (m *Mock) SetPenState(s PenState) error {
	m.rec.SetPen(s)
	return nil
}

// MoveTo records a move to the offset-adjusted position.
func (m *Mock) MoveTo(p geom.Vec2) error {
	m.rec.Move(p)
	return nil
}

// LineTo lowers the pen and moves.
func (m *Mock) LineTo(p geom.Vec2) error {
	m.rec.SetPen(Down)
	m.rec.Move(p)
	return nil
}

// Pos returns the current device-true position.
func (m *Mock) Pos() geom.Vec2 {
	return m.rec.Pos()
}

// State returns the current pen state.
func (m *Mock) State() PenState {
	return m.rec.State()
}

// Path returns the recorded motion history.
func (m *Mock) Path() []Segment {
	return m.rec.Path()
}

// SetAlignmentOffsets sets the additive position correction.
func (m *Mock) SetAlignmentOffsets(v geom.Vec2) {
	m.rec.SetAlignmentOffsets(v)
}

// ResetAlignmentOffsets clears the position correction.
func (m *Mock) ResetAlignmentOffsets() {
	m.rec.ResetAlignmentOffsets()
}
