// Package plotter defines the device capability shared by the real
// hardware adapter and the in-memory mock: pen state, motion primitives,
// the recorded path, and alignment-offset compensation.
package plotter

import "plotstudio/geom"

// PenState reports whether the pen touches the drawing surface.
type PenState int

const (
	// Up means the pen is lifted off the surface.
	Up PenState = iota
	// Down means the pen is in contact with the surface.
	Down
)

// String returns "up" or "down".
func (s PenState) String() string {
	if s == Down {
		return "down"
	}
	return "up"
}

// Segment is one recorded motion, tagged with the pen state that was
// active while moving.
type Segment struct {
	From geom.Vec2
	To   geom.Vec2
	Pen  PenState
}

// Plotter is the device capability every drawable object and the studio
// drive. Implementations are single-owner and not safe for concurrent use.
//
// Hardware-backed implementations surface device I/O failures through the
// returned errors; callers must propagate them, never retry (a retried
// MoveTo would record a duplicate segment).
type Plotter interface {
	// PenUp raises the pen. No-op on hardware already in the up state
	// is implementation-defined; the recorded state always becomes Up.
	PenUp() error
	// PenDown lowers the pen.
	PenDown() error
	// SetPenState sets the pen state directly.
	SetPenState(s PenState) error

	// MoveTo moves to a global position without changing the pen state.
	// It is the sole path-mutating primitive: the alignment offset is
	// applied here, and the adjusted position is what gets recorded and
	// sent to hardware.
	MoveTo(p geom.Vec2) error
	// LineTo lowers the pen and moves to a global position.
	LineTo(p geom.Vec2) error

	// Pos returns the current device-true position. After a MoveTo this
	// is the offset-adjusted position, not the requested one.
	Pos() geom.Vec2
	// State returns the current pen state.
	State() PenState
	// Path returns the full ordered motion history since construction.
	// Callers must treat the returned slice as read-only.
	Path() []Segment

	// SetAlignmentOffsets sets the additive correction applied to every
	// commanded position, compensating for pen re-mounting offsets.
	SetAlignmentOffsets(v geom.Vec2)
	// ResetAlignmentOffsets clears the correction back to zero.
	ResetAlignmentOffsets()
}
