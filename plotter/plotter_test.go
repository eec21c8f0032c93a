package plotter

import (
	"testing"

	"plotstudio/geom"
)

func TestInitialState(t *testing.T) {
	m := NewMock()
	if m.State() != Up {
		t.Errorf("initial pen state = %v, want up", m.State())
	}
	if !m.Pos().Eq(geom.V(0, 0)) {
		t.Errorf("initial position = %+v, want origin", m.Pos())
	}
	if len(m.Path()) != 0 {
		t.Errorf("initial path has %d segments, want 0", len(m.Path()))
	}
}

func TestPenStateTransitions(t *testing.T) {
	m := NewMock()

	if err := m.PenDown(); err != nil {
		t.Fatal(err)
	}
	if m.State() != Down {
		t.Errorf("after PenDown: state = %v", m.State())
	}

	if err := m.PenUp(); err != nil {
		t.Fatal(err)
	}
	if m.State() != Up {
		t.Errorf("after PenUp: state = %v", m.State())
	}

	if err := m.SetPenState(Down); err != nil {
		t.Fatal(err)
	}
	if m.State() != Down {
		t.Errorf("after SetPenState(Down): state = %v", m.State())
	}
}

func TestMoveToDoesNotChangePenState(t *testing.T) {
	m := NewMock()
	if err := m.MoveTo(geom.V(1, 1)); err != nil {
		t.Fatal(err)
	}
	if m.State() != Up {
		t.Error("MoveTo must not change the pen state")
	}
	if got := m.Path()[0].Pen; got != Up {
		t.Errorf("segment pen state = %v, want up", got)
	}
}

func TestLineToLowersPen(t *testing.T) {
	m := NewMock()
	if err := m.LineTo(geom.V(2, 2)); err != nil {
		t.Fatal(err)
	}
	if m.State() != Down {
		t.Error("LineTo must lower the pen")
	}
	if got := m.Path()[0].Pen; got != Down {
		t.Errorf("segment pen state = %v, want down", got)
	}
}

func TestPathContinuity(t *testing.T) {
	m := NewMock()
	moves := []geom.Vec2{
		geom.V(1, 0), geom.V(1, 1), geom.V(-2, 3), geom.V(0, 0), geom.V(5, 5),
	}
	for i, p := range moves {
		var err error
		if i%2 == 0 {
			err = m.MoveTo(p)
		} else {
			err = m.LineTo(p)
		}
		if err != nil {
			t.Fatal(err)
		}
	}

	path := m.Path()
	if len(path) != len(moves) {
		t.Fatalf("path has %d segments, want %d", len(path), len(moves))
	}
	if !path[0].From.Eq(geom.V(0, 0)) {
		t.Errorf("first segment starts at %+v, want the initial position", path[0].From)
	}
	for i := 1; i < len(path); i++ {
		if !path[i].From.Eq(path[i-1].To) {
			t.Errorf("segment %d: From = %+v, previous To = %+v", i, path[i].From, path[i-1].To)
		}
	}
}

func TestAlignmentOffsetAdditivity(t *testing.T) {
	m := NewMock()
	m.SetAlignmentOffsets(geom.V(0.05, 0.02))

	if err := m.MoveTo(geom.V(1, 1)); err != nil {
		t.Fatal(err)
	}
	want := geom.V(1.05, 1.02)
	if got := m.Path()[0].To; !got.Eq(want) {
		t.Errorf("recorded To = %+v, want %+v", got, want)
	}
	if got := m.Pos(); !got.Eq(want) {
		t.Errorf("Pos() = %+v, want the adjusted position %+v", got, want)
	}

	// The next segment starts where the adjusted move ended.
	m.ResetAlignmentOffsets()
	if err := m.MoveTo(geom.V(2, 2)); err != nil {
		t.Fatal(err)
	}
	seg := m.Path()[1]
	if !seg.From.Eq(want) {
		t.Errorf("segment 1 From = %+v, want %+v", seg.From, want)
	}
	if !seg.To.Eq(geom.V(2, 2)) {
		t.Errorf("after reset: To = %+v, want (2,2)", seg.To)
	}
}

func TestRecorderOffset(t *testing.T) {
	var r Recorder
	if !r.Offset().Eq(geom.V(0, 0)) {
		t.Errorf("default offset = %+v, want zero", r.Offset())
	}
	r.SetAlignmentOffsets(geom.V(0.1, -0.2))
	if !r.Offset().Eq(geom.V(0.1, -0.2)) {
		t.Errorf("Offset() = %+v", r.Offset())
	}
	if got := r.Move(geom.V(1, 1)); !got.Eq(geom.V(1.1, 0.8)) {
		t.Errorf("Move returned %+v, want the adjusted position", got)
	}
	r.ResetAlignmentOffsets()
	if !r.Offset().Eq(geom.V(0, 0)) {
		t.Errorf("offset after reset = %+v", r.Offset())
	}
}

func TestPenStateString(t *testing.T) {
	if Up.String() != "up" || Down.String() != "down" {
		t.Errorf("String() = %q/%q, want up/down", Up, Down)
	}
}
