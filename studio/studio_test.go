package studio

import (
	"errors"
	"testing"

	"plotstudio/geom"
	"plotstudio/objects"
	"plotstudio/plotter"
)

func testCanvas(t *testing.T) *objects.Canvas {
	t.Helper()
	c, err := objects.NewCanvas(geom.V(3, 4), geom.V(0, 0), geom.V(3, 4))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestAddAutoNames(t *testing.T) {
	s := New(plotter.NewMock())

	if got := s.Add(testCanvas(t), ""); got != "ptobj0" {
		t.Errorf("first auto name = %q, want ptobj0", got)
	}
	if got := s.Add(objects.NewBrushCleaner(geom.V(5, 1), 0.5), ""); got != "ptobj1" {
		t.Errorf("second auto name = %q, want ptobj1", got)
	}
	if got := s.Add(testCanvas(t), "canvas"); got != "canvas" {
		t.Errorf("explicit name = %q, want canvas", got)
	}

	if s.Object("ptobj0") == nil || s.Object("canvas") == nil {
		t.Error("registered objects must be retrievable")
	}
	if s.Object("nope") != nil {
		t.Error("unknown name must return nil")
	}

	want := []string{"ptobj0", "ptobj1", "canvas"}
	got := s.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestResolve(t *testing.T) {
	m := plotter.NewMock()
	s := New(m)
	s.Add(testCanvas(t), "canvas")

	routine, err := s.Resolve("canvas", "draw_line")
	if err != nil {
		t.Fatal(err)
	}
	if err := routine(0, 0, 1, 1); err != nil {
		t.Fatal(err)
	}
	if len(m.Path()) != 2 {
		t.Errorf("routine recorded %d segments, want 2", len(m.Path()))
	}
}

func TestResolveUnknown(t *testing.T) {
	s := New(plotter.NewMock())
	s.Add(testCanvas(t), "canvas")

	if _, err := s.Resolve("nope", "draw_line"); !errors.Is(err, ErrUnknownVerb) {
		t.Errorf("unknown object: got %v, want ErrUnknownVerb", err)
	}
	if _, err := s.Resolve("canvas", "nope"); !errors.Is(err, ErrUnknownVerb) {
		t.Errorf("unknown verb: got %v, want ErrUnknownVerb", err)
	}
}

func TestResolveToken(t *testing.T) {
	m := plotter.NewMock()
	s := New(m)
	s.Add(testCanvas(t), "canvas")
	s.Add(objects.NewBrushCleaner(geom.V(5, 1), 0.5), "cleaner")

	routine, err := s.ResolveToken("canvas_draw_line")
	if err != nil {
		t.Fatal(err)
	}
	if err := routine(0, 0, 1, 1); err != nil {
		t.Fatal(err)
	}

	if _, err := s.ResolveToken("unknown_verb"); !errors.Is(err, ErrUnknownVerb) {
		t.Errorf("got %v, want ErrUnknownVerb", err)
	}
	if _, err := s.ResolveToken("canvas"); !errors.Is(err, ErrUnknownVerb) {
		t.Errorf("token without verb: got %v, want ErrUnknownVerb", err)
	}
}

func TestResolveTokenLongestPrefix(t *testing.T) {
	s := New(plotter.NewMock())
	s.Add(testCanvas(t), "left")
	s.Add(testCanvas(t), "left_canvas")

	// The longer registered name wins, so names containing underscores
	// resolve instead of shadowing each other.
	if _, err := s.ResolveToken("left_canvas_draw_line"); err != nil {
		t.Errorf("underscored object name: %v", err)
	}
	if _, err := s.ResolveToken("left_draw_line"); err != nil {
		t.Errorf("short object name: %v", err)
	}
}

func TestSessionID(t *testing.T) {
	a, b := New(plotter.NewMock()), New(plotter.NewMock())
	if a.Session() == "" || a.Session() == b.Session() {
		t.Errorf("sessions must be unique and non-empty, got %q and %q", a.Session(), b.Session())
	}
}
