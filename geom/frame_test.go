package geom

import (
	"errors"
	"math"
	"testing"
)

func TestNewFrameDegenerate(t *testing.T) {
	_, err := NewFrame(V(3, 4), V(1, 1), V(1, 1))
	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("coincident corners: got %v, want ErrDegenerateGeometry", err)
	}
}

func TestRotationRecovery(t *testing.T) {
	// The supplied diagonal matches the unrotated diagonal exactly, so
	// the recovered rotation must be zero.
	f, err := NewFrame(V(3, 4), V(0, 0), V(3, 4))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(f.Angle()) > 1e-12 {
		t.Errorf("Angle() = %v, want 0", f.Angle())
	}
}

func TestDistanceCorrection(t *testing.T) {
	// Same direction, wrong distance: the end corner is pulled back to
	// the diagonal length sqrt(3^2+4^2) = 5.
	f, err := NewFrame(V(3, 4), V(0, 0), V(6, 8))
	if err != nil {
		t.Fatal(err)
	}
	if !f.End.Eq(V(3, 4)) {
		t.Errorf("End = %+v, want (3,4)", f.End)
	}
	if !f.SpecifiedEnd.Eq(V(6, 8)) {
		t.Errorf("SpecifiedEnd = %+v, want the caller's (6,8)", f.SpecifiedEnd)
	}
	if got := f.End.Distance(f.Start); math.Abs(got-5) > 1e-12 {
		t.Errorf("corrected diagonal = %v, want 5", got)
	}
}

func TestKnownRotationAngles(t *testing.T) {
	tests := []struct {
		name      string
		size      Vec2
		start     Vec2
		end       Vec2
		wantAngle float64
	}{
		{"unrotated", V(2, 1), V(0, 0), V(2, 1), 0},
		{"90 degrees", V(2, 1), V(0, 0), V(-1, 2), math.Pi / 2},
		{"45 degrees square", V(1, 1), V(0, 0), V(0, math.Sqrt2), math.Pi / 4},
		{"translated only", V(2, 1), V(5, 5), V(7, 6), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFrame(tt.size, tt.start, tt.end)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(f.Angle()-tt.wantAngle) > 1e-9 {
				t.Errorf("Angle() = %v, want %v", f.Angle(), tt.wantAngle)
			}
		})
	}
}

func TestLocalToGlobal(t *testing.T) {
	// A square rotated 45 degrees: local (1,0) lands on the diagonal
	// direction at unit distance from start.
	f, err := NewFrame(V(1, 1), V(2, 3), V(2, 3+math.Sqrt2))
	if err != nil {
		t.Fatal(err)
	}
	inv := math.Sqrt2 / 2
	if got := f.LocalToGlobal(V(1, 0)); !got.EqTol(V(2+inv, 3+inv), 1e-9) {
		t.Errorf("LocalToGlobal(1,0) = %+v, want (%v,%v)", got, 2+inv, 3+inv)
	}
	if got := f.LocalToGlobal(V(0, 0)); !got.Eq(V(2, 3)) {
		t.Errorf("LocalToGlobal(0,0) = %+v, want the start corner", got)
	}
}

func TestRoundTrip(t *testing.T) {
	frames := []struct {
		name  string
		size  Vec2
		start Vec2
		end   Vec2
	}{
		{"unrotated", V(3, 4), V(0, 0), V(3, 4)},
		{"rotated", V(3, 4), V(1, 2), V(-2, 5)},
		{"rotated scaled end", V(2, 2), V(-1, -1), V(5, 8)},
		{"tiny", V(0.01, 0.02), V(0.5, 0.5), V(0.51, 0.52)},
	}
	points := []Vec2{V(0, 0), V(1, 0), V(0, 1), V(2.5, -3.25), V(-10, 7)}

	for _, fr := range frames {
		t.Run(fr.name, func(t *testing.T) {
			f, err := NewFrame(fr.size, fr.start, fr.end)
			if err != nil {
				t.Fatal(err)
			}
			for _, p := range points {
				back, err := f.GlobalToLocal(f.LocalToGlobal(p))
				if err != nil {
					t.Fatalf("GlobalToLocal: %v", err)
				}
				if !back.EqTol(p, 1e-9) {
					t.Errorf("round trip of %+v = %+v", p, back)
				}
			}
		})
	}
}

func TestContainsGlobalLooseness(t *testing.T) {
	// A 2x1 canvas rotated by atan2(2,1)-atan2(1,2) (a 3-4-5 rotation,
	// cos=0.8 sin=0.6). The containment test covers the bbox of start and
	// end, which both includes points outside the rotated rectangle and
	// misses rectangle corners outside the bbox; the loose semantics are
	// intentional.
	f, err := NewFrame(V(2, 1), V(0, 0), V(1, 2))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center of bbox", V(0.5, 1), true},
		{"in bbox but outside rotated rect", V(0.9, 0.1), true},
		{"rotated rect corner outside bbox", V(-0.6, 0.8), false},
		{"outside bbox", V(1.5, 0.5), false},
		{"start corner", V(0, 0), true},
		{"end corner", V(1, 2), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ContainsGlobal(tt.p); got != tt.want {
				t.Errorf("ContainsGlobal(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBoundsOrdering(t *testing.T) {
	// End can sit below/left of start; Bounds still returns min <= max.
	f, err := NewFrame(V(3, 4), V(0, 0), V(-3, -4))
	if err != nil {
		t.Fatal(err)
	}
	min, max := f.Bounds()
	if !min.Eq(V(-3, -4)) || !max.Eq(V(0, 0)) {
		t.Errorf("Bounds() = %+v, %+v, want (-3,-4), (0,0)", min, max)
	}
	if !f.ContainsGlobal(V(-1, -2)) {
		t.Error("point inside the reordered bbox should be contained")
	}
}

func TestCorners(t *testing.T) {
	f, err := NewFrame(V(2, 1), V(1, 1), V(3, 2))
	if err != nil {
		t.Fatal(err)
	}
	c := f.Corners()
	if !c[0].Eq(V(1, 1)) {
		t.Errorf("corner 0 = %+v, want the start corner", c[0])
	}
	if !c[2].EqTol(f.End, 1e-9) {
		t.Errorf("corner 2 = %+v, want the derived end %+v", c[2], f.End)
	}
}
