package geom

import (
	"errors"
	"math"
)

var (
	// ErrDegenerateGeometry is returned when the two canvas corners
	// coincide and no diagonal direction can be determined.
	ErrDegenerateGeometry = errors.New("degenerate geometry: canvas corners coincide")

	// ErrSingularTransform is returned when the rotation matrix cannot
	// be inverted. It should be unreachable for frames built by NewFrame.
	ErrSingularTransform = errors.New("singular transform: rotation matrix not invertible")
)

// Frame maps points between a canvas-local coordinate system and global
// device coordinates. A frame is a rotated rectangle of known size placed
// somewhere on the machine bed: the local origin sits at Start and the
// local axes follow the rectangle's edges.
//
// The rotation is derived from two opposite corners and the nominal size.
// The corner positions and the size can disagree about the diagonal length,
// so End is recomputed to lie at the size's diagonal distance from Start
// along the direction of the caller-supplied end point.
//
// A Frame is immutable after construction.
type Frame struct {
	// Size is the nominal width and height of the rectangle.
	Size Vec2
	// Start is the global position of the local origin corner.
	Start Vec2
	// End is the global position of the opposite corner, re-derived so
	// that its distance from Start matches Size's diagonal.
	End Vec2
	// SpecifiedEnd is the caller-supplied end corner, kept for reference
	// and debugging only; all mapping uses the re-derived End.
	SpecifiedEnd Vec2

	angle       float64
	rotation    Mat2
	translation Vec2
}

// NewFrame builds a frame from the rectangle size and the global positions
// of two opposite corners. It returns ErrDegenerateGeometry when the
// corners coincide.
func NewFrame(size, start, end Vec2) (*Frame, error) {
	vecToEnd := end.Sub(start)
	if vecToEnd.Length() == 0 {
		return nil, ErrDegenerateGeometry
	}

	// Rescale the end corner so its distance from start matches the
	// declared size; the caller's corner only fixes the direction.
	diag := math.Hypot(size.X, size.Y)
	trueEnd := start.Add(vecToEnd.Normalize().Mul(diag))

	// The diagonal of an unrotated rectangle of this size would sit at
	// atan2(h, w). Whatever angle remains is the rectangle's rotation.
	angle := math.Atan2(trueEnd.Y-start.Y, trueEnd.X-start.X) - math.Atan2(size.Y, size.X)

	return &Frame{
		Size:         size,
		Start:        start,
		End:          trueEnd,
		SpecifiedEnd: end,
		angle:        angle,
		rotation:     Rotation(angle),
		translation:  start,
	}, nil
}

// Angle returns the frame's rotation in radians.
func (f *Frame) Angle() float64 {
	return f.angle
}

// LocalToGlobal maps a point in the frame's local coordinates to global
// device coordinates.
func (f *Frame) LocalToGlobal(p Vec2) Vec2 {
	return f.rotation.Apply(p).Add(f.translation)
}

// GlobalToLocal maps a global device point into the frame's local
// coordinates. It returns ErrSingularTransform if the rotation matrix is
// not invertible, which cannot happen for a frame built by NewFrame.
func (f *Frame) GlobalToLocal(p Vec2) (Vec2, error) {
	inv, ok := f.rotation.Inverse()
	if !ok {
		return Vec2{}, ErrSingularTransform
	}
	return inv.Apply(p.Sub(f.translation)), nil
}

// Bounds returns the axis-aligned bounding box spanned by Start and the
// re-derived End corner.
func (f *Frame) Bounds() (min, max Vec2) {
	min = Vec2{X: math.Min(f.Start.X, f.End.X), Y: math.Min(f.Start.Y, f.End.Y)}
	max = Vec2{X: math.Max(f.Start.X, f.End.X), Y: math.Max(f.Start.Y, f.End.Y)}
	return min, max
}

// ContainsGlobal reports whether a global point lies inside the frame's
// axis-aligned bounding box. This is deliberately a bbox test, not a
// rotated-rectangle test: it can report true for points outside the
// rotated rectangle but inside its bbox. Callers use it as a cheap filter.
func (f *Frame) ContainsGlobal(p Vec2) bool {
	min, max := f.Bounds()
	return min.X <= p.X && p.X <= max.X && min.Y <= p.Y && p.Y <= max.Y
}

// Corners returns the four global corners of the rotated rectangle in
// local winding order: (0,0), (w,0), (w,h), (0,h).
func (f *Frame) Corners() [4]Vec2 {
	return [4]Vec2{
		f.LocalToGlobal(Vec2{}),
		f.LocalToGlobal(Vec2{X: f.Size.X}),
		f.LocalToGlobal(Vec2{X: f.Size.X, Y: f.Size.Y}),
		f.LocalToGlobal(Vec2{Y: f.Size.Y}),
	}
}
