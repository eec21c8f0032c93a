package objects

import (
	"math"

	"plotstudio/geom"
	"plotstudio/plotter"
)

// BrushCleaner is a circular fixture (a water container with a paper
// towel next to it) the brush gets dipped into between colors.
type BrushCleaner struct {
	pos    geom.Vec2
	radius float64
}

// NewBrushCleaner places a cleaner of the given radius at a global point.
func NewBrushCleaner(pos geom.Vec2, radius float64) *BrushCleaner {
	return &BrushCleaner{pos: pos, radius: radius}
}

// Pos returns the fixture center.
func (b *BrushCleaner) Pos() geom.Vec2 {
	return b.pos
}

// Radius returns the fixture radius.
func (b *BrushCleaner) Radius() float64 {
	return b.radius
}

// Clean runs the scripted dipping motion: raise the brush, enter the
// cleaner, lower it, swirl it around a small circle, raise it again.
//
// The swirl visits ten points stepped by 2*pi/5, so five distinct angles
// are traced twice. The brush is left at the cleaner with the pen up; the
// pre-routine position and pen state are not restored.
func (b *BrushCleaner) Clean(p plotter.Plotter) error {
	if err := p.PenUp(); err != nil {
		return err
	}
	if err := p.MoveTo(b.pos); err != nil {
		return err
	}
	if err := p.PenDown(); err != nil {
		return err
	}

	for i := 0; i < 10; i++ {
		angle := float64(i) / 5 * 2 * math.Pi
		dip := geom.V(math.Cos(angle), math.Sin(angle)).Mul(b.radius * 0.3)
		if err := p.MoveTo(b.pos.Add(dip)); err != nil {
			return err
		}
	}

	return p.PenUp()
}

// Verbs returns the cleaner verb set.
func (b *BrushCleaner) Verbs() map[string]Verb {
	return map[string]Verb{
		"clean": func(p plotter.Plotter) Routine {
			return func(args ...float64) error {
				return b.Clean(p)
			}
		},
	}
}

// Contains always reports false: the cleaner is never a targetable
// region, only a fixture verbs act on.
func (b *BrushCleaner) Contains(p geom.Vec2) bool {
	return false
}

// Bounds returns the square around the fixture circle.
func (b *BrushCleaner) Bounds() (min, max geom.Vec2) {
	r := geom.V(b.radius, b.radius)
	return b.pos.Sub(r), b.pos.Add(r)
}

// DebugDraw renders the fixture circle.
func (b *BrushCleaner) DebugDraw(s Sketcher) {
	s.Fixture(b.pos, b.radius)
}
