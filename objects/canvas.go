package objects

import (
	"fmt"

	"plotstudio/geom"
	"plotstudio/plotter"
)

// Canvas is a rectangular drawing surface placed somewhere on the machine
// bed, possibly rotated. Drawing commands are given in the canvas's local
// frame and mapped to global device coordinates.
type Canvas struct {
	frame *geom.Frame
}

// NewCanvas creates a canvas from its nominal size and the global
// positions of two opposite corners. See geom.NewFrame for how
// conflicting size/corner information is resolved.
func NewCanvas(size, start, end geom.Vec2) (*Canvas, error) {
	frame, err := geom.NewFrame(size, start, end)
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	return &Canvas{frame: frame}, nil
}

// Frame returns the canvas's coordinate frame.
func (c *Canvas) Frame() *geom.Frame {
	return c.frame
}

// DrawLine draws a straight line between two points given in the canvas's
// local frame: a travel move to the start, then a pen-down line to the end.
func (c *Canvas) DrawLine(p plotter.Plotter, localStart, localEnd geom.Vec2) error {
	globalStart := c.frame.LocalToGlobal(localStart)
	globalEnd := c.frame.LocalToGlobal(localEnd)

	if err := p.MoveTo(globalStart); err != nil {
		return err
	}
	return p.LineTo(globalEnd)
}

// Verbs returns the canvas verb set.
func (c *Canvas) Verbs() map[string]Verb {
	return map[string]Verb{
		"draw_line": func(p plotter.Plotter) Routine {
			return func(args ...float64) error {
				if len(args) != 4 {
					return fmt.Errorf("draw_line: want 4 args (x1 y1 x2 y2), got %d", len(args))
				}
				return c.DrawLine(p, geom.V(args[0], args[1]), geom.V(args[2], args[3]))
			}
		},
	}
}

// Contains reports whether a global point lies in the canvas's
// axis-aligned bounding box (deliberately loose, see geom.Frame).
func (c *Canvas) Contains(p geom.Vec2) bool {
	return c.frame.ContainsGlobal(p)
}

// Bounds returns the bbox spanned by the canvas corners.
func (c *Canvas) Bounds() (min, max geom.Vec2) {
	return c.frame.Bounds()
}

// DebugDraw renders the rotated outline plus its dashed bounding box.
func (c *Canvas) DebugDraw(s Sketcher) {
	corners := c.frame.Corners()
	s.Outline(corners[:])

	// Bbox of the full rotated rectangle, not just start/end.
	min, max := corners[0], corners[0]
	for _, p := range corners[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	s.Guide([]geom.Vec2{
		{X: max.X, Y: min.Y},
		{X: min.X, Y: min.Y},
		{X: min.X, Y: max.Y},
		{X: max.X, Y: max.Y},
	})
}
