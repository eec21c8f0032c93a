// Package render is the read-only visualization consumer of the plotter
// path and the studio objects: it draws each recorded segment as a solid
// line (pen down) or a dashed line (pen up) together with the objects'
// debug overlays, to PNG for on-screen checks and to PDF for
// paper-accurate previews.
package render

import (
	"plotstudio/geom"
)

// Preview describes the viewport of a rendered preview.
type Preview struct {
	// Min and Max are the working-area bounding box in plotter units.
	Min, Max geom.Vec2

	// Scale is the PNG resolution in pixels per plotter unit.
	Scale float64
}

// NewPreview creates a preview over a working area at 100 px/unit.
func NewPreview(min, max geom.Vec2) Preview {
	return Preview{Min: min, Max: max, Scale: 100}
}

// size returns the viewport size in plotter units.
func (v Preview) size() (w, h float64) {
	return v.Max.X - v.Min.X, v.Max.Y - v.Min.Y
}

// project maps a global device point into viewport units. Device y grows
// downward, matching both image and PDF conventions, so no flip is needed.
func (v Preview) project(p geom.Vec2) (x, y float64) {
	return p.X - v.Min.X, p.Y - v.Min.Y
}
