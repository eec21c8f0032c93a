package render

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gogpu/gg"

	"plotstudio/geom"
	"plotstudio/objects"
	"plotstudio/plotter"
)

// WritePNG renders the recorded path and the objects' debug overlays as a
// PNG image: pen-down segments solid black, pen-up travels dashed red.
func (v Preview) WritePNG(w io.Writer, path []plotter.Segment, objs []objects.Drawable) error {
	uw, uh := v.size()
	width := int(math.Ceil(uw * v.Scale))
	height := int(math.Ceil(uh * v.Scale))
	if width <= 0 || height <= 0 {
		return fmt.Errorf("empty working area %gx%g", uw, uh)
	}

	dc := gg.NewContext(width, height)
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	sk := &pngSketcher{v: v, dc: dc}
	for _, obj := range objs {
		obj.DebugDraw(sk)
	}
	if err := sk.err; err != nil {
		return err
	}

	for _, seg := range path {
		if seg.Pen == plotter.Down {
			dc.ClearDash()
			dc.SetRGB(0, 0, 0)
			dc.SetLineWidth(2)
		} else {
			dc.SetDash(6, 6)
			dc.SetRGBA(1, 0, 0, 0.5)
			dc.SetLineWidth(1.5)
		}
		x1, y1 := sk.px(seg.From)
		x2, y2 := sk.px(seg.To)
		dc.DrawLine(x1, y1, x2, y2)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke segment: %w", err)
		}
	}

	return dc.EncodePNG(w)
}

// SavePNG renders to a PNG file.
func (v Preview) SavePNG(name string, path []plotter.Segment, objs []objects.Drawable) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create preview: %w", err)
	}
	defer f.Close()
	return v.WritePNG(f, path, objs)
}

// pngSketcher draws object overlays onto a gg context.
type pngSketcher struct {
	v   Preview
	dc  *gg.Context
	err error
}

// px maps a global device point to pixel coordinates.
func (s *pngSketcher) px(p geom.Vec2) (x, y float64) {
	ux, uy := s.v.project(p)
	return ux * s.v.Scale, uy * s.v.Scale
}

func (s *pngSketcher) polygon(pts []geom.Vec2) {
	if len(pts) == 0 {
		return
	}
	x, y := s.px(pts[0])
	s.dc.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = s.px(p)
		s.dc.LineTo(x, y)
	}
	s.dc.ClosePath()
}

func (s *pngSketcher) stroke() {
	if err := s.dc.Stroke(); err != nil && s.err == nil {
		s.err = fmt.Errorf("stroke overlay: %w", err)
	}
}

// Outline draws a solid blue object outline.
func (s *pngSketcher) Outline(pts []geom.Vec2) {
	s.dc.ClearDash()
	s.dc.SetRGB(0, 0, 1)
	s.dc.SetLineWidth(2)
	s.polygon(pts)
	s.stroke()
}

// Guide draws a dashed red reference polygon.
func (s *pngSketcher) Guide(pts []geom.Vec2) {
	s.dc.SetDash(6, 6)
	s.dc.SetRGB(1, 0, 0)
	s.dc.SetLineWidth(1)
	s.polygon(pts)
	s.stroke()
}

// Fixture draws a filled circle with a red edge.
func (s *pngSketcher) Fixture(center geom.Vec2, radius float64) {
	x, y := s.px(center)
	s.dc.ClearDash()
	s.dc.SetRGBA(1, 0.8, 0.8, 1)
	s.dc.DrawCircle(x, y, radius*s.v.Scale)
	if err := s.dc.FillPreserve(); err != nil && s.err == nil {
		s.err = fmt.Errorf("fill fixture: %w", err)
	}
	s.dc.SetRGB(1, 0, 0)
	s.dc.SetLineWidth(2)
	s.stroke()
}
