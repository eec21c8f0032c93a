package render

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"plotstudio/geom"
	"plotstudio/objects"
	"plotstudio/plotter"
)

// WritePDF renders the recorded path and object overlays to a PDF page
// sized exactly like the working area, for a paper-accurate preview.
func (v Preview) WritePDF(w io.Writer, path []plotter.Segment, objs []objects.Drawable) error {
	pdf, err := v.buildPDF(path, objs)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// SavePDF renders to a PDF file.
func (v Preview) SavePDF(name string, path []plotter.Segment, objs []objects.Drawable) error {
	pdf, err := v.buildPDF(path, objs)
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(name)
}

func (v Preview) buildPDF(path []plotter.Segment, objs []objects.Drawable) (*gofpdf.Fpdf, error) {
	uw, uh := v.size()
	if uw <= 0 || uh <= 0 {
		return nil, fmt.Errorf("empty working area %gx%g", uw, uh)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "in",
		Size:    gofpdf.SizeType{Wd: uw, Ht: uh},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.AddPage()

	sk := &pdfSketcher{v: v, pdf: pdf}
	for _, obj := range objs {
		obj.DebugDraw(sk)
	}

	for _, seg := range path {
		if seg.Pen == plotter.Down {
			pdf.SetDashPattern([]float64{}, 0)
			pdf.SetDrawColor(0, 0, 0)
			pdf.SetLineWidth(0.02)
			pdf.SetAlpha(1, "Normal")
		} else {
			pdf.SetDashPattern([]float64{0.06, 0.06}, 0)
			pdf.SetDrawColor(255, 0, 0)
			pdf.SetLineWidth(0.01)
			pdf.SetAlpha(0.5, "Normal")
		}
		x1, y1 := v.project(seg.From)
		x2, y2 := v.project(seg.To)
		pdf.Line(x1, y1, x2, y2)
	}
	pdf.SetAlpha(1, "Normal")

	if pdf.Err() {
		return nil, fmt.Errorf("pdf build failed: %v", pdf.Error())
	}
	return pdf, nil
}

// pdfSketcher draws object overlays onto a PDF page in plotter units.
type pdfSketcher struct {
	v   Preview
	pdf *gofpdf.Fpdf
}

func (s *pdfSketcher) polygon(pts []geom.Vec2) {
	points := make([]gofpdf.PointType, len(pts))
	for i, p := range pts {
		points[i].X, points[i].Y = s.v.project(p)
	}
	s.pdf.Polygon(points, "D")
}

// Outline draws a solid blue object outline.
func (s *pdfSketcher) Outline(pts []geom.Vec2) {
	s.pdf.SetDashPattern([]float64{}, 0)
	s.pdf.SetDrawColor(0, 0, 255)
	s.pdf.SetLineWidth(0.02)
	s.polygon(pts)
}

// Guide draws a dashed red reference polygon.
func (s *pdfSketcher) Guide(pts []geom.Vec2) {
	s.pdf.SetDashPattern([]float64{0.06, 0.06}, 0)
	s.pdf.SetDrawColor(255, 0, 0)
	s.pdf.SetLineWidth(0.01)
	s.polygon(pts)
}

// Fixture draws a filled circle with a red edge.
func (s *pdfSketcher) Fixture(center geom.Vec2, radius float64) {
	x, y := s.v.project(center)
	s.pdf.SetDashPattern([]float64{}, 0)
	s.pdf.SetDrawColor(255, 0, 0)
	s.pdf.SetFillColor(255, 204, 204)
	s.pdf.SetLineWidth(0.02)
	s.pdf.Circle(x, y, radius, "FD")
}
