package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/alexiusacademia/gobridge/internal/drawing"
	"github.com/alexiusacademia/gobridge/internal/transform"
)

// SVG serializes a finalized document as an SVG image. Drawing-plane
// coordinates are written out unaltered (as floating point path data);
// only the Y axis is mirrored, since SVG grows downward while the drawing
// plane grows upward.
type SVG struct {
	// Margin is the blank border around the drawing extent, in drawing
	// units. Zero means the default of 10.
	Margin float64
}

func (s SVG) margin() float64 {
	if s.Margin > 0 {
		return s.Margin
	}
	return 10
}

// Render writes the document to w. Primitives are emitted in draw order.
func (s SVG) Render(w io.Writer, doc *drawing.Document) error {
	if !doc.Finalized() {
		return ErrNotFinalized
	}

	min, max := doc.Bounds()
	m := s.margin()
	width := max.X - min.X + 2*m
	height := max.Y - min.Y + 2*m

	// Map a drawing point onto the SVG canvas: shift by the extent, flip Y.
	mapX := func(x float64) float64 { return x - min.X + m }
	mapY := func(y float64) float64 { return max.Y - y + m }

	canvas := svg.New(w)
	canvas.Startview(int(math.Ceil(width)), int(math.Ceil(height)), 0, 0, int(math.Ceil(width)), int(math.Ceil(height)))

	for _, p := range doc.Primitives() {
		layer, ok := doc.Layer(p.Layer)
		if !ok {
			canvas.End()
			return &drawing.LayerConsistencyError{Layer: p.Layer, Reason: "primitive references unregistered layer"}
		}
		style := strokeStyle(layer, p.Style)

		switch p.Kind {
		case drawing.KindLine, drawing.KindPolyline:
			canvas.Path(pathData(p.Points, p.Closed, mapX, mapY), style)
		case drawing.KindCircle:
			c := p.Points[0]
			canvas.Path(circlePath(mapX(c.X), mapY(c.Y), p.Radius), style)
		case drawing.KindArc:
			canvas.Path(arcPath(p, mapX, mapY), style)
		case drawing.KindHatch:
			canvas.Path(pathData(p.Points, true, mapX, mapY), hatchStyle(layer))
		case drawing.KindText:
			at := p.Points[0]
			canvas.Gtransform(fmt.Sprintf("translate(%g,%g) rotate(%g)", mapX(at.X), mapY(at.Y), -p.Rotation))
			canvas.Text(0, 0, p.Text, textStyle(layer, p.TextHeight))
			canvas.Gend()
		}
	}

	for _, d := range doc.Dimensions() {
		s.renderDimension(canvas, doc, d, mapX, mapY)
	}

	canvas.End()
	return nil
}

// renderDimension draws the dimension line offset from its anchors, the
// extension ticks and the centered label.
func (s SVG) renderDimension(canvas *svg.SVG, doc *drawing.Document, d drawing.Dimension, mapX, mapY func(float64) float64) {
	layer, ok := doc.Layer(drawing.LayerDimensions)
	if !ok {
		layer = drawing.Layer{Name: drawing.LayerDimensions, Color: 6, LineWeight: 0.18, LineType: "CONTINUOUS"}
	}
	style := strokeStyle(layer, nil)

	// Offset perpendicular to the anchor pair.
	dx, dy := d.B.X-d.A.X, d.B.Y-d.A.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*d.Offset, dx/length*d.Offset
	a := transform.Point{X: d.A.X + nx, Y: d.A.Y + ny}
	b := transform.Point{X: d.B.X + nx, Y: d.B.Y + ny}

	canvas.Path(pathData([]transform.Point{a, b}, false, mapX, mapY), style)
	canvas.Path(pathData([]transform.Point{d.A, a}, false, mapX, mapY), style)
	canvas.Path(pathData([]transform.Point{d.B, b}, false, mapX, mapY), style)

	mid := transform.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	canvas.Gtransform(fmt.Sprintf("translate(%g,%g)", mapX(mid.X), mapY(mid.Y)-1))
	canvas.Text(0, 0, d.Label, textStyle(layer, 2.5)+`;text-anchor:middle`)
	canvas.Gend()
}

func pathData(pts []transform.Point, closed bool, mapX, mapY func(float64) float64) string {
	var sb strings.Builder
	for i, pt := range pts {
		if i == 0 {
			fmt.Fprintf(&sb, "M%g,%g", mapX(pt.X), mapY(pt.Y))
		} else {
			fmt.Fprintf(&sb, " L%g,%g", mapX(pt.X), mapY(pt.Y))
		}
	}
	if closed {
		sb.WriteString(" Z")
	}
	return sb.String()
}

func circlePath(cx, cy, r float64) string {
	return fmt.Sprintf("M%g,%g A%g,%g 0 1 0 %g,%g A%g,%g 0 1 0 %g,%g Z",
		cx-r, cy, r, r, cx+r, cy, r, r, cx-r, cy)
}

func arcPath(p drawing.Primitive, mapX, mapY func(float64) float64) string {
	c := p.Points[0]
	start := p.StartAngle * math.Pi / 180
	end := p.EndAngle * math.Pi / 180
	x1 := c.X + p.Radius*math.Cos(start)
	y1 := c.Y + p.Radius*math.Sin(start)
	x2 := c.X + p.Radius*math.Cos(end)
	y2 := c.Y + p.Radius*math.Sin(end)
	large := 0
	if math.Abs(p.EndAngle-p.StartAngle) > 180 {
		large = 1
	}
	// Sweep flag 0 because the Y mirror reverses orientation.
	return fmt.Sprintf("M%g,%g A%g,%g 0 %d 0 %g,%g",
		mapX(x1), mapY(y1), p.Radius, p.Radius, large, mapX(x2), mapY(y2))
}

func strokeStyle(layer drawing.Layer, override *drawing.Style) string {
	color := layer.Color
	weight := layer.LineWeight
	if override != nil {
		if override.Color != 0 {
			color = override.Color
		}
		if override.LineWeight != 0 {
			weight = override.LineWeight
		}
	}
	r, g, b := aciRGB(color)
	style := fmt.Sprintf("fill:none;stroke:rgb(%d,%d,%d);stroke-width:%g", r, g, b, weight)
	if dashes := dashPattern(layer.LineType); dashes != nil {
		parts := make([]string, len(dashes))
		for i, d := range dashes {
			parts[i] = fmt.Sprintf("%g", d)
		}
		style += ";stroke-dasharray:" + strings.Join(parts, ",")
	}
	return style
}

func hatchStyle(layer drawing.Layer) string {
	r, g, b := aciRGB(layer.Color)
	return fmt.Sprintf("fill:rgb(%d,%d,%d);fill-opacity:0.3;stroke:rgb(%d,%d,%d);stroke-width:%g",
		r, g, b, r, g, b, layer.LineWeight)
}

func textStyle(layer drawing.Layer, height float64) string {
	r, g, b := aciRGB(layer.Color)
	return fmt.Sprintf("fill:rgb(%d,%d,%d);font-size:%gpx;font-family:sans-serif", r, g, b, height)
}
