package render

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gobridge/internal/drawing"
)

// ExportPreview renders a finalized document to a raster or vector image
// for quick review, without going through a CAD viewer. The format
// follows the file extension (.png, .svg, .pdf); anything else gets
// ".png" appended.
func ExportPreview(doc *drawing.Document, title, filename string) error {
	if !doc.Finalized() {
		return ErrNotFinalized
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Drawing X"
	p.Y.Label.Text = "Drawing Y"

	for _, prim := range doc.Primitives() {
		layer, ok := doc.Layer(prim.Layer)
		if !ok {
			return &drawing.LayerConsistencyError{Layer: prim.Layer, Reason: "primitive references unregistered layer"}
		}
		if err := addPrimitive(p, prim, layer); err != nil {
			return err
		}
	}

	for _, d := range doc.Dimensions() {
		dimLine, err := plotter.NewLine(plotter.XYs{
			{X: d.A.X, Y: d.A.Y},
			{X: d.B.X, Y: d.B.Y},
		})
		if err != nil {
			return err
		}
		dimLine.LineStyle.Color = color.RGBA{R: 200, A: 255}
		dimLine.LineStyle.Width = vg.Points(0.5)
		p.Add(dimLine)

		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: (d.A.X + d.B.X) / 2, Y: (d.A.Y+d.B.Y)/2 + d.Offset}},
			Labels: []string{d.Label},
		})
		if err != nil {
			return err
		}
		p.Add(labels)
	}

	ext := filepath.Ext(filename)
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	width := 12 * vg.Inch
	height := 9 * vg.Inch
	switch ext {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

func addPrimitive(p *plot.Plot, prim drawing.Primitive, layer drawing.Layer) error {
	col := layerColor(layer, prim.Style)

	switch prim.Kind {
	case drawing.KindLine, drawing.KindPolyline:
		pts := toXYs(prim)
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Color = col
		line.LineStyle.Width = vg.Points(layer.LineWeight * 2.5)
		if dashes := dashPattern(layer.LineType); dashes != nil {
			line.LineStyle.Dashes = make([]vg.Length, len(dashes))
			for i, d := range dashes {
				line.LineStyle.Dashes[i] = vg.Points(d)
			}
		}
		p.Add(line)

	case drawing.KindCircle, drawing.KindArc:
		arc, err := plotter.NewLine(arcXYs(prim))
		if err != nil {
			return err
		}
		arc.LineStyle.Color = col
		arc.LineStyle.Width = vg.Points(layer.LineWeight * 2.5)
		p.Add(arc)

	case drawing.KindHatch:
		poly, err := plotter.NewPolygon(toXYs(prim))
		if err != nil {
			return err
		}
		r, g, b := aciRGB(layer.Color)
		poly.Color = color.RGBA{R: r, G: g, B: b, A: 60}
		poly.LineStyle.Color = col
		p.Add(poly)

	case drawing.KindText:
		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: prim.Points[0].X, Y: prim.Points[0].Y}},
			Labels: []string{prim.Text},
		})
		if err != nil {
			return err
		}
		p.Add(labels)
	}
	return nil
}

func toXYs(prim drawing.Primitive) plotter.XYs {
	n := len(prim.Points)
	pts := make(plotter.XYs, 0, n+1)
	for _, pt := range prim.Points {
		pts = append(pts, plotter.XY{X: pt.X, Y: pt.Y})
	}
	if prim.Closed && n > 0 {
		pts = append(pts, pts[0])
	}
	return pts
}

// arcXYs approximates a circle or arc with a 64-segment polyline, which
// is plenty for a preview image.
func arcXYs(prim drawing.Primitive) plotter.XYs {
	const segments = 64
	c := prim.Points[0]
	start, end := prim.StartAngle, prim.EndAngle
	if prim.Kind == drawing.KindCircle {
		start, end = 0, 360
	}
	pts := make(plotter.XYs, 0, segments+1)
	for i := 0; i <= segments; i++ {
		a := (start + (end-start)*float64(i)/segments) * math.Pi / 180
		pts = append(pts, plotter.XY{
			X: c.X + prim.Radius*math.Cos(a),
			Y: c.Y + prim.Radius*math.Sin(a),
		})
	}
	return pts
}

func layerColor(layer drawing.Layer, override *drawing.Style) color.Color {
	index := layer.Color
	if override != nil && override.Color != 0 {
		index = override.Color
	}
	r, g, b := aciRGB(index)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
