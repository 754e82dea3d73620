package drawing

import "github.com/alexiusacademia/gobridge/internal/transform"

// Kind discriminates the geometric primitive variants.
type Kind int

const (
	KindLine Kind = iota
	KindPolyline
	KindArc
	KindCircle
	KindText
	KindHatch
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindPolyline:
		return "polyline"
	case KindArc:
		return "arc"
	case KindCircle:
		return "circle"
	case KindText:
		return "text"
	case KindHatch:
		return "hatch"
	}
	return "unknown"
}

// Style overrides the layer style for a single primitive. The zero value
// of a field means "inherit from the layer".
type Style struct {
	Color      int
	LineWeight float64
}

// Primitive is one drawable entity, tagged by Kind. Fields beyond Points
// apply only to the kinds that use them. Primitives are immutable once
// created and owned exclusively by the document they are added to; the
// Translate method returns a fresh copy rather than mutating.
type Primitive struct {
	Kind  Kind
	Layer string

	// Points: line has two; polyline and hatch have their vertices;
	// arc, circle and text carry their anchor in Points[0].
	Points []transform.Point

	Radius     float64 // arc, circle
	StartAngle float64 // arc, degrees counter-clockwise from +X
	EndAngle   float64 // arc
	Closed     bool    // polyline

	Text       string  // text
	TextHeight float64 // text
	Rotation   float64 // text, degrees

	Pattern string // hatch pattern name, e.g. ANSI31

	Style *Style
}

// Line builds a two-point line segment on the given layer.
func Line(layer string, a, b transform.Point) Primitive {
	return Primitive{Kind: KindLine, Layer: layer, Points: []transform.Point{a, b}}
}

// Polyline builds an open or closed polyline through the given vertices.
func Polyline(layer string, closed bool, pts ...transform.Point) Primitive {
	return Primitive{Kind: KindPolyline, Layer: layer, Closed: closed, Points: pts}
}

// Rect builds a closed polyline over the axis-aligned rectangle with
// opposite corners a and b.
func Rect(layer string, a, b transform.Point) Primitive {
	return Polyline(layer, true,
		transform.Point{X: a.X, Y: a.Y},
		transform.Point{X: b.X, Y: a.Y},
		transform.Point{X: b.X, Y: b.Y},
		transform.Point{X: a.X, Y: b.Y},
	)
}

// Arc builds a circular arc about center, angles in degrees.
func Arc(layer string, center transform.Point, radius, start, end float64) Primitive {
	return Primitive{Kind: KindArc, Layer: layer, Points: []transform.Point{center},
		Radius: radius, StartAngle: start, EndAngle: end}
}

// Circle builds a full circle about center.
func Circle(layer string, center transform.Point, radius float64) Primitive {
	return Primitive{Kind: KindCircle, Layer: layer, Points: []transform.Point{center}, Radius: radius}
}

// Text builds a text label anchored at its bottom-left corner.
func Text(layer, s string, at transform.Point, height, rotation float64) Primitive {
	return Primitive{Kind: KindText, Layer: layer, Points: []transform.Point{at},
		Text: s, TextHeight: height, Rotation: rotation}
}

// Hatch builds a closed hatched region with the named fill pattern.
func Hatch(layer, pattern string, pts ...transform.Point) Primitive {
	return Primitive{Kind: KindHatch, Layer: layer, Closed: true, Pattern: pattern, Points: pts}
}

// Translate returns a copy of the primitive shifted by (dx, dy).
func (p Primitive) Translate(dx, dy float64) Primitive {
	out := p
	out.Points = make([]transform.Point, len(p.Points))
	for i, pt := range p.Points {
		out.Points[i] = transform.Point{X: pt.X + dx, Y: pt.Y + dy}
	}
	return out
}
