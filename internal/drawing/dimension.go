package drawing

import "github.com/alexiusacademia/gobridge/internal/transform"

// Dimension records a measured distance between two anchor points on the
// drawing plane. Offset places the dimension line relative to the anchors
// (positive above/right, negative below/left). Label is the rendered
// text; when derived from geometry it equals the real-world distance
// between the anchors with the view scale divided out, never the raw
// drawing-plane distance.
type Dimension struct {
	A      transform.Point
	B      transform.Point
	Offset float64
	Label  string
}

// Translate returns a copy of the dimension shifted by (dx, dy).
func (d Dimension) Translate(dx, dy float64) Dimension {
	d.A = transform.Point{X: d.A.X + dx, Y: d.A.Y + dy}
	d.B = transform.Point{X: d.B.X + dx, Y: d.B.Y + dy}
	return d
}
