package transform

import (
	"fmt"
	"math"
)

// Point is a position on the drawing plane, as opposed to a real-world
// chainage/level pair.
type Point struct {
	X float64
	Y float64
}

// Context maps real-world chainages and reduced levels onto the drawing
// plane. It carries the primary scale used by the main elevation and plan
// views, the secondary scale used by detail views, the skew angle of the
// bridge alignment, and the drawing datum (reference RL) and horizontal
// origin (reference chainage).
//
// A Context is immutable and all of its methods are pure; repeated calls
// with identical inputs return identical results.
type Context struct {
	Primary   float64 // main drawing scale factor
	Secondary float64 // detail/section scale factor
	SkewDeg   float64 // skew angle in degrees
	Datum     float64 // reference reduced level
	Origin    float64 // reference chainage (left edge of the drawing)
}

// NewContext builds a transform context. Non-positive scale factors are a
// programming-contract violation: parameter sets must be validated before
// a context is constructed, so this panics rather than returning an error.
func NewContext(primary, secondary, skewDeg, datum, origin float64) *Context {
	if primary <= 0 || secondary <= 0 {
		panic(fmt.Sprintf("transform: scale factors must be positive (primary=%g, secondary=%g)", primary, secondary))
	}
	return &Context{
		Primary:   primary,
		Secondary: secondary,
		SkewDeg:   skewDeg,
		Datum:     datum,
		Origin:    origin,
	}
}

// HPos maps a chainage to a horizontal drawing coordinate under the
// primary scale.
func (c *Context) HPos(chainage float64) float64 {
	return (chainage - c.Origin) * c.Primary
}

// VPos maps a reduced level to a vertical drawing coordinate under the
// primary scale.
func (c *Context) VPos(level float64) float64 {
	return (level - c.Datum) * c.Primary
}

// HPosDetail and VPosDetail perform the same mapping under the secondary
// scale, used for detail views drawn at a different magnification.
func (c *Context) HPosDetail(chainage float64) float64 {
	return (chainage - c.Origin) * c.Secondary
}

// VPosDetail maps a reduced level under the secondary scale.
func (c *Context) VPosDetail(level float64) float64 {
	return (level - c.Datum) * c.Secondary
}

// Scale converts a real-world length to a drawing-plane length under the
// primary scale.
func (c *Context) Scale(length float64) float64 {
	return length * c.Primary
}

// ScaleDetail converts a real-world length under the secondary scale.
// Used for transverse offsets in cross-section views, which have no
// chainage of their own.
func (c *Context) ScaleDetail(length float64) float64 {
	return length * c.Secondary
}

// InvHPos is the exact inverse of HPos.
func (c *Context) InvHPos(x float64) float64 {
	return x/c.Primary + c.Origin
}

// InvVPos is the exact inverse of VPos.
func (c *Context) InvVPos(y float64) float64 {
	return y/c.Primary + c.Datum
}

// InvHPosDetail is the exact inverse of HPosDetail.
func (c *Context) InvHPosDetail(x float64) float64 {
	return x/c.Secondary + c.Origin
}

// InvVPosDetail is the exact inverse of VPosDetail.
func (c *Context) InvVPosDetail(y float64) float64 {
	return y/c.Secondary + c.Datum
}

// MapPoint maps a (chainage, level) pair onto the drawing plane under the
// primary scale.
func (c *Context) MapPoint(chainage, level float64) Point {
	return Point{X: c.HPos(chainage), Y: c.VPos(level)}
}

// RotateAbout applies the skew correction: p is rotated by the skew angle
// about the given reference point. When the skew angle is zero the input
// is returned unchanged, with no trigonometry involved, so unskewed
// output is bit-for-bit identical to the raw transform.
func (c *Context) RotateAbout(p, center Point) Point {
	if c.SkewDeg == 0 {
		return p
	}
	rad := c.SkewDeg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx := p.X - center.X
	dy := p.Y - center.Y
	return Point{
		X: center.X + dx*cos - dy*sin,
		Y: center.Y + dx*sin + dy*cos,
	}
}

// Distance returns the drawing-plane distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// RealDistance divides the drawing-plane distance between two points by
// the scale in effect for their view, recovering the real-world distance.
// Dimension labels must be derived through this, never from raw
// drawing-plane distances.
func RealDistance(a, b Point, scale float64) float64 {
	return Distance(a, b) / scale
}
