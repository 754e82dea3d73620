// Package geometry computes the vertex sets and primitive lists for each
// structural element of the bridge: deck, piers, abutments, footings and
// the optional ground line. All output is in view-local drawing-plane
// coordinates; the view composer translates it onto the shared canvas.
package geometry

import (
	"fmt"

	"github.com/alexiusacademia/gobridge/internal/params"
	"github.com/alexiusacademia/gobridge/internal/transform"
)

// GeometryError reports a computed element that would be degenerate, such
// as a pier shaft of non-positive width. It aborts the current drawing
// request.
type GeometryError struct {
	Element string
	Reason  string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry: %s: %s", e.Element, e.Reason)
}

// Builder derives structural geometry from a validated parameter set and
// a transform context. It holds no mutable state; every method is a pure
// function of its inputs.
type Builder struct {
	cfg *params.Bridge
	ctx *transform.Context
}

// NewBuilder creates a geometry builder. The parameter set must already
// have passed validation.
func NewBuilder(cfg *params.Bridge, ctx *transform.Context) *Builder {
	return &Builder{cfg: cfg, ctx: ctx}
}

// pierChainages returns the chainage of each pier centerline: the
// interior span ends, which is exactly max(NumSpans-1, 0) positions.
func (b *Builder) pierChainages() []float64 {
	ends := b.cfg.SpanEnds()
	if len(ends) <= 2 {
		return nil
	}
	return ends[1 : len(ends)-1]
}

func pt(x, y float64) transform.Point {
	return transform.Point{X: x, Y: y}
}
