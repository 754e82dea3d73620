// Package compose lays out the elevation, plan and cross-section views on
// the shared document canvas. Placement offsets are deterministic
// functions of the computed bridge extents, so re-running with identical
// parameters yields byte-identical geometry.
package compose

import (
	"github.com/alexiusacademia/gobridge/internal/drawing"
	"github.com/alexiusacademia/gobridge/internal/params"
	"github.com/alexiusacademia/gobridge/internal/transform"
)

// spacingRatio fixes the gap between views as a share of the scaled
// bridge extent.
const spacingRatio = 0.25

// Layout holds the canvas origin of each view. Geometry is built in
// view-local coordinates and translated by these origins.
type Layout struct {
	Elevation transform.Point
	Plan      transform.Point
	Section   transform.Point
	Title     transform.Point
}

// Arrange computes the view origins for a bridge: elevation at the base
// of the canvas, plan below it at a spacing proportional to the scaled
// horizontal extent, and the cross-section detail beside the elevation.
func Arrange(cfg *params.Bridge, ctx *transform.Context) Layout {
	width := ctx.HPos(cfg.RightChainage()) - ctx.HPos(cfg.LeftChainage)
	spacing := width * spacingRatio

	elevationBottom := ctx.VPos(cfg.FoundingLevel)
	planHalfWidth := ctx.Scale(cfg.DeckWidth() / 2)

	plan := transform.Point{
		X: 0,
		Y: elevationBottom - spacing - planHalfWidth,
	}
	section := transform.Point{
		X: width + spacing,
		Y: 0,
	}
	title := transform.Point{
		X: width + spacing,
		Y: plan.Y - planHalfWidth,
	}
	return Layout{
		Elevation: transform.Point{},
		Plan:      plan,
		Section:   section,
		Title:     title,
	}
}

// Place translates a view's primitives by its origin and appends them to
// the document in order.
func Place(doc *drawing.Document, origin transform.Point, prims []drawing.Primitive) error {
	for _, p := range prims {
		if err := doc.AddPrimitive(p.Translate(origin.X, origin.Y)); err != nil {
			return err
		}
	}
	return nil
}

// PlaceDimensions translates dimension records by a view origin and
// appends them to the document.
func PlaceDimensions(doc *drawing.Document, origin transform.Point, dims []drawing.Dimension) error {
	for _, d := range dims {
		if err := doc.AddDimension(d.Translate(origin.X, origin.Y)); err != nil {
			return err
		}
	}
	return nil
}
