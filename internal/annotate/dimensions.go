// Package annotate derives dimension records and title-block text from
// the parameter set and computed geometry. Every derived label is the
// real-world distance between the anchors, with the view scale divided
// out; raw drawing-plane distances never appear in labels.
package annotate

import (
	"strconv"
	"strings"

	"github.com/alexiusacademia/gobridge/internal/drawing"
	"github.com/alexiusacademia/gobridge/internal/params"
	"github.com/alexiusacademia/gobridge/internal/transform"
)

// FormatLength renders a real-world length for a dimension label: rounded
// to two decimal places with trailing zeros (and a trailing point)
// trimmed, so a 30 m span reads "30", not "30.00".
func FormatLength(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// label derives the dimension text from two drawing-plane anchors under
// the scale in effect for their view.
func label(a, b transform.Point, scale float64) string {
	return FormatLength(transform.RealDistance(a, b, scale))
}

// SpanDimensions produces one dimension per span, anchored at the span
// ends below the founding level.
func SpanDimensions(cfg *params.Bridge, ctx *transform.Context) []drawing.Dimension {
	ends := cfg.SpanEnds()
	dimLevel := cfg.FoundingLevel - 2
	dims := make([]drawing.Dimension, 0, len(ends)-1)
	for i := 0; i < len(ends)-1; i++ {
		a := ctx.MapPoint(ends[i], dimLevel)
		b := ctx.MapPoint(ends[i+1], dimLevel)
		dims = append(dims, drawing.Dimension{
			A: a, B: b, Offset: -ctx.Scale(1), Label: label(a, b, ctx.Primary),
		})
	}
	return dims
}

// OverallDimension produces the overall bridge length dimension, placed
// one tier below the span dimensions.
func OverallDimension(cfg *params.Bridge, ctx *transform.Context) drawing.Dimension {
	dimLevel := cfg.FoundingLevel - 4
	a := ctx.MapPoint(cfg.LeftChainage, dimLevel)
	b := ctx.MapPoint(cfg.RightChainage(), dimLevel)
	return drawing.Dimension{A: a, B: b, Offset: -ctx.Scale(1), Label: label(a, b, ctx.Primary)}
}

// PierDimensions produces cap-width, footing-width and shaft-height
// dimensions for each pier.
func PierDimensions(cfg *params.Bridge, ctx *transform.Context) []drawing.Dimension {
	ends := cfg.SpanEnds()
	if len(ends) <= 2 {
		return nil
	}
	var dims []drawing.Dimension
	for _, ch := range ends[1 : len(ends)-1] {
		capA := ctx.MapPoint(ch-cfg.CapWidth/2, cfg.CapTopLevel)
		capB := ctx.MapPoint(ch+cfg.CapWidth/2, cfg.CapTopLevel)
		dims = append(dims, drawing.Dimension{
			A: capA, B: capB, Offset: ctx.Scale(0.5), Label: label(capA, capB, ctx.Primary),
		})

		footA := ctx.MapPoint(ch-cfg.FootingWidth/2, cfg.FoundingLevel)
		footB := ctx.MapPoint(ch+cfg.FootingWidth/2, cfg.FoundingLevel)
		dims = append(dims, drawing.Dimension{
			A: footA, B: footB, Offset: -ctx.Scale(0.5), Label: label(footA, footB, ctx.Primary),
		})

		shaftA := ctx.MapPoint(ch+cfg.FootingWidth/2, cfg.CapBottomLevel)
		shaftB := ctx.MapPoint(ch+cfg.FootingWidth/2, cfg.FootingTopLevel())
		dims = append(dims, drawing.Dimension{
			A: shaftA, B: shaftB, Offset: ctx.Scale(1), Label: label(shaftA, shaftB, ctx.Primary),
		})
	}
	return dims
}

// SectionDimensions produces the carriageway and overall deck width
// dimensions for the cross-section view, derived under the secondary
// scale.
func SectionDimensions(cfg *params.Bridge, ctx *transform.Context) []drawing.Dimension {
	halfDeck := ctx.ScaleDetail(cfg.DeckWidth() / 2)
	halfCw := ctx.ScaleDetail(cfg.CarriagewayWidth / 2)
	dimY := ctx.VPosDetail(cfg.SoffitLevel) - ctx.ScaleDetail(1)

	deckA := transform.Point{X: -halfDeck, Y: dimY}
	deckB := transform.Point{X: halfDeck, Y: dimY}
	cwA := transform.Point{X: -halfCw, Y: dimY}
	cwB := transform.Point{X: halfCw, Y: dimY}
	return []drawing.Dimension{
		{A: cwA, B: cwB, Offset: -ctx.ScaleDetail(0.5), Label: label(cwA, cwB, ctx.Secondary)},
		{A: deckA, B: deckB, Offset: -ctx.ScaleDetail(1.5), Label: label(deckA, deckB, ctx.Secondary)},
	}
}
