package geometry

import (
	"fmt"

	"github.com/alexiusacademia/gobridge/internal/drawing"
)

// abutmentElevation builds one abutment in elevation. dir is -1 for the
// left abutment and +1 for the right; the stem and wing extend away from
// the deck in that direction. Wing geometry is derived symmetrically, so
// both abutments mirror each other exactly.
func (b *Builder) abutmentElevation(ch float64, dir float64) ([]drawing.Primitive, error) {
	cfg, ctx := b.cfg, b.ctx

	footTop := cfg.FootingTopLevel()
	height := cfg.SoffitLevel - footTop
	if height <= 0 {
		return nil, &GeometryError{
			Element: fmt.Sprintf("abutment at chainage %g", ch),
			Reason:  "soffit level is not above footing top",
		}
	}

	// Stem: inner face vertical under the deck end, outer face battered
	// away from the bridge.
	outerTop := ch + dir*cfg.AbutmentWidth
	outerBottom := outerTop
	if cfg.AbutmentBatter > 0 {
		outerBottom += dir * height / cfg.AbutmentBatter
	}
	stem := drawing.Polyline(drawing.LayerConcrete, true,
		ctx.MapPoint(ch, cfg.SoffitLevel),
		ctx.MapPoint(outerTop, cfg.SoffitLevel),
		ctx.MapPoint(outerBottom, footTop),
		ctx.MapPoint(ch, footTop),
	)

	// Dirt wall carries the stem up to road level behind the deck.
	dirtWall := drawing.Rect(drawing.LayerConcrete,
		ctx.MapPoint(ch, cfg.RoadTopLevel),
		ctx.MapPoint(outerTop, cfg.SoffitLevel))

	// Footing centered under the stem.
	stemCenter := ch + dir*cfg.AbutmentWidth/2
	halfFoot := cfg.FootingWidth / 2
	footing := drawing.Rect(drawing.LayerFoundation,
		ctx.MapPoint(stemCenter-halfFoot, footTop),
		ctx.MapPoint(stemCenter+halfFoot, cfg.FoundingLevel))

	prims := []drawing.Primitive{stem, dirtWall, footing}

	// Wing wall: top edge falls from road level at the outer face at a
	// fixed 1.5H:1V slope over the configured wing length.
	if cfg.WingWallLength > 0 {
		const wingSlope = 1.5
		wingEnd := outerTop + dir*cfg.WingWallLength
		wingDrop := cfg.WingWallLength / wingSlope
		prims = append(prims,
			drawing.Line(drawing.LayerConcrete,
				ctx.MapPoint(outerTop, cfg.RoadTopLevel),
				ctx.MapPoint(wingEnd, cfg.RoadTopLevel-wingDrop)),
			drawing.Line(drawing.LayerConcrete,
				ctx.MapPoint(wingEnd, cfg.RoadTopLevel-wingDrop),
				ctx.MapPoint(wingEnd, footTop)),
		)
	}

	return prims, nil
}

// abutmentPlan builds one abutment outline in plan.
func (b *Builder) abutmentPlan(ch float64, dir float64, rotate func(p drawing.Primitive) drawing.Primitive) drawing.Primitive {
	cfg, ctx := b.cfg, b.ctx
	halfDeck := ctx.Scale(cfg.DeckWidth() / 2)
	outer := ch + dir*cfg.AbutmentWidth
	return rotate(drawing.Rect(drawing.LayerConcrete,
		pt(ctx.HPos(ch), -halfDeck),
		pt(ctx.HPos(outer), halfDeck)))
}
