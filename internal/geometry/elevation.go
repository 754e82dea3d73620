package geometry

import (
	"fmt"

	"github.com/alexiusacademia/gobridge/internal/drawing"
)

// Elevation builds the main elevation view: grid, deck slab span by
// span, kerb and railing outlines, approach slabs, piers and abutments.
func (b *Builder) Elevation() ([]drawing.Primitive, error) {
	cfg, ctx := b.cfg, b.ctx

	deckDepth := cfg.RoadTopLevel - cfg.SoffitLevel
	if deckDepth <= 0 {
		return nil, &GeometryError{Element: "deck slab", Reason: "road top level is not above soffit level"}
	}

	prims := b.grid()

	// Deck slab, one rectangle and concrete hatch per span so the span
	// joints stay visible.
	ends := cfg.SpanEnds()
	for i := 0; i < len(ends)-1; i++ {
		a := ctx.MapPoint(ends[i], cfg.RoadTopLevel)
		c := ctx.MapPoint(ends[i+1], cfg.SoffitLevel)
		prims = append(prims,
			drawing.Rect(drawing.LayerConcrete, a, c),
			drawing.Hatch(drawing.LayerHatchConc, "ANSI31",
				ctx.MapPoint(ends[i], cfg.RoadTopLevel),
				ctx.MapPoint(ends[i+1], cfg.RoadTopLevel),
				ctx.MapPoint(ends[i+1], cfg.SoffitLevel),
				ctx.MapPoint(ends[i], cfg.SoffitLevel)),
		)
	}

	prims = append(prims, b.deckFurniture()...)
	prims = append(prims, b.approachSlabs()...)

	for _, ch := range b.pierChainages() {
		pier, err := b.pierElevation(ch)
		if err != nil {
			return nil, err
		}
		prims = append(prims, pier...)
	}

	left, err := b.abutmentElevation(cfg.LeftChainage, -1)
	if err != nil {
		return nil, err
	}
	right, err := b.abutmentElevation(cfg.RightChainage(), +1)
	if err != nil {
		return nil, err
	}
	prims = append(prims, left...)
	prims = append(prims, right...)

	return prims, nil
}

// deckFurniture draws the kerb and railing outlines above the deck.
// Zero-valued kerb or railing parameters mean the element is absent.
func (b *Builder) deckFurniture() []drawing.Primitive {
	cfg, ctx := b.cfg, b.ctx
	var prims []drawing.Primitive

	left, right := cfg.LeftChainage, cfg.RightChainage()
	kerbTop := cfg.RoadTopLevel + cfg.KerbDepth

	if cfg.KerbDepth > 0 {
		prims = append(prims,
			drawing.Line(drawing.LayerDetails, ctx.MapPoint(left, kerbTop), ctx.MapPoint(right, kerbTop)),
			drawing.Line(drawing.LayerDetails, ctx.MapPoint(left, cfg.RoadTopLevel), ctx.MapPoint(left, kerbTop)),
			drawing.Line(drawing.LayerDetails, ctx.MapPoint(right, cfg.RoadTopLevel), ctx.MapPoint(right, kerbTop)),
		)
	}

	if cfg.RailingHeight > 0 {
		railTop := kerbTop + cfg.RailingHeight
		prims = append(prims,
			drawing.Line(drawing.LayerSteel, ctx.MapPoint(left, railTop), ctx.MapPoint(right, railTop)))
		// Posts at a fixed 2 m real-world spacing, end posts included.
		const postSpacing = 2.0
		for ch := left; ch <= right; ch += postSpacing {
			prims = append(prims,
				drawing.Line(drawing.LayerSteel, ctx.MapPoint(ch, kerbTop), ctx.MapPoint(ch, railTop)))
		}
	}

	return prims
}

// approachSlabs draws the approach slabs butting against both abutments.
func (b *Builder) approachSlabs() []drawing.Primitive {
	cfg, ctx := b.cfg, b.ctx
	if cfg.ApproachSlabLength <= 0 || cfg.ApproachSlabThickness <= 0 {
		return nil
	}
	top, bottom := cfg.RoadTopLevel, cfg.RoadTopLevel-cfg.ApproachSlabThickness
	left, right := cfg.LeftChainage, cfg.RightChainage()
	return []drawing.Primitive{
		drawing.Rect(drawing.LayerConcrete,
			ctx.MapPoint(left-cfg.ApproachSlabLength, top), ctx.MapPoint(left, bottom)),
		drawing.Rect(drawing.LayerConcrete,
			ctx.MapPoint(right, top), ctx.MapPoint(right+cfg.ApproachSlabLength, bottom)),
	}
}

// grid draws the chainage/level reference grid with labels. A zero
// increment disables the corresponding grid direction.
func (b *Builder) grid() []drawing.Primitive {
	cfg, ctx := b.cfg, b.ctx
	var prims []drawing.Primitive

	left, right := cfg.LeftChainage, cfg.RightChainage()
	topLevel := cfg.RoadTopLevel + cfg.KerbDepth + cfg.RailingHeight

	if cfg.GridYIncrement > 0 {
		for level := cfg.Datum; level <= topLevel; level += cfg.GridYIncrement {
			prims = append(prims,
				drawing.Line(drawing.LayerGridMajor,
					ctx.MapPoint(left-cfg.GridXIncrement, level),
					ctx.MapPoint(right+cfg.GridXIncrement, level)),
				drawing.Text(drawing.LayerTextSmall, fmt.Sprintf("RL %.2f", level),
					ctx.MapPoint(left-3*cfg.GridXIncrement, level), 2.0, 0),
			)
		}
	}

	if cfg.GridXIncrement > 0 {
		for ch := left; ch <= right; ch += cfg.GridXIncrement {
			prims = append(prims,
				drawing.Line(drawing.LayerGridMinor,
					ctx.MapPoint(ch, cfg.Datum), ctx.MapPoint(ch, topLevel)),
				drawing.Text(drawing.LayerTextSmall, fmt.Sprintf("Ch %.0f", ch),
					ctx.MapPoint(ch, cfg.Datum-cfg.GridYIncrement), 2.0, 90),
			)
		}
	}

	return prims
}
