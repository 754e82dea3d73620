package geometry

import "github.com/alexiusacademia/gobridge/internal/drawing"

// CrossSection builds the deck cross-section detail view under the
// secondary scale: slab, kerbs, railings and the carriageway centerline.
// The x axis is the transverse offset from the bridge centerline, which
// has no chainage of its own, so offsets map through the detail scale
// directly.
func (b *Builder) CrossSection() ([]drawing.Primitive, error) {
	cfg, ctx := b.cfg, b.ctx

	topY := ctx.VPosDetail(cfg.RoadTopLevel)
	sofY := ctx.VPosDetail(cfg.SoffitLevel)
	if topY <= sofY {
		return nil, &GeometryError{Element: "deck cross-section", Reason: "road top level is not above soffit level"}
	}

	halfDeck := ctx.ScaleDetail(cfg.DeckWidth() / 2)
	halfCw := ctx.ScaleDetail(cfg.CarriagewayWidth / 2)

	prims := []drawing.Primitive{
		drawing.Rect(drawing.LayerConcrete, pt(-halfDeck, topY), pt(halfDeck, sofY)),
		drawing.Hatch(drawing.LayerHatchConc, "ANSI31",
			pt(-halfDeck, topY), pt(halfDeck, topY), pt(halfDeck, sofY), pt(-halfDeck, sofY)),
		drawing.Line(drawing.LayerAxisCenter,
			pt(0, sofY-ctx.ScaleDetail(0.5)), pt(0, topY+ctx.ScaleDetail(1.0))),
	}

	kerbTopY := ctx.VPosDetail(cfg.RoadTopLevel + cfg.KerbDepth)
	if cfg.KerbWidth > 0 && cfg.KerbDepth > 0 {
		prims = append(prims,
			drawing.Rect(drawing.LayerConcrete, pt(-halfDeck, kerbTopY), pt(-halfCw, topY)),
			drawing.Rect(drawing.LayerConcrete, pt(halfCw, kerbTopY), pt(halfDeck, topY)),
		)
	}

	if cfg.RailingHeight > 0 {
		railY := ctx.VPosDetail(cfg.RoadTopLevel + cfg.KerbDepth + cfg.RailingHeight)
		for _, x := range []float64{-(halfDeck + halfCw) / 2, (halfDeck + halfCw) / 2} {
			prims = append(prims,
				drawing.Line(drawing.LayerSteel, pt(x, kerbTopY), pt(x, railY)),
				drawing.Line(drawing.LayerSteel,
					pt(x-ctx.ScaleDetail(cfg.KerbWidth/2), railY),
					pt(x+ctx.ScaleDetail(cfg.KerbWidth/2), railY)),
			)
		}
	}

	return prims, nil
}
