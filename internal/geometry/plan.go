package geometry

import (
	"github.com/alexiusacademia/gobridge/internal/drawing"
	"github.com/alexiusacademia/gobridge/internal/transform"
)

// Plan builds the plan view: deck outline, centerline, kerb lines, pier
// caps and footings, and abutment outlines. Every point passes through
// the skew rotation about the bridge midpoint on the centerline, so that
// with a zero skew angle plan coordinates equal the raw transform output
// exactly, and with a non-zero skew true center-to-center span lengths
// are preserved along the rotated alignment.
func (b *Builder) Plan() ([]drawing.Primitive, error) {
	cfg, ctx := b.cfg, b.ctx

	x1 := ctx.HPos(cfg.LeftChainage)
	x2 := ctx.HPos(cfg.RightChainage())
	center := transform.Point{X: (x1 + x2) / 2, Y: 0}

	rotate := func(p drawing.Primitive) drawing.Primitive {
		out := p
		out.Points = make([]transform.Point, len(p.Points))
		for i, pt := range p.Points {
			out.Points[i] = ctx.RotateAbout(pt, center)
		}
		return out
	}

	halfDeck := ctx.Scale(cfg.DeckWidth() / 2)

	prims := []drawing.Primitive{
		rotate(drawing.Rect(drawing.LayerConcrete, pt(x1, -halfDeck), pt(x2, halfDeck))),
		rotate(drawing.Line(drawing.LayerAxisCenter,
			pt(x1-ctx.Scale(2), 0), pt(x2+ctx.Scale(2), 0))),
	}

	if cfg.KerbWidth > 0 {
		halfCw := ctx.Scale(cfg.CarriagewayWidth / 2)
		prims = append(prims,
			rotate(drawing.Line(drawing.LayerDetails, pt(x1, -halfCw), pt(x2, -halfCw))),
			rotate(drawing.Line(drawing.LayerDetails, pt(x1, halfCw), pt(x2, halfCw))),
		)
	}

	for _, ch := range b.pierChainages() {
		prims = append(prims, b.pierPlan(ch, rotate)...)
	}

	prims = append(prims,
		b.abutmentPlan(cfg.LeftChainage, -1, rotate),
		b.abutmentPlan(cfg.RightChainage(), +1, rotate),
	)

	return prims, nil
}
