package geometry

import (
	"fmt"

	"github.com/alexiusacademia/gobridge/internal/drawing"
)

// pierElevation builds one pier in elevation: cap rectangle, battered
// shaft faces, footing rectangle and the pier centerline.
func (b *Builder) pierElevation(ch float64) ([]drawing.Primitive, error) {
	cfg, ctx := b.cfg, b.ctx

	capDepth := cfg.CapTopLevel - cfg.CapBottomLevel
	if capDepth <= 0 {
		return nil, &GeometryError{
			Element: fmt.Sprintf("pier cap at chainage %g", ch),
			Reason:  "cap top level is not above cap bottom level",
		}
	}

	shaftHeight := cfg.CapBottomLevel - cfg.FootingTopLevel()
	if shaftHeight <= 0 {
		return nil, &GeometryError{
			Element: fmt.Sprintf("pier at chainage %g", ch),
			Reason:  "cap bottom level is not above footing top",
		}
	}

	// Shaft widens from the configured top width toward the footing at
	// the batter ratio (1 horizontal : BatterRatio vertical, each face).
	halfTop := cfg.PierTopWidth / 2
	halfBottom := halfTop + shaftHeight/cfg.BatterRatio
	if halfTop <= 0 || halfBottom <= 0 {
		return nil, &GeometryError{
			Element: fmt.Sprintf("pier at chainage %g", ch),
			Reason:  "shaft width is not positive after batter adjustment",
		}
	}

	footTop := cfg.FootingTopLevel()
	halfFoot := cfg.FootingWidth / 2
	if halfBottom > halfFoot {
		return nil, &GeometryError{
			Element: fmt.Sprintf("pier footing at chainage %g", ch),
			Reason:  "shaft bottom is wider than the footing",
		}
	}

	halfCap := cfg.CapWidth / 2
	prims := []drawing.Primitive{
		// Cap
		drawing.Rect(drawing.LayerConcrete,
			ctx.MapPoint(ch-halfCap, cfg.CapTopLevel),
			ctx.MapPoint(ch+halfCap, cfg.CapBottomLevel)),
		// Shaft faces
		drawing.Line(drawing.LayerConcrete,
			ctx.MapPoint(ch-halfTop, cfg.CapBottomLevel),
			ctx.MapPoint(ch-halfBottom, footTop)),
		drawing.Line(drawing.LayerConcrete,
			ctx.MapPoint(ch+halfTop, cfg.CapBottomLevel),
			ctx.MapPoint(ch+halfBottom, footTop)),
		// Footing
		drawing.Rect(drawing.LayerFoundation,
			ctx.MapPoint(ch-halfFoot, footTop),
			ctx.MapPoint(ch+halfFoot, cfg.FoundingLevel)),
		// Centerline, extended past cap top and founding level
		drawing.Line(drawing.LayerAxisCenter,
			ctx.MapPoint(ch, cfg.CapTopLevel+0.5),
			ctx.MapPoint(ch, cfg.FoundingLevel-0.5)),
	}
	return prims, nil
}

// pierPlan builds one pier in plan: the cap outline across the deck and
// the footing outline, both skew-rotated about the plan reference point.
func (b *Builder) pierPlan(ch float64, rotate func(p drawing.Primitive) drawing.Primitive) []drawing.Primitive {
	cfg, ctx := b.cfg, b.ctx

	halfDeck := ctx.Scale(cfg.DeckWidth() / 2)
	halfCap := cfg.CapWidth / 2
	capRect := drawing.Rect(drawing.LayerConcrete,
		pt(ctx.HPos(ch-halfCap), -halfDeck),
		pt(ctx.HPos(ch+halfCap), halfDeck))

	halfFootW := cfg.FootingWidth / 2
	halfFootL := ctx.Scale(cfg.FootingLength / 2)
	footRect := drawing.Rect(drawing.LayerFoundation,
		pt(ctx.HPos(ch-halfFootW), -halfFootL),
		pt(ctx.HPos(ch+halfFootW), halfFootL))

	return []drawing.Primitive{rotate(capRect), rotate(footRect)}
}
