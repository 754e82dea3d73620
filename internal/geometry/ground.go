package geometry

import (
	"github.com/alexiusacademia/gobridge/internal/drawing"
	"github.com/alexiusacademia/gobridge/internal/params"
	"github.com/alexiusacademia/gobridge/internal/transform"
)

// GroundLine renders the survey profile as a polyline through the
// transformed survey points, clipped to the bridge's horizontal extent.
// An empty or fully out-of-extent profile yields no primitives; that is
// not an error.
func (b *Builder) GroundLine(profile params.Profile) []drawing.Primitive {
	if profile.Len() < 2 {
		return nil
	}
	cfg, ctx := b.cfg, b.ctx
	clipped := clipProfile(profile.Points(), cfg.LeftChainage, cfg.RightChainage())
	if len(clipped) < 2 {
		return nil
	}

	pts := make([]transform.Point, len(clipped))
	for i, sp := range clipped {
		pts[i] = ctx.MapPoint(sp.Chainage, sp.Level)
	}
	return []drawing.Primitive{drawing.Polyline(drawing.LayerGroundLine, false, pts...)}
}

// clipProfile keeps the survey rows inside [left, right] and inserts
// interpolated boundary points where the profile crosses either edge.
func clipProfile(points []params.SurveyPoint, left, right float64) []params.SurveyPoint {
	var out []params.SurveyPoint
	for i, p := range points {
		if i > 0 {
			prev := points[i-1]
			// Entering the extent from the left.
			if prev.Chainage < left && p.Chainage > left {
				out = append(out, interpolate(prev, p, left))
			}
			// Leaving the extent to the right.
			if prev.Chainage < right && p.Chainage > right {
				out = append(out, interpolate(prev, p, right))
			}
		}
		if p.Chainage >= left && p.Chainage <= right {
			out = append(out, p)
		}
	}
	return out
}

func interpolate(a, b params.SurveyPoint, ch float64) params.SurveyPoint {
	t := (ch - a.Chainage) / (b.Chainage - a.Chainage)
	return params.SurveyPoint{
		Chainage: ch,
		Level:    a.Level + t*(b.Level-a.Level),
	}
}
