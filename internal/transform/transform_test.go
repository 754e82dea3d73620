package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHPosVPos(t *testing.T) {
	ctx := NewContext(2, 4, 0, 100, 10)

	assert.Equal(t, 0.0, ctx.HPos(10))
	assert.Equal(t, 40.0, ctx.HPos(30))
	assert.Equal(t, 0.0, ctx.VPos(100))
	assert.Equal(t, 13.0, ctx.VPos(106.5))

	assert.Equal(t, 80.0, ctx.HPosDetail(30))
	assert.Equal(t, 26.0, ctx.VPosDetail(106.5))
}

func TestInverseRoundTrip(t *testing.T) {
	ctx := NewContext(2.5, 0.5, 0, 98.25, 12.75)

	for _, v := range []float64{-50, 0, 12.75, 30.1, 98.25, 1234.5678} {
		assert.InDelta(t, v, ctx.InvHPos(ctx.HPos(v)), 1e-9)
		assert.InDelta(t, v, ctx.InvVPos(ctx.VPos(v)), 1e-9)
		assert.InDelta(t, v, ctx.InvHPosDetail(ctx.HPosDetail(v)), 1e-9)
		assert.InDelta(t, v, ctx.InvVPosDetail(ctx.VPosDetail(v)), 1e-9)
	}
}

func TestNewContextRejectsNonPositiveScale(t *testing.T) {
	require.Panics(t, func() { NewContext(0, 1, 0, 0, 0) })
	require.Panics(t, func() { NewContext(1, -2, 0, 0, 0) })
}

func TestRotateAboutZeroSkewIsExact(t *testing.T) {
	ctx := NewContext(1, 1, 0, 0, 0)
	p := Point{X: 123.456, Y: -7.89}
	got := ctx.RotateAbout(p, Point{X: 45, Y: 0})

	// Bit-for-bit identical, not merely close: zero skew takes no trig path.
	assert.Equal(t, p, got)
}

func TestRotateAboutSkew(t *testing.T) {
	ctx := NewContext(1, 1, 20, 0, 0)
	center := Point{}
	p := ctx.RotateAbout(Point{X: 1, Y: 0}, center)

	rad := 20 * math.Pi / 180
	assert.InDelta(t, math.Cos(rad), p.X, 1e-12)
	assert.InDelta(t, math.Sin(rad), p.Y, 1e-12)
}

func TestSkewPreservesSpanLength(t *testing.T) {
	// Two span-end chainages 30 apart must stay 30 apart along the
	// skewed alignment, whatever the skew angle.
	ctx := NewContext(1, 1, 20, 100, 0)
	center := Point{X: ctx.HPos(45), Y: 0}

	a := ctx.RotateAbout(Point{X: ctx.HPos(30), Y: 0}, center)
	b := ctx.RotateAbout(Point{X: ctx.HPos(60), Y: 0}, center)

	assert.InDelta(t, 30, RealDistance(a, b, ctx.Primary), 1e-9)

	unrotA := Point{X: ctx.HPos(30), Y: 0}
	assert.NotEqual(t, unrotA, a)
}

func TestRealDistanceIndependentOfScale(t *testing.T) {
	for _, scale := range []float64{0.5, 1, 100, 1000} {
		ctx := NewContext(scale, scale, 0, 100, 0)
		a := ctx.MapPoint(10, 102)
		b := ctx.MapPoint(40, 102)
		assert.InDelta(t, 30, RealDistance(a, b, ctx.Primary), 1e-9)
	}
}

func TestTransformIsDeterministic(t *testing.T) {
	ctx := NewContext(3.7, 1.3, 15, 101.55, 7.25)
	p := Point{X: 19.125, Y: 3.875}
	center := Point{X: 50, Y: 0}

	first := ctx.RotateAbout(p, center)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, ctx.RotateAbout(p, center))
		assert.Equal(t, ctx.HPos(p.X), ctx.HPos(p.X))
	}
}
