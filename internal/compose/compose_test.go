package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobridge/internal/drawing"
	"github.com/alexiusacademia/gobridge/internal/params"
	"github.com/alexiusacademia/gobridge/internal/transform"
)

func testConfig() (*params.Bridge, *transform.Context) {
	cfg := &params.Bridge{
		NumSpans:         3,
		SpanLength:       30,
		Datum:            95,
		RoadTopLevel:     106.5,
		SoffitLevel:      104,
		FoundingLevel:    95,
		CarriagewayWidth: 7.5,
		KerbWidth:        0.3,
		ScalePrimary:     100,
		ScaleSecondary:   50,
	}
	ctx := transform.NewContext(cfg.ScalePrimary, cfg.ScaleSecondary, 0, cfg.Datum, cfg.LeftChainage)
	return cfg, ctx
}

func TestArrangeIsDeterministic(t *testing.T) {
	cfg, ctx := testConfig()
	first := Arrange(cfg, ctx)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Arrange(cfg, ctx))
	}
}

func TestArrangeSeparatesViews(t *testing.T) {
	cfg, ctx := testConfig()
	layout := Arrange(cfg, ctx)

	assert.Equal(t, transform.Point{}, layout.Elevation)
	// Plan sits below the elevation's lowest point.
	assert.Less(t, layout.Plan.Y, ctx.VPos(cfg.FoundingLevel))
	// Section sits to the right of the elevation's extent.
	assert.Greater(t, layout.Section.X, ctx.HPos(cfg.RightChainage()))
	// Title block below the plan.
	assert.Less(t, layout.Title.Y, layout.Plan.Y)
}

func TestPlaceTranslatesByOrigin(t *testing.T) {
	doc := drawing.NewDocument("t")
	require.NoError(t, doc.RegisterLayers(drawing.DefaultLayers()))

	prims := []drawing.Primitive{
		drawing.Line(drawing.LayerConcrete, transform.Point{X: 1, Y: 2}, transform.Point{X: 3, Y: 4}),
	}
	require.NoError(t, Place(doc, transform.Point{X: 100, Y: -50}, prims))

	got := doc.Primitives()
	require.Len(t, got, 1)
	assert.Equal(t, transform.Point{X: 101, Y: -48}, got[0].Points[0])
	assert.Equal(t, transform.Point{X: 103, Y: -46}, got[0].Points[1])
	// Source slice untouched.
	assert.Equal(t, transform.Point{X: 1, Y: 2}, prims[0].Points[0])
}

func TestPlaceRejectsUnregisteredLayer(t *testing.T) {
	doc := drawing.NewDocument("t")
	err := Place(doc, transform.Point{}, []drawing.Primitive{
		drawing.Line(drawing.LayerConcrete, transform.Point{}, transform.Point{X: 1}),
	})
	assert.Error(t, err)
}

func TestPlaceDimensions(t *testing.T) {
	doc := drawing.NewDocument("t")
	require.NoError(t, doc.RegisterLayers(drawing.DefaultLayers()))

	dims := []drawing.Dimension{{
		A: transform.Point{X: 0, Y: 0}, B: transform.Point{X: 10, Y: 0},
		Offset: -2, Label: "30",
	}}
	require.NoError(t, PlaceDimensions(doc, transform.Point{X: 5, Y: 5}, dims))

	got := doc.Dimensions()
	require.Len(t, got, 1)
	assert.Equal(t, transform.Point{X: 5, Y: 5}, got[0].A)
	assert.Equal(t, transform.Point{X: 15, Y: 5}, got[0].B)
	assert.Equal(t, "30", got[0].Label)
}
