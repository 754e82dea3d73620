package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobridge/internal/drawing"
	"github.com/alexiusacademia/gobridge/internal/transform"
)

func testDocument(t *testing.T) *drawing.Document {
	t.Helper()
	doc := drawing.NewDocument("t")
	require.NoError(t, doc.RegisterLayers(drawing.DefaultLayers()))
	require.NoError(t, doc.AddPrimitive(
		drawing.Line(drawing.LayerConcrete, transform.Point{X: 0, Y: 0}, transform.Point{X: 100, Y: 0})))
	require.NoError(t, doc.AddPrimitive(
		drawing.Rect(drawing.LayerFoundation, transform.Point{X: 10, Y: 10}, transform.Point{X: 40, Y: 30})))
	require.NoError(t, doc.AddPrimitive(
		drawing.Text(drawing.LayerTextSmall, "RL 95.00", transform.Point{X: 5, Y: 50}, 2, 0)))
	require.NoError(t, doc.AddDimension(drawing.Dimension{
		A: transform.Point{X: 0, Y: -5}, B: transform.Point{X: 100, Y: -5},
		Offset: -2, Label: "30",
	}))
	return doc
}

func TestRenderRejectsUnfinalizedDocument(t *testing.T) {
	doc := testDocument(t)

	var sb strings.Builder
	err := SVG{}.Render(&sb, doc)
	assert.ErrorIs(t, err, ErrNotFinalized)
	assert.Empty(t, sb.String())
}

func TestRenderSVGContent(t *testing.T) {
	doc := testDocument(t)
	doc.Finalize()

	var sb strings.Builder
	require.NoError(t, SVG{}.Render(&sb, doc))
	out := sb.String()

	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, "<path")
	// Text primitive and dimension label survive verbatim.
	assert.Contains(t, out, "RL 95.00")
	assert.Contains(t, out, ">30<")
}

func TestRenderPreservesCoordinatePrecision(t *testing.T) {
	doc := drawing.NewDocument("t")
	require.NoError(t, doc.RegisterLayers(drawing.DefaultLayers()))
	require.NoError(t, doc.AddPrimitive(drawing.Line(drawing.LayerConcrete,
		transform.Point{X: 0, Y: 0}, transform.Point{X: 12.345, Y: 0})))
	doc.Finalize()

	var sb strings.Builder
	require.NoError(t, SVG{}.Render(&sb, doc))
	// Fractional coordinates are not rounded away by the serializer; the
	// endpoint lands at 12.345 plus the default 10 unit margin.
	assert.Contains(t, sb.String(), "22.345")
}

func TestPathData(t *testing.T) {
	ident := func(v float64) float64 { return v }
	pts := []transform.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 4}}

	assert.Equal(t, "M0,0 L1,2 L3,4", pathData(pts, false, ident, ident))
	assert.Equal(t, "M0,0 L1,2 L3,4 Z", pathData(pts, true, ident, ident))
}

func TestACIRGB(t *testing.T) {
	r, g, b := aciRGB(1)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})

	// Unknown index falls back to black.
	r, g, b = aciRGB(999)
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})
}

func TestDashPattern(t *testing.T) {
	assert.Nil(t, dashPattern("CONTINUOUS"))
	assert.Equal(t, []float64{8, 2, 2, 2}, dashPattern("CENTER"))
	assert.Equal(t, []float64{2, 2}, dashPattern("HIDDEN"))
}
