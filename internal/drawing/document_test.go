package drawing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobridge/internal/transform"
)

func newTestDocument(t *testing.T) *Document {
	t.Helper()
	doc := NewDocument("test")
	require.NoError(t, doc.RegisterLayers(DefaultLayers()))
	return doc
}

func TestRegisterLayerIdempotent(t *testing.T) {
	doc := newTestDocument(t)

	// Identical re-registration is a no-op.
	require.NoError(t, doc.RegisterLayer(DefaultLayers()[0]))
	assert.Len(t, doc.Layers(), len(DefaultLayers()))
}

func TestRegisterLayerConflict(t *testing.T) {
	doc := newTestDocument(t)

	conflicting := DefaultLayers()[0]
	conflicting.Color = 99
	err := doc.RegisterLayer(conflicting)
	require.Error(t, err)

	var lerr *LayerConsistencyError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, conflicting.Name, lerr.Layer)
}

func TestAddPrimitiveUnregisteredLayer(t *testing.T) {
	doc := newTestDocument(t)

	err := doc.AddPrimitive(Line("NO-SUCH-LAYER", transform.Point{}, transform.Point{X: 1}))
	var lerr *LayerConsistencyError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, "NO-SUCH-LAYER", lerr.Layer)
}

func TestDrawOrderPreserved(t *testing.T) {
	doc := newTestDocument(t)

	require.NoError(t, doc.AddPrimitive(Line(LayerConcrete, transform.Point{}, transform.Point{X: 1})))
	require.NoError(t, doc.AddPrimitive(Circle(LayerSymbol, transform.Point{X: 5}, 2)))
	require.NoError(t, doc.AddPrimitive(Text(LayerTextSmall, "note", transform.Point{}, 2, 0)))

	prims := doc.Primitives()
	require.Len(t, prims, 3)
	assert.Equal(t, KindLine, prims[0].Kind)
	assert.Equal(t, KindCircle, prims[1].Kind)
	assert.Equal(t, KindText, prims[2].Kind)
}

func TestFinalizeFreezesDocument(t *testing.T) {
	doc := newTestDocument(t)
	require.NoError(t, doc.AddPrimitive(Line(LayerConcrete, transform.Point{}, transform.Point{X: 1})))

	doc.Finalize()
	assert.True(t, doc.Finalized())

	assert.ErrorIs(t, doc.AddPrimitive(Line(LayerConcrete, transform.Point{}, transform.Point{X: 2})), ErrFinalized)
	assert.ErrorIs(t, doc.AddDimension(Dimension{}), ErrFinalized)
	assert.ErrorIs(t, doc.RegisterLayer(Layer{Name: "LATE"}), ErrFinalized)
	assert.Len(t, doc.Primitives(), 1)
}

func TestPrimitivesOnLayer(t *testing.T) {
	doc := newTestDocument(t)
	require.NoError(t, doc.AddPrimitive(Line(LayerConcrete, transform.Point{}, transform.Point{X: 1})))
	require.NoError(t, doc.AddPrimitive(Line(LayerFoundation, transform.Point{}, transform.Point{X: 2})))
	require.NoError(t, doc.AddPrimitive(Line(LayerConcrete, transform.Point{}, transform.Point{X: 3})))

	assert.Len(t, doc.PrimitivesOnLayer(LayerConcrete), 2)
	assert.Len(t, doc.PrimitivesOnLayer(LayerFoundation), 1)
	assert.Empty(t, doc.PrimitivesOnLayer(LayerSteel))
}

func TestBounds(t *testing.T) {
	doc := newTestDocument(t)
	require.NoError(t, doc.AddPrimitive(Line(LayerConcrete, transform.Point{X: -5, Y: 2}, transform.Point{X: 10, Y: 8})))
	require.NoError(t, doc.AddPrimitive(Circle(LayerSymbol, transform.Point{X: 0, Y: 0}, 3)))

	min, max := doc.Bounds()
	assert.Equal(t, -5.0, min.X)
	assert.Equal(t, -3.0, min.Y)
	assert.Equal(t, 10.0, max.X)
	assert.Equal(t, 8.0, max.Y)
}

func TestBoundsEmptyDocument(t *testing.T) {
	doc := newTestDocument(t)
	min, max := doc.Bounds()
	assert.Equal(t, transform.Point{}, min)
	assert.Equal(t, transform.Point{}, max)
}

func TestTranslateCopies(t *testing.T) {
	p := Polyline(LayerConcrete, true, transform.Point{X: 1, Y: 1}, transform.Point{X: 2, Y: 2})
	moved := p.Translate(10, 20)

	assert.Equal(t, transform.Point{X: 11, Y: 21}, moved.Points[0])
	// Original untouched.
	assert.Equal(t, transform.Point{X: 1, Y: 1}, p.Points[0])
}

func TestDefaultLayersAreConsistent(t *testing.T) {
	layers := DefaultLayers()
	assert.GreaterOrEqual(t, len(layers), 20)

	seen := map[string]bool{}
	for _, l := range layers {
		assert.False(t, seen[l.Name], "duplicate layer %s", l.Name)
		seen[l.Name] = true
		assert.NotEmpty(t, l.LineType)
		assert.Greater(t, l.LineWeight, 0.0)
	}
}
