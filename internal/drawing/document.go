package drawing

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gobridge/internal/transform"
)

// ErrFinalized is returned by any mutation attempted after Finalize.
var ErrFinalized = errors.New("drawing: document is finalized")

// LayerConsistencyError indicates a programming-contract violation inside
// the drawing pipeline: a primitive referenced an unregistered layer, or
// a layer name was re-registered with a conflicting style.
type LayerConsistencyError struct {
	Layer  string
	Reason string
}

func (e *LayerConsistencyError) Error() string {
	return fmt.Sprintf("drawing: layer %q: %s", e.Layer, e.Reason)
}

// Document is the in-memory vector drawing: a layer registry, an ordered
// primitive list (insertion order is draw order) and the dimension
// records. It is built incrementally by exactly one pipeline invocation
// and frozen with Finalize before serialization; it is not safe for
// concurrent mutation and is never shared between requests.
type Document struct {
	// ID identifies the generating request, for logs and sheet metadata.
	ID string

	layers     map[string]Layer
	layerOrder []string
	prims      []Primitive
	dims       []Dimension
	finalized  bool
}

// NewDocument creates an empty document for one drawing request.
func NewDocument(id string) *Document {
	return &Document{
		ID:     id,
		layers: make(map[string]Layer),
	}
}

// RegisterLayer adds a layer to the registry. Registering the same name
// with an identical definition is a no-op; a conflicting definition is a
// LayerConsistencyError.
func (d *Document) RegisterLayer(l Layer) error {
	if d.finalized {
		return ErrFinalized
	}
	if existing, ok := d.layers[l.Name]; ok {
		if existing != l {
			return &LayerConsistencyError{Layer: l.Name, Reason: "re-registered with conflicting style"}
		}
		return nil
	}
	d.layers[l.Name] = l
	d.layerOrder = append(d.layerOrder, l.Name)
	return nil
}

// RegisterLayers registers a list of layers, stopping at the first error.
func (d *Document) RegisterLayers(layers []Layer) error {
	for _, l := range layers {
		if err := d.RegisterLayer(l); err != nil {
			return err
		}
	}
	return nil
}

// AddPrimitive appends a primitive to the draw order. The referenced
// layer must already be registered.
func (d *Document) AddPrimitive(p Primitive) error {
	if d.finalized {
		return ErrFinalized
	}
	if _, ok := d.layers[p.Layer]; !ok {
		return &LayerConsistencyError{Layer: p.Layer, Reason: "primitive references unregistered layer"}
	}
	d.prims = append(d.prims, p)
	return nil
}

// AddDimension appends a dimension record.
func (d *Document) AddDimension(dim Dimension) error {
	if d.finalized {
		return ErrFinalized
	}
	d.dims = append(d.dims, dim)
	return nil
}

// Finalize freezes the document. Every mutation afterwards fails with
// ErrFinalized.
func (d *Document) Finalize() {
	d.finalized = true
}

// Finalized reports whether the document has been frozen.
func (d *Document) Finalized() bool {
	return d.finalized
}

// Layer looks up a registered layer by name.
func (d *Document) Layer(name string) (Layer, bool) {
	l, ok := d.layers[name]
	return l, ok
}

// Layers returns the registry in registration order.
func (d *Document) Layers() []Layer {
	out := make([]Layer, 0, len(d.layerOrder))
	for _, name := range d.layerOrder {
		out = append(out, d.layers[name])
	}
	return out
}

// Primitives returns the primitives in draw order. Callers must treat the
// returned slice as read-only.
func (d *Document) Primitives() []Primitive {
	return d.prims
}

// PrimitivesOnLayer returns the primitives bound to the named layer, in
// draw order.
func (d *Document) PrimitivesOnLayer(name string) []Primitive {
	var out []Primitive
	for _, p := range d.prims {
		if p.Layer == name {
			out = append(out, p)
		}
	}
	return out
}

// Dimensions returns the dimension records in insertion order.
func (d *Document) Dimensions() []Dimension {
	return d.dims
}

// Bounds returns the axis-aligned bounding box over every primitive and
// dimension anchor, for serializers that need a canvas extent. An empty
// document has a zero box.
func (d *Document) Bounds() (min, max transform.Point) {
	min = transform.Point{X: math.Inf(1), Y: math.Inf(1)}
	max = transform.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	grow := func(pt transform.Point, r float64) {
		min.X = math.Min(min.X, pt.X-r)
		min.Y = math.Min(min.Y, pt.Y-r)
		max.X = math.Max(max.X, pt.X+r)
		max.Y = math.Max(max.Y, pt.Y+r)
	}
	for _, p := range d.prims {
		r := 0.0
		if p.Kind == KindCircle || p.Kind == KindArc {
			r = p.Radius
		}
		for _, pt := range p.Points {
			grow(pt, r)
		}
	}
	for _, dim := range d.dims {
		grow(dim.A, math.Abs(dim.Offset))
		grow(dim.B, math.Abs(dim.Offset))
	}
	if min.X > max.X {
		return transform.Point{}, transform.Point{}
	}
	return min, max
}
