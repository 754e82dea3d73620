// Package render is the serialization boundary of the drawing engine.
// Serializers encode a finalized document into a persisted vector format;
// they must preserve primitive order (draw order) and must not alter
// coordinate values.
package render

import (
	"errors"
	"io"

	"github.com/alexiusacademia/gobridge/internal/drawing"
)

// ErrNotFinalized is returned when a serializer is handed a document that
// is still being built.
var ErrNotFinalized = errors.New("render: document is not finalized")

// Serializer encodes a finalized drawing document.
type Serializer interface {
	Render(w io.Writer, doc *drawing.Document) error
}

// aciColors maps the AutoCAD color indexes used by the layer registry to
// RGB. Unlisted indexes fall back to black.
var aciColors = map[int][3]uint8{
	1:   {255, 0, 0},
	2:   {255, 255, 0},
	3:   {0, 255, 0},
	4:   {0, 255, 255},
	5:   {0, 0, 255},
	6:   {255, 0, 255},
	7:   {0, 0, 0},
	8:   {128, 128, 128},
	9:   {192, 192, 192},
	30:  {255, 127, 0},
	94:  {0, 160, 80},
	253: {218, 218, 218},
}

func aciRGB(index int) (uint8, uint8, uint8) {
	if c, ok := aciColors[index]; ok {
		return c[0], c[1], c[2]
	}
	return 0, 0, 0
}

// dashPattern returns the stroke dash lengths for a line type, or nil for
// continuous lines.
func dashPattern(lineType string) []float64 {
	switch lineType {
	case "DASHED":
		return []float64{4, 2}
	case "HIDDEN":
		return []float64{2, 2}
	case "CENTER":
		return []float64{8, 2, 2, 2}
	case "PHANTOM":
		return []float64{8, 2, 2, 2, 2, 2}
	}
	return nil
}
