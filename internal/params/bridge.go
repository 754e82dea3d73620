package params

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Bridge is the validated parameter set for one drawing request. Every
// design parameter has a named, typed field; there is no string-keyed
// dictionary to silently drop a value. All lengths and levels are in
// metres, angles in degrees, levels as reduced levels (RL).
//
// A Bridge is constructed once per request from external input and is
// read-only thereafter.
type Bridge struct {
	// Overall arrangement
	NumSpans     int       `yaml:"number-of-spans" validate:"gte=1"`
	SpanLength   float64   `yaml:"span-length" validate:"omitempty,gt=0"`
	SpanLengths  []float64 `yaml:"span-lengths" validate:"omitempty,dive,gt=0"`
	SkewAngle    float64   `yaml:"skew-angle" validate:"gte=-60,lte=60"`
	LeftChainage float64   `yaml:"left-chainage"`

	// Levels
	Datum         float64 `yaml:"datum"`
	RoadTopLevel  float64 `yaml:"road-top-level"`
	SoffitLevel   float64 `yaml:"soffit-level"`
	FoundingLevel float64 `yaml:"founding-level"`

	// Piers
	CapTopLevel    float64 `yaml:"pier-cap-top"`
	CapBottomLevel float64 `yaml:"pier-cap-bottom"`
	CapWidth       float64 `yaml:"pier-cap-width" validate:"gte=0"`
	PierTopWidth   float64 `yaml:"pier-top-width" validate:"gte=0"`
	BatterRatio    float64 `yaml:"batter-ratio" validate:"gte=0"`

	// Footings
	FootingDepth  float64 `yaml:"footing-depth" validate:"gt=0"`
	FootingWidth  float64 `yaml:"footing-width" validate:"gt=0"`
	FootingLength float64 `yaml:"footing-length" validate:"gt=0"`

	// Abutments
	AbutmentWidth  float64 `yaml:"abutment-width" validate:"gt=0"`
	AbutmentBatter float64 `yaml:"abutment-batter" validate:"gte=0"`
	WingWallLength float64 `yaml:"wing-wall-length" validate:"gte=0"`

	// Deck furniture
	CarriagewayWidth float64 `yaml:"carriageway-width" validate:"gt=0"`
	KerbWidth        float64 `yaml:"kerb-width" validate:"gte=0"`
	KerbDepth        float64 `yaml:"kerb-depth" validate:"gte=0"`
	RailingHeight    float64 `yaml:"railing-height" validate:"gte=0"`

	// Approaches
	ApproachSlabLength    float64 `yaml:"approach-slab-length" validate:"gte=0"`
	ApproachSlabThickness float64 `yaml:"approach-slab-thickness" validate:"gte=0"`

	// Drawing scales and grid
	ScalePrimary   float64 `yaml:"scale-primary" validate:"gt=0"`
	ScaleSecondary float64 `yaml:"scale-secondary" validate:"gt=0"`
	GridXIncrement float64 `yaml:"grid-x-increment" validate:"gte=0"`
	GridYIncrement float64 `yaml:"grid-y-increment" validate:"gte=0"`
}

// validate is shared by every request; the instance is read-only after
// construction and safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report failures by parameter name, not Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate runs the single validation pass over the parameter set and
// returns a *ValidationError naming every offending parameter, or nil.
// A missing required parameter surfaces here as its zero value failing
// its range check.
func (b *Bridge) Validate() error {
	var bad []string

	if err := validate.Struct(b); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			bad = append(bad, fe.Field())
		}
	}

	if b.SpanLength <= 0 && len(b.SpanLengths) == 0 {
		bad = append(bad, "span-length")
	}
	if len(b.SpanLengths) > 0 && len(b.SpanLengths) != b.NumSpans {
		bad = append(bad, "span-lengths")
	}
	if b.RoadTopLevel <= b.SoffitLevel {
		bad = append(bad, "road-top-level")
	}
	if b.SoffitLevel <= b.FoundingLevel+b.FootingDepth {
		bad = append(bad, "soffit-level")
	}

	// Pier parameters only bind when the span count produces piers.
	if b.PierCount() > 0 {
		if b.PierTopWidth <= 0 {
			bad = append(bad, "pier-top-width")
		}
		if b.CapWidth < b.PierTopWidth {
			bad = append(bad, "pier-cap-width")
		}
		if b.BatterRatio <= 0 {
			bad = append(bad, "batter-ratio")
		}
		if b.CapTopLevel <= b.CapBottomLevel {
			bad = append(bad, "pier-cap-top")
		}
		if b.CapBottomLevel <= b.FoundingLevel+b.FootingDepth {
			bad = append(bad, "pier-cap-bottom")
		}
	}

	if len(bad) > 0 {
		return &ValidationError{Params: dedupe(bad)}
	}
	return nil
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// Spans returns the per-span lengths, expanding a uniform span length to
// the configured span count when no explicit list is given.
func (b *Bridge) Spans() []float64 {
	if len(b.SpanLengths) > 0 {
		out := make([]float64, len(b.SpanLengths))
		copy(out, b.SpanLengths)
		return out
	}
	out := make([]float64, b.NumSpans)
	for i := range out {
		out[i] = b.SpanLength
	}
	return out
}

// SpanEnds returns the N+1 span-end chainages, starting at the left
// abutment chainage.
func (b *Bridge) SpanEnds() []float64 {
	spans := b.Spans()
	ends := make([]float64, len(spans)+1)
	ends[0] = b.LeftChainage
	for i, s := range spans {
		ends[i+1] = ends[i] + s
	}
	return ends
}

// TotalLength is the overall bridge length along the alignment.
func (b *Bridge) TotalLength() float64 {
	var total float64
	for _, s := range b.Spans() {
		total += s
	}
	return total
}

// RightChainage is the chainage of the right abutment.
func (b *Bridge) RightChainage() float64 {
	return b.LeftChainage + b.TotalLength()
}

// PierCount is max(NumSpans-1, 0): one pier between each adjacent pair
// of spans, none for a single-span bridge.
func (b *Bridge) PierCount() int {
	if b.NumSpans < 2 {
		return 0
	}
	return b.NumSpans - 1
}

// FootingTopLevel is the RL of the top of pier and abutment footings.
func (b *Bridge) FootingTopLevel() float64 {
	return b.FoundingLevel + b.FootingDepth
}

// DeckWidth is the full out-to-out deck width including both kerbs.
func (b *Bridge) DeckWidth() float64 {
	return b.CarriagewayWidth + 2*b.KerbWidth
}
