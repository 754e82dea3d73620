// Package pipeline runs one drawing request end to end: validate the
// parameter set, build structural geometry through the transform engine,
// lay out the views, generate annotations and finalize the document.
//
// Each invocation owns its document exclusively and touches no shared
// mutable state, so independent requests may run fully in parallel at the
// caller's discretion. Cancellation is simply discarding the in-progress
// document; there is nothing partial to unwind.
package pipeline

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gobridge/internal/annotate"
	"github.com/alexiusacademia/gobridge/internal/compose"
	"github.com/alexiusacademia/gobridge/internal/drawing"
	"github.com/alexiusacademia/gobridge/internal/geometry"
	"github.com/alexiusacademia/gobridge/internal/params"
	"github.com/alexiusacademia/gobridge/internal/transform"
)

// Meta is caller-supplied sheet metadata. The date is an input so the
// engine never reads the clock.
type Meta struct {
	Project   string
	Title     string
	DrawingNo string
	Date      string
}

// Stats summarizes a completed request.
type Stats struct {
	SkippedSurveyRows int
	Piers             int
	Primitives        int
	Dimensions        int
}

// Options configures a request. The zero value is usable: logging is
// discarded.
type Options struct {
	Logger *zap.Logger
}

// Generate produces a finalized drawing document from a parameter set and
// an optional ground survey. Survey rows that fail the ordering check are
// skipped and counted in Stats, never failing the request; every other
// fault (ValidationError, GeometryError, LayerConsistencyError) aborts
// the request with nothing partial produced.
func Generate(cfg *params.Bridge, survey []params.SurveyPoint, meta Meta, opts Options) (*drawing.Document, Stats, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	requestID := uuid.NewString()
	log = log.With(zap.String("request_id", requestID))

	var stats Stats

	if err := cfg.Validate(); err != nil {
		log.Warn("parameter validation failed", zap.Error(err))
		return nil, stats, err
	}

	ctx := transform.NewContext(cfg.ScalePrimary, cfg.ScaleSecondary, cfg.SkewAngle, cfg.Datum, cfg.LeftChainage)

	profile, skipped := params.NewProfile(survey)
	stats.SkippedSurveyRows = skipped
	if skipped > 0 {
		log.Warn("skipped unusable survey rows", zap.Int("skipped", skipped))
	}

	doc := drawing.NewDocument(requestID)
	if err := doc.RegisterLayers(drawing.DefaultLayers()); err != nil {
		return nil, stats, err
	}

	layout := compose.Arrange(cfg, ctx)
	builder := geometry.NewBuilder(cfg, ctx)

	elevation, err := builder.Elevation()
	if err != nil {
		return nil, stats, fmt.Errorf("build elevation: %w", err)
	}
	elevation = append(elevation, builder.GroundLine(profile)...)

	plan, err := builder.Plan()
	if err != nil {
		return nil, stats, fmt.Errorf("build plan: %w", err)
	}

	section, err := builder.CrossSection()
	if err != nil {
		return nil, stats, fmt.Errorf("build cross-section: %w", err)
	}

	if err := compose.Place(doc, layout.Elevation, elevation); err != nil {
		return nil, stats, err
	}
	if err := compose.Place(doc, layout.Plan, plan); err != nil {
		return nil, stats, err
	}
	if err := compose.Place(doc, layout.Section, section); err != nil {
		return nil, stats, err
	}

	dims := annotate.SpanDimensions(cfg, ctx)
	dims = append(dims, annotate.OverallDimension(cfg, ctx))
	dims = append(dims, annotate.PierDimensions(cfg, ctx)...)
	if err := compose.PlaceDimensions(doc, layout.Elevation, dims); err != nil {
		return nil, stats, err
	}
	if err := compose.PlaceDimensions(doc, layout.Section, annotate.SectionDimensions(cfg, ctx)); err != nil {
		return nil, stats, err
	}

	title := annotate.TitleBlock(annotate.TitleInfo{
		Project:   meta.Project,
		Title:     meta.Title,
		DrawingNo: meta.DrawingNo,
		Scale:     fmt.Sprintf("1:%g", cfg.ScalePrimary),
		Date:      meta.Date,
	})
	if err := compose.Place(doc, layout.Title, title); err != nil {
		return nil, stats, err
	}

	doc.Finalize()

	stats.Piers = cfg.PierCount()
	stats.Primitives = len(doc.Primitives())
	stats.Dimensions = len(doc.Dimensions())
	log.Info("drawing generated",
		zap.Int("spans", cfg.NumSpans),
		zap.Int("piers", stats.Piers),
		zap.Int("primitives", stats.Primitives),
		zap.Int("dimensions", stats.Dimensions))

	return doc, stats, nil
}
