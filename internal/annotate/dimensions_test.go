package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobridge/internal/params"
	"github.com/alexiusacademia/gobridge/internal/transform"
)

func testBridge() *params.Bridge {
	return &params.Bridge{
		NumSpans:         3,
		SpanLength:       30,
		Datum:            95,
		RoadTopLevel:     106.5,
		SoffitLevel:      104,
		FoundingLevel:    95,
		CapTopLevel:      105.2,
		CapBottomLevel:   103.8,
		CapWidth:         2.0,
		PierTopWidth:     1.2,
		BatterRatio:      6,
		FootingDepth:     1.5,
		FootingWidth:     4.5,
		FootingLength:    5.0,
		CarriagewayWidth: 7.5,
		KerbWidth:        0.3,
		ScalePrimary:     100,
		ScaleSecondary:   50,
	}
}

func testContext(cfg *params.Bridge) *transform.Context {
	return transform.NewContext(cfg.ScalePrimary, cfg.ScaleSecondary, 0, cfg.Datum, cfg.LeftChainage)
}

func TestFormatLength(t *testing.T) {
	cases := map[float64]string{
		30:      "30",
		30.456:  "30.46",
		0.5:     "0.5",
		90:      "90",
		7.5:     "7.5",
		0:       "0",
		12.3049: "12.3",
	}
	for v, want := range cases {
		assert.Equal(t, want, FormatLength(v), "v=%g", v)
	}
}

func TestSpanDimensionLabels(t *testing.T) {
	cfg := testBridge()
	dims := SpanDimensions(cfg, testContext(cfg))

	require.Len(t, dims, 3)
	for _, d := range dims {
		assert.Equal(t, "30", d.Label)
		assert.Negative(t, d.Offset)
	}
}

func TestSpanDimensionLabelsExplicitList(t *testing.T) {
	cfg := testBridge()
	cfg.SpanLengths = []float64{25, 30.456, 34.544}
	dims := SpanDimensions(cfg, testContext(cfg))

	require.Len(t, dims, 3)
	assert.Equal(t, "25", dims[0].Label)
	assert.Equal(t, "30.46", dims[1].Label)
	assert.Equal(t, "34.54", dims[2].Label)
}

func TestOverallDimensionLabel(t *testing.T) {
	cfg := testBridge()
	dim := OverallDimension(cfg, testContext(cfg))
	assert.Equal(t, "90", dim.Label)
}

func TestLabelsIndependentOfScale(t *testing.T) {
	// The same bridge drawn at different scales must carry identical
	// dimension text.
	for _, scale := range []float64{1, 50, 100, 1000} {
		cfg := testBridge()
		cfg.ScalePrimary = scale
		dims := SpanDimensions(cfg, testContext(cfg))
		require.Len(t, dims, 3)
		assert.Equal(t, "30", dims[0].Label, "scale=%g", scale)
	}
}

func TestPierDimensions(t *testing.T) {
	cfg := testBridge()
	dims := PierDimensions(cfg, testContext(cfg))

	// Cap width, footing width and shaft height per pier, two piers.
	require.Len(t, dims, 6)
	assert.Equal(t, "2", dims[0].Label)
	assert.Equal(t, "4.5", dims[1].Label)
	// Shaft height: cap bottom 103.8 down to footing top 96.5.
	assert.Equal(t, "7.3", dims[2].Label)
}

func TestPierDimensionsSingleSpan(t *testing.T) {
	cfg := testBridge()
	cfg.NumSpans = 1
	assert.Nil(t, PierDimensions(cfg, testContext(cfg)))
}

func TestSectionDimensions(t *testing.T) {
	cfg := testBridge()
	cfg.KerbWidth = 0.3
	dims := SectionDimensions(cfg, testContext(cfg))

	require.Len(t, dims, 2)
	assert.Equal(t, "7.5", dims[0].Label)
	assert.Equal(t, "8.1", dims[1].Label)
}

func TestTitleBlockContent(t *testing.T) {
	prims := TitleBlock(TitleInfo{
		Project:   "NH-44 Crossing",
		Title:     "GENERAL ARRANGEMENT",
		DrawingNo: "GAD-001",
		Scale:     "1:100",
		Date:      "2026-08-23",
	})

	var texts []string
	for _, p := range prims {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	assert.Contains(t, texts, "GENERAL ARRANGEMENT")
	assert.Contains(t, texts, "PROJECT: NH-44 Crossing")
	assert.Contains(t, texts, "SCALE: 1:100")
	assert.Contains(t, texts, "DATE: 2026-08-23")
	assert.Contains(t, texts, "DWG NO: GAD-001")
}

func TestTitleBlockOmitsEmptyDrawingNo(t *testing.T) {
	prims := TitleBlock(TitleInfo{Title: "GA"})
	for _, p := range prims {
		assert.NotContains(t, p.Text, "DWG NO")
	}
}
