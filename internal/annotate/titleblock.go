package annotate

import (
	"fmt"

	"github.com/alexiusacademia/gobridge/internal/drawing"
	"github.com/alexiusacademia/gobridge/internal/transform"
)

// TitleInfo is the caller-supplied title block content. Date is an input,
// never read from the clock, so output stays reproducible.
type TitleInfo struct {
	Project   string
	Title     string
	DrawingNo string
	Scale     string
	Date      string
}

// Title block proportions, in drawing units.
const (
	titleBlockWidth  = 180.0
	titleBlockHeight = 60.0
)

// TitleBlock builds the bordered title block in view-local coordinates:
// outer border, a divider under the title band, the drawing title and the
// project/scale/date/number lines.
func TitleBlock(info TitleInfo) []drawing.Primitive {
	w, h := titleBlockWidth, titleBlockHeight

	prims := []drawing.Primitive{
		drawing.Rect(drawing.LayerTitleBlock, pt(0, 0), pt(w, h)),
		drawing.Line(drawing.LayerTitleBlock, pt(0, h*0.6), pt(w, h*0.6)),
		drawing.Line(drawing.LayerTitleBlock, pt(0, h*0.3), pt(w, h*0.3)),
		drawing.Line(drawing.LayerTitleBlock, pt(w*0.5, 0), pt(w*0.5, h*0.6)),
		drawing.Text(drawing.LayerTextLarge, info.Title, pt(5, h*0.7), 6, 0),
		drawing.Text(drawing.LayerTextMedium, fmt.Sprintf("PROJECT: %s", info.Project), pt(5, h*0.4), 3, 0),
		drawing.Text(drawing.LayerTextMedium, fmt.Sprintf("SCALE: %s", info.Scale), pt(w*0.5+5, h*0.4), 3, 0),
		drawing.Text(drawing.LayerTextSmall, fmt.Sprintf("DATE: %s", info.Date), pt(5, h*0.1), 2.5, 0),
	}
	if info.DrawingNo != "" {
		prims = append(prims,
			drawing.Text(drawing.LayerTextSmall, fmt.Sprintf("DWG NO: %s", info.DrawingNo), pt(w*0.5+5, h*0.1), 2.5, 0))
	}
	return prims
}

func pt(x, y float64) transform.Point {
	return transform.Point{X: x, Y: y}
}
