package drawing

// Layer groups primitives that share a drafting purpose and style.
// Colors are AutoCAD color index (ACI) values, the convention the
// drawing registry below inherited from standard bridge GAD sheets.
type Layer struct {
	Name        string
	Color       int     // ACI color index
	LineWeight  float64 // mm
	LineType    string  // CONTINUOUS, DASHED, CENTER, HIDDEN, PHANTOM
	Description string
}

// Layer names used by the geometry builder and annotation generator.
const (
	LayerDefpoints    = "0-DEFPOINTS"
	LayerGridMajor    = "GRID-MAJOR"
	LayerGridMinor    = "GRID-MINOR"
	LayerAxisCenter   = "AXIS-CENTER"
	LayerConcrete     = "STRUCTURE-CONCRETE"
	LayerSteel        = "STRUCTURE-STEEL"
	LayerFoundation   = "FOUNDATION"
	LayerDimensions   = "DIMENSIONS"
	LayerTextLarge    = "TEXT-LARGE"
	LayerTextMedium   = "TEXT-MEDIUM"
	LayerTextSmall    = "TEXT-SMALL"
	LayerHatchConc    = "HATCHING-CONCRETE"
	LayerHatchEarth   = "HATCHING-EARTH"
	LayerDetails      = "DETAILS"
	LayerSymbol       = "SYMBOL"
	LayerHidden       = "HIDDEN"
	LayerPhantom      = "PHANTOM"
	LayerBorder       = "BORDER"
	LayerTitleBlock   = "TITLE-BLOCK"
	LayerGroundLine   = "GROUND-LINE"
)

// DefaultLayers is the standard registry for a bridge general
// arrangement sheet. Every document registers these before any geometry
// is added.
func DefaultLayers() []Layer {
	return []Layer{
		{LayerDefpoints, 7, 0.13, "CONTINUOUS", "Default points layer"},
		{LayerGridMajor, 8, 0.18, "CONTINUOUS", "Major grid lines"},
		{LayerGridMinor, 253, 0.13, "DASHED", "Minor grid lines"},
		{LayerAxisCenter, 4, 0.18, "CENTER", "Center lines and axes"},
		{LayerConcrete, 1, 0.35, "CONTINUOUS", "Concrete structural elements"},
		{LayerSteel, 2, 0.35, "CONTINUOUS", "Steel structural elements"},
		{LayerFoundation, 30, 0.35, "CONTINUOUS", "Footings and foundations"},
		{LayerDimensions, 6, 0.18, "CONTINUOUS", "Dimension lines and text"},
		{LayerTextLarge, 3, 0.25, "CONTINUOUS", "Large text and titles"},
		{LayerTextMedium, 2, 0.18, "CONTINUOUS", "Medium text and labels"},
		{LayerTextSmall, 8, 0.13, "CONTINUOUS", "Small text and notes"},
		{LayerHatchConc, 9, 0.13, "CONTINUOUS", "Concrete hatching"},
		{LayerHatchEarth, 30, 0.13, "CONTINUOUS", "Earth/soil hatching"},
		{LayerGroundLine, 94, 0.25, "CONTINUOUS", "Ground survey profile"},
		{LayerDetails, 2, 0.18, "CONTINUOUS", "Detail elements"},
		{LayerSymbol, 5, 0.18, "CONTINUOUS", "Symbols and markers"},
		{LayerHidden, 8, 0.13, "HIDDEN", "Hidden lines"},
		{LayerPhantom, 6, 0.13, "PHANTOM", "Phantom lines"},
		{LayerBorder, 7, 0.5, "CONTINUOUS", "Drawing border"},
		{LayerTitleBlock, 7, 0.25, "CONTINUOUS", "Title block elements"},
	}
}
