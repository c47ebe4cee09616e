package ui

import (
	"image/color"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Colors
var (
	TopBarColor       = color.NRGBA{R: 0x32, G: 0x35, B: 0x36, A: 0xff} // #323536
	ContentColor      = color.NRGBA{R: 0x0d, G: 0x63, B: 0x80, A: 0xff} // #0D6380
	ChartFigureColor  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff} // #000000
	ChartPlotColor    = color.NRGBA{R: 0x32, G: 0x35, B: 0x36, A: 0xff} // #323536
	ChartSeriesColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ChartTextColor    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ChartGridColor    = color.NRGBA{R: 0x5a, G: 0x5e, B: 0x60, A: 0xff}
)

// Layout sizing
const (
	// TopBarFraction is the share of the window height given to the search bar
	TopBarFraction float32 = 0.25

	SearchEntryMinWidth float32 = 400
)

// Chart sizing
const (
	ChartMinWidth  float32 = 320
	ChartMinHeight float32 = 200

	ChartMarginLeft   float32 = 64
	ChartMarginRight  float32 = 16
	ChartMarginTop    float32 = 32
	ChartMarginBottom float32 = 56

	ChartTitleSize  float32 = 14
	ChartLabelSize  float32 = 12
	ChartTickSize   float32 = 10
	ChartLineWidth  float32 = 2
	ChartMarkerSize float32 = 7

	// ChartDateLabelWidth is the horizontal room one date tick label needs
	ChartDateLabelWidth float32 = 72
	// ChartYTicks is the number of price ticks on the y axis
	ChartYTicks = 5
	// ChartFlatRangePad widens a flat price range so the line is drawn mid-plot
	ChartFlatRangePad = 0.05
	// ChartValuePad keeps markers off the plot edges (fraction of the range)
	ChartValuePad = 0.08
)
