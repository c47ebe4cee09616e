package ui

import (
	"fmt"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// PriceChart draws a single price series as a line with circle markers.
// X values are categorical date labels, Y values are prices.
type PriceChart struct {
	widget.BaseWidget

	mu     sync.RWMutex
	title  string
	xLabel string
	yLabel string
	dates  []string
	values []float64
}

// NewPriceChart creates a chart for the given series. Extra dates or values
// beyond the shorter of the two slices are dropped.
func NewPriceChart(title, xLabel, yLabel string, dates []string, values []float64) *PriceChart {
	c := &PriceChart{
		title:  title,
		xLabel: xLabel,
		yLabel: yLabel,
	}
	c.setData(dates, values)
	c.ExtendBaseWidget(c)
	return c
}

// SetData replaces the plotted series and redraws the chart
func (c *PriceChart) SetData(dates []string, values []float64) {
	c.setData(dates, values)
	c.Refresh()
}

func (c *PriceChart) setData(dates []string, values []float64) {
	n := len(dates)
	if len(values) < n {
		n = len(values)
	}

	c.mu.Lock()
	c.dates = append([]string(nil), dates[:n]...)
	c.values = append([]float64(nil), values[:n]...)
	c.mu.Unlock()
}

// Len returns the number of plotted points
func (c *PriceChart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values)
}

// Title returns the chart title
func (c *PriceChart) Title() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.title
}

// Dates returns a copy of the x axis labels
func (c *PriceChart) Dates() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.dates...)
}

// Values returns a copy of the plotted prices
func (c *PriceChart) Values() []float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]float64(nil), c.values...)
}

// CreateRenderer implements fyne.Widget
func (c *PriceChart) CreateRenderer() fyne.WidgetRenderer {
	r := &priceChartRenderer{
		chart:  c,
		figure: canvas.NewRectangle(ChartFigureColor),
		plot:   canvas.NewRectangle(ChartPlotColor),
		title:  newChartText("", ChartTitleSize, true),
		xLabel: newChartText("", ChartLabelSize, false),
		yLabel: newChartText("", ChartLabelSize, false),
	}
	r.rebuild()
	return r
}

// valueBounds returns the y range for values, padded so markers stay inside
// the plot. A flat series gets an artificial range around its single value.
func valueBounds(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 1
	}

	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if hi == lo {
		lo -= ChartFlatRangePad
		hi += ChartFlatRangePad
	}

	pad := (hi - lo) * ChartValuePad
	return lo - pad, hi + pad
}

// plotPoints maps values into area; y grows upward and a single point is centered horizontally
func plotPoints(values []float64, origin fyne.Position, area fyne.Size) []fyne.Position {
	if len(values) == 0 {
		return nil
	}

	lo, hi := valueBounds(values)
	span := hi - lo

	points := make([]fyne.Position, len(values))
	for i, v := range values {
		x := origin.X + area.Width/2
		if len(values) > 1 {
			x = origin.X + area.Width*float32(i)/float32(len(values)-1)
		}
		y := origin.Y + area.Height - float32((v-lo)/span)*area.Height
		points[i] = fyne.NewPos(x, y)
	}
	return points
}

// labelStride returns the step between shown x labels so they fit in width
func labelStride(n int, width float32) int {
	if n <= 0 {
		return 1
	}

	fit := int(width / ChartDateLabelWidth)
	if fit < 1 {
		fit = 1
	}
	if n <= fit {
		return 1
	}
	return (n + fit - 1) / fit
}

// yTickValues returns count evenly spaced values from lo to hi
func yTickValues(lo, hi float64, count int) []float64 {
	if count < 2 {
		return []float64{lo}
	}

	ticks := make([]float64, count)
	step := (hi - lo) / float64(count-1)
	for i := range ticks {
		ticks[i] = lo + step*float64(i)
	}
	return ticks
}

func newChartText(text string, size float32, bold bool) *canvas.Text {
	t := canvas.NewText(text, ChartTextColor)
	t.TextSize = size
	t.TextStyle = fyne.TextStyle{Bold: bold}
	return t
}

func newChartLine(c color.Color, width float32) *canvas.Line {
	l := canvas.NewLine(c)
	l.StrokeWidth = width
	return l
}

type priceChartRenderer struct {
	chart *PriceChart

	figure *canvas.Rectangle
	plot   *canvas.Rectangle
	title  *canvas.Text
	xLabel *canvas.Text
	yLabel *canvas.Text

	grid     []*canvas.Line
	yTicks   []*canvas.Text
	xTicks   []*canvas.Text
	segments []*canvas.Line
	markers  []*canvas.Circle

	values  []float64
	objects []fyne.CanvasObject
}

// rebuild recreates the per-point objects from a snapshot of the chart data
func (r *priceChartRenderer) rebuild() {
	r.chart.mu.RLock()
	r.title.Text = r.chart.title
	r.xLabel.Text = r.chart.xLabel
	r.yLabel.Text = r.chart.yLabel
	dates := append([]string(nil), r.chart.dates...)
	r.values = append([]float64(nil), r.chart.values...)
	r.chart.mu.RUnlock()

	lo, hi := valueBounds(r.values)
	tickValues := yTickValues(lo, hi, ChartYTicks)

	r.grid = r.grid[:0]
	r.yTicks = r.yTicks[:0]
	for _, v := range tickValues {
		r.grid = append(r.grid, newChartLine(ChartGridColor, 1))
		r.yTicks = append(r.yTicks, newChartText(fmt.Sprintf("%.2f", v), ChartTickSize, false))
	}

	r.xTicks = r.xTicks[:0]
	for _, d := range dates {
		r.xTicks = append(r.xTicks, newChartText(d, ChartTickSize, false))
	}

	r.segments = r.segments[:0]
	r.markers = r.markers[:0]
	for i := range r.values {
		if i > 0 {
			r.segments = append(r.segments, newChartLine(ChartSeriesColor, ChartLineWidth))
		}
		r.markers = append(r.markers, canvas.NewCircle(ChartSeriesColor))
	}

	objects := []fyne.CanvasObject{r.figure, r.plot}
	for _, g := range r.grid {
		objects = append(objects, g)
	}
	for _, s := range r.segments {
		objects = append(objects, s)
	}
	for _, m := range r.markers {
		objects = append(objects, m)
	}
	for _, t := range r.yTicks {
		objects = append(objects, t)
	}
	for _, t := range r.xTicks {
		objects = append(objects, t)
	}
	r.objects = append(objects, r.title, r.xLabel, r.yLabel)
}

// plotArea returns the plot rectangle inside the figure margins
func plotArea(size fyne.Size) (fyne.Position, fyne.Size) {
	w := size.Width - ChartMarginLeft - ChartMarginRight
	h := size.Height - ChartMarginTop - ChartMarginBottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return fyne.NewPos(ChartMarginLeft, ChartMarginTop), fyne.NewSize(w, h)
}

func (r *priceChartRenderer) Layout(size fyne.Size) {
	r.figure.Move(fyne.NewPos(0, 0))
	r.figure.Resize(size)

	origin, area := plotArea(size)
	r.plot.Move(origin)
	r.plot.Resize(area)

	titleSize := r.title.MinSize()
	r.title.Move(fyne.NewPos((size.Width-titleSize.Width)/2, (ChartMarginTop-titleSize.Height)/2))

	xLabelSize := r.xLabel.MinSize()
	r.xLabel.Move(fyne.NewPos(origin.X+(area.Width-xLabelSize.Width)/2, size.Height-xLabelSize.Height-4))

	yLabelSize := r.yLabel.MinSize()
	r.yLabel.Move(fyne.NewPos(4, origin.Y-yLabelSize.Height-2))

	// Grid and y ticks, bottom to top
	for i, t := range r.yTicks {
		y := origin.Y + area.Height
		if len(r.yTicks) > 1 {
			y -= area.Height * float32(i) / float32(len(r.yTicks)-1)
		}
		r.grid[i].Position1 = fyne.NewPos(origin.X, y)
		r.grid[i].Position2 = fyne.NewPos(origin.X+area.Width, y)

		ts := t.MinSize()
		t.Move(fyne.NewPos(origin.X-ts.Width-6, y-ts.Height/2))
	}

	points := plotPoints(r.values, origin, area)
	for i, p := range points {
		r.markers[i].Move(fyne.NewPos(p.X-ChartMarkerSize/2, p.Y-ChartMarkerSize/2))
		r.markers[i].Resize(fyne.NewSize(ChartMarkerSize, ChartMarkerSize))
		if i > 0 {
			r.segments[i-1].Position1 = points[i-1]
			r.segments[i-1].Position2 = p
		}
	}

	stride := labelStride(len(r.xTicks), area.Width)
	for i, t := range r.xTicks {
		if i%stride != 0 || i >= len(points) {
			t.Hide()
			continue
		}
		t.Show()
		ts := t.MinSize()
		t.Move(fyne.NewPos(points[i].X-ts.Width/2, origin.Y+area.Height+4))
	}
}

func (r *priceChartRenderer) MinSize() fyne.Size {
	return fyne.NewSize(ChartMinWidth, ChartMinHeight)
}

func (r *priceChartRenderer) Refresh() {
	r.rebuild()
	r.Layout(r.chart.Size())
	canvas.Refresh(r.chart)
}

func (r *priceChartRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *priceChartRenderer) Destroy() {}
