package chart

import (
	"golang.org/x/text/language"

	"github.com/gogpu/chart/dataset"
	"github.com/gogpu/chart/export"
	"github.com/gogpu/chart/internal/fontmetrics"
	"github.com/gogpu/chart/layout"
	"github.com/gogpu/chart/responsive"
)

// Option configures a Chart.
//
// Example:
//
//	c := chart.New(chart.Scatter, points,
//		chart.WithAxisLabels("Passengers/km", "Passengers/min"),
//		chart.WithBubbleWeights(true),
//		chart.WithTrendLine(true),
//	)
type Option func(*Config)

// Config is the resolved chart configuration.
type Config struct {
	// ValueLabel and ItemLabel name the value and the category in tooltips.
	ValueLabel string
	ItemLabel  string

	// XAxisLabel and YAxisLabel are optional axis titles.
	XAxisLabel string
	YAxisLabel string

	// RotateLabels turns category labels by 45 degrees.
	RotateLabels bool

	// PreserveOrder keeps bar input order instead of sorting by value.
	PreserveOrder bool

	// ShowValueLabel prints each value next to its bar.
	ShowValueLabel bool

	ShowExportButton bool
	ChartTitle       string
	ExportSink       export.Sink
	// ExportBackend names the backend used for export; empty is raster.
	ExportBackend string

	OnSelect func(dataset.Point)

	// TopN caps bar charts and scatter bubbles. 0 keeps everything.
	TopN int

	// Selected names the category drawn as selected.
	Selected string

	// Scatter settings.
	UseWeight      bool
	QuadrantFilter *layout.Quadrant
	Jitter         float64
	TrendLine      bool
	Quadrants      bool
	GroupColors    bool

	// InnerRatio turns pie charts into donuts.
	InnerRatio float64
	// SortSlices lays pie slices out by descending value instead of data
	// order.
	SortSlices bool

	Locale       language.Tag
	MinWidth     float64
	EmptyMessage string
	Measurer     fontmetrics.Measurer
}

// DefaultEmptyMessage is shown when there is nothing to plot.
const DefaultEmptyMessage = "No data available"

func defaultConfig() Config {
	return Config{
		ValueLabel:       "Value",
		ItemLabel:        "Item",
		ShowExportButton: true,
		TrendLine:        true,
		Quadrants:        true,
		Locale:           language.English,
		MinWidth:         responsive.DefaultMinWidth,
		EmptyMessage:     DefaultEmptyMessage,
	}
}

// WithValueLabel names the plotted value in tooltips.
func WithValueLabel(s string) Option {
	return func(c *Config) { c.ValueLabel = s }
}

// WithItemLabel names the category in tooltips.
func WithItemLabel(s string) Option {
	return func(c *Config) { c.ItemLabel = s }
}

// WithAxisLabels sets the axis titles. Empty strings remove them.
func WithAxisLabels(x, y string) Option {
	return func(c *Config) { c.XAxisLabel, c.YAxisLabel = x, y }
}

// WithRotateLabels rotates category labels so long names fit.
func WithRotateLabels(on bool) Option {
	return func(c *Config) { c.RotateLabels = on }
}

// WithPreserveOrder keeps bar input order, for categories that are
// themselves ordered such as weekdays. Pie slices always follow data order
// unless WithSortedSlices is set.
func WithPreserveOrder(on bool) Option {
	return func(c *Config) { c.PreserveOrder = on }
}

// WithShowValues prints values next to bars.
func WithShowValues(on bool) Option {
	return func(c *Config) { c.ShowValueLabel = on }
}

// WithExport enables or disables export and sets the title the file is
// named after.
func WithExport(show bool, title string) Option {
	return func(c *Config) { c.ShowExportButton, c.ChartTitle = show, title }
}

// WithExportSink sets where exported files go.
func WithExportSink(s export.Sink) Option {
	return func(c *Config) { c.ExportSink = s }
}

// WithExportBackend selects the registered backend used for export.
func WithExportBackend(name string) Option {
	return func(c *Config) { c.ExportBackend = name }
}

// WithOnSelect registers a callback for clicks on marks. It receives a copy
// of the clicked item.
func WithOnSelect(fn func(dataset.Point)) Option {
	return func(c *Config) { c.OnSelect = fn }
}

// WithTopN keeps only the n largest bars, or the n heaviest scatter bubbles.
func WithTopN(n int) Option {
	return func(c *Config) { c.TopN = max(n, 0) }
}

// WithSelected marks the category called name as selected.
func WithSelected(name string) Option {
	return func(c *Config) { c.Selected = name }
}

// WithBubbleWeights sizes scatter bubbles by weight.
func WithBubbleWeights(on bool) Option {
	return func(c *Config) { c.UseWeight = on }
}

// WithQuadrantFilter shows only the scatter points in q.
func WithQuadrantFilter(q layout.Quadrant) Option {
	return func(c *Config) { c.QuadrantFilter = &q }
}

// WithoutQuadrantFilter shows every scatter point.
func WithoutQuadrantFilter() Option {
	return func(c *Config) { c.QuadrantFilter = nil }
}

// WithJitter sets the scatter jitter factor. Negative disables jitter.
func WithJitter(k float64) Option {
	return func(c *Config) { c.Jitter = k }
}

// WithTrendLine toggles the scatter regression line.
func WithTrendLine(on bool) Option {
	return func(c *Config) { c.TrendLine = on }
}

// WithQuadrants toggles the scatter quadrant tint and mean guides.
func WithQuadrants(on bool) Option {
	return func(c *Config) { c.Quadrants = on }
}

// WithGroupColors colors scatter bubbles by group and adds a legend.
func WithGroupColors(on bool) Option {
	return func(c *Config) { c.GroupColors = on }
}

// WithSortedSlices lays pie slices out largest first.
func WithSortedSlices(on bool) Option {
	return func(c *Config) { c.SortSlices = on }
}

// WithInnerRatio draws pies as donuts with the given hole ratio.
func WithInnerRatio(r float64) Option {
	return func(c *Config) { c.InnerRatio = min(max(r, 0), 0.95) }
}

// WithLocale sets the locale numbers are formatted in.
func WithLocale(tag language.Tag) Option {
	return func(c *Config) { c.Locale = tag }
}

// WithMinWidth sets the smallest width a chart is laid out at.
func WithMinWidth(w float64) Option {
	return func(c *Config) {
		if w > 0 {
			c.MinWidth = w
		}
	}
}

// WithEmptyMessage sets the placeholder text for empty datasets.
func WithEmptyMessage(s string) Option {
	return func(c *Config) { c.EmptyMessage = s }
}

// WithMeasurer sets how tooltip text is measured.
func WithMeasurer(m fontmetrics.Measurer) Option {
	return func(c *Config) { c.Measurer = m }
}

func (c Config) measurer() fontmetrics.Measurer {
	if c.Measurer == nil {
		return fontmetrics.Default()
	}
	return c.Measurer
}
