package layout

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/chart/dataset"
	"github.com/gogpu/chart/scale"
)

// Default band paddings.
const (
	VerticalBandPadding   = 0.3
	HorizontalBandPadding = 0.2
	// ValueDomainPad is the headroom added above the largest value.
	ValueDomainPad = 0.1
	// ValueLabelOffset separates a value label from the end of its bar.
	ValueLabelOffset = 8
)

// BarOptions controls bar layout.
type BarOptions struct {
	// Width and Height of the plot area.
	Width, Height float64

	// Horizontal lays bands along y and values along x.
	Horizontal bool

	// Padding is the band padding. Zero selects the default for the
	// orientation; use a negative value for no padding.
	Padding float64

	// PreserveOrder keeps input order instead of sorting by value.
	PreserveOrder bool

	// TopN keeps only the first n bars after ordering. 0 keeps all.
	TopN int
}

// Bar is one laid-out rectangle.
type Bar struct {
	// Index is the position of the item in the input slice.
	Index int
	Name  string
	Value float64

	X, Y, W, H float64

	// Label is the anchor of the value label: above the bar when vertical,
	// right of the bar when horizontal.
	Label gg.Point
}

// Center returns the centre of the bar.
func (b Bar) Center() gg.Point {
	return gg.Pt(b.X+b.W/2, b.Y+b.H/2)
}

// Path returns the bar outline with corners rounded by radius.
func (b Bar) Path(radius float64) *gg.Path {
	p := gg.NewPath()
	if radius > 0 && b.W > 2*radius && b.H > 2*radius {
		p.RoundedRectangle(b.X, b.Y, b.W, b.H, radius)
	} else {
		p.Rectangle(b.X, b.Y, b.W, b.H)
	}
	return p
}

// BarLayout is the result of Bars.
type BarLayout struct {
	Bars       []Bar
	Band       scale.Band
	Value      scale.Linear
	Horizontal bool

	// Baseline is the pixel position of value zero on the value axis.
	Baseline float64

	// Mean is the arithmetic mean of the laid-out values (0 when empty).
	Mean float64
}

// Bars lays out one bar per kept item. Items are ordered by descending value
// unless PreserveOrder is set, then capped to TopN.
func Bars(points []dataset.Point, o BarOptions) BarLayout {
	order := dataset.Top(dataset.Order(points, o.PreserveOrder), o.TopN)

	padding := o.Padding
	switch {
	case padding == 0 && o.Horizontal:
		padding = HorizontalBandPadding
	case padding == 0:
		padding = VerticalBandPadding
	case padding < 0:
		padding = 0
	}

	names := make([]string, len(order))
	values := make([]float64, len(order))
	for i, idx := range order {
		names[i] = points[idx].DisplayName()
		values[i] = points[idx].Value
	}

	lo, hi := scale.PadMax(values, ValueDomainPad)
	l := BarLayout{Horizontal: o.Horizontal}
	if o.Horizontal {
		l.Band = scale.NewBand(names, 0, o.Height, padding)
		l.Value = scale.NewLinear(lo, hi, 0, o.Width)
	} else {
		l.Band = scale.NewBand(names, 0, o.Width, padding)
		l.Value = scale.NewLinear(lo, hi, o.Height, 0)
	}
	l.Baseline = l.Value.Map(0)
	if len(values) > 0 {
		l.Mean = dataset.Sum(values) / float64(len(values))
	}

	bw := l.Band.Bandwidth()
	l.Bars = make([]Bar, len(order))
	for i, idx := range order {
		v := values[i]
		pos := l.Value.Map(v)
		b := Bar{Index: idx, Name: names[i], Value: v}
		if o.Horizontal {
			b.Y, b.H = l.Band.At(i), bw
			b.X, b.W = span(l.Baseline, pos)
			b.Label = gg.Pt(b.X+b.W+ValueLabelOffset, b.Y+b.H/2)
		} else {
			b.X, b.W = l.Band.At(i), bw
			b.Y, b.H = span(l.Baseline, pos)
			b.Label = gg.Pt(b.X+b.W/2, b.Y-ValueLabelOffset)
		}
		l.Bars[i] = b
	}
	return l
}

// Colors returns the sequential fill of every bar, mapping the largest value
// to the start of interp and zero to its end.
func (l BarLayout) Colors(interp scale.Interpolator) []gg.RGBA {
	hi := 0.0
	for _, b := range l.Bars {
		if b.Value > hi {
			hi = b.Value
		}
	}
	seq := scale.NewSequential(hi, 0, interp)
	out := make([]gg.RGBA, len(l.Bars))
	for i, b := range l.Bars {
		out[i] = seq.Map(b.Value)
	}
	return out
}

// span orders two pixel positions into a start and a non-negative length.
func span(a, b float64) (start, length float64) {
	if a <= b {
		return a, b - a
	}
	return b, a - b
}
