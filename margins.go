package chart

import "math"

// Dimensions is the size of the drawing surface in pixels.
type Dimensions struct {
	Width, Height float64
}

// Margins separate the plot area from the surface edges.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Extra room reserved for optional elements.
const (
	RotatedLabelMargin = 60
	AxisTitleMargin    = 30
)

// baseMargins returns the margins of a kind without optional elements.
func baseMargins(k Kind) Margins {
	switch k {
	case HorizontalBar:
		// names sit left of the bars
		return Margins{Top: 30, Right: 60, Bottom: 50, Left: 200}
	case Area:
		return Margins{Top: 30, Right: 30, Bottom: 60, Left: 60}
	case Scatter:
		return Margins{Top: 30, Right: 30, Bottom: 50, Left: 60}
	case Pie:
		return Margins{}
	}
	return Margins{Top: 30, Right: 30, Bottom: 30, Left: 60}
}

// MarginsFor computes the margins of a kind under cfg. Rotated category
// labels and an x title widen the bottom margin, a y title widens the left
// one. Pie charts keep their own margins inside the layout.
func MarginsFor(k Kind, cfg Config) Margins {
	m := baseMargins(k)
	if !k.axes() {
		return m
	}
	if cfg.RotateLabels && k != HorizontalBar {
		m.Bottom += RotatedLabelMargin
	}
	if cfg.XAxisLabel != "" {
		m.Bottom += AxisTitleMargin
	}
	if cfg.YAxisLabel != "" {
		m.Left += AxisTitleMargin
	}
	return m
}

// Inner returns the plot area left inside d by m. Negative sizes are
// clamped to zero.
func (d Dimensions) Inner(m Margins) (w, h float64) {
	w = math.Max(0, d.Width-m.Left-m.Right)
	h = math.Max(0, d.Height-m.Top-m.Bottom)
	return w, h
}
