package interact

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/dataset"
	"github.com/gogpu/chart/internal/fontmetrics"
)

// Size is a width and height in pixels.
type Size struct{ W, H float64 }

// Place positions a tooltip of the given size near the pointer. x is
// pointer.X+offset.X pulled back so the box stays inside the surface, and y is
// pointer.Y+offset.Y but never above minTop.
func Place(pointer gg.Point, size, surface Size, offset gg.Point, minTop float64) gg.Point {
	x := math.Min(pointer.X+offset.X, surface.W-size.W)
	x = math.Max(x, 0)
	y := math.Max(pointer.Y+offset.Y, minTop)
	return gg.Pt(x, y)
}

// Tooltip is the content of the hover tooltip.
type Tooltip struct {
	Title string
	Lines []string
}

// Empty reports whether there is nothing to show.
func (t Tooltip) Empty() bool { return t.Title == "" && len(t.Lines) == 0 }

// Box metrics for tooltip layout.
const (
	TooltipPadding    = 8
	TooltipLineHeight = 18
	TooltipFontSize   = 12
)

// Measure returns the box size needed to render t with m.
func (t Tooltip) Measure(m fontmetrics.Measurer) Size {
	w := m.Measure(t.Title, TooltipFontSize)
	for _, l := range t.Lines {
		w = math.Max(w, m.Measure(l, TooltipFontSize))
	}
	rows := len(t.Lines)
	if t.Title != "" {
		rows++
	}
	return Size{
		W: math.Ceil(w) + 2*TooltipPadding,
		H: float64(rows)*TooltipLineHeight + 2*TooltipPadding,
	}
}

// Selector forwards clicks on items to a callback.
type Selector struct {
	OnSelect func(dataset.Point)
}

// Select invokes OnSelect with a copy of points[i]. It reports whether a
// callback ran.
func (s Selector) Select(points []dataset.Point, i int) bool {
	if s.OnSelect == nil || i < 0 || i >= len(points) {
		return false
	}
	s.OnSelect(points[i])
	return true
}
