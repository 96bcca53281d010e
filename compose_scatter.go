package chart

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/dataset"
	"github.com/gogpu/chart/interact"
	"github.com/gogpu/chart/layout"
	"github.com/gogpu/chart/scale"
	"github.com/gogpu/chart/scene"
)

// Scatter styling.
const (
	bubbleOpacity = 0.7
	hoverGrow     = 1.5
	tintOpacity   = 0.08
	legendRow     = 18
	legendWidth   = 120
)

var quadrantColors = map[layout.Quadrant]string{
	layout.TopRight:    "#10b981",
	layout.TopLeft:     "#3b82f6",
	layout.BottomLeft:  "#ef4444",
	layout.BottomRight: "#f59e0b",
}

var meanDashScatter = []float64{5, 5}

// scatterIndices applies the quadrant filter and the top-N cap. Nil keeps
// every point.
func (c *composer) scatterIndices() []int {
	var idx []int
	if q := c.cfg.QuadrantFilter; q != nil {
		idx = layout.FilterQuadrant(c.data, *q)
		if idx == nil {
			idx = []int{}
		}
	}
	if c.cfg.TopN > 0 {
		if idx == nil {
			idx = make([]int, len(c.data))
			for i := range idx {
				idx[i] = i
			}
		}
		idx = layout.TopByWeight(c.data, idx, c.cfg.TopN)
	}
	return idx
}

// scatter composes Scatter charts.
func (c *composer) scatter() {
	idx := c.scatterIndices()
	if idx != nil && len(idx) == 0 {
		c.placeholder()
		return
	}
	l := layout.Scatter(c.data, layout.ScatterOptions{
		Width:     c.w,
		Height:    c.h,
		Jitter:    c.cfg.Jitter,
		UseWeight: c.cfg.UseWeight,
		Indices:   idx,
	})

	fixed := func(v float64) string { return c.num.Fixed(v, 2) }
	c.valueGrid(l.X, true, fixed)
	c.valueGrid(l.Y, false, fixed)
	if c.cfg.Quadrants {
		c.quadrants(l)
	}

	color := func(p dataset.Point, q layout.Quadrant) gg.RGBA { return gg.Hex(quadrantColors[q]) }
	var groups []string
	if c.cfg.GroupColors {
		groups = dataset.Groups(c.data)
		ord := scale.NewOrdinal(groups, scale.Category10)
		color = func(p dataset.Point, _ layout.Quadrant) gg.RGBA { return ord.Map(p.Group) }
	}

	origin := c.origin()
	marks := scene.NewGroup("bubbles", 0, 0)
	for _, b := range l.Bubbles {
		factor := 1.0
		opacity := bubbleOpacity
		switch {
		case c.hover.Is(b.Index):
			factor, opacity = hoverGrow, 1
		case c.recede(b.Index) > 0:
			opacity = recedeOpacity
		}
		sh := scene.NewShape("bubble", b.Path(factor), scene.Solid(color(c.data[b.Index], b.Quadrant)))
		sh.Stroke = scene.Stroke{Paint: scene.Solid(gg.White), Width: 1}
		sh.Opacity = opacity
		sh.Target = b.Index
		marks.Add(sh)
		c.target(b.Index, interact.Circle{Center: origin.Add(b.Center), R: b.Radius * factor})
	}
	c.plot.Add(marks)

	if c.cfg.TrendLine && l.Trend != nil {
		if a, b, ok := clipSegment(l.Trend.From, l.Trend.To, c.w, c.h); ok {
			stroke := scene.Stroke{Paint: scene.Hex(colorTitle), Width: 2}
			c.plot.Add(scene.Line("trend", a.X, a.Y, b.X, b.Y, stroke))
		}
		t := scene.NewText("correlation", fmt.Sprintf("r = %.3f", l.Trend.R), c.w, -labelGap, labelFontSize, gg.Hex(colorText))
		t.Anchor = scene.AnchorEnd
		c.plot.Add(t)
	}
	if len(groups) > 0 {
		c.legend(groups, color)
	}
	c.axisTitles()

	meanX, meanY := l.MeanX, l.MeanY
	c.f.tooltip = func(i int) interact.Tooltip {
		p := c.data[i]
		tip := interact.Tooltip{Title: p.DisplayName()}
		tip.Lines = append(tip.Lines,
			fmt.Sprintf("%s: %s", axisName(c.cfg.XAxisLabel, "X"), c.num.Fixed(p.X, 2)),
			fmt.Sprintf("%s: %s", axisName(c.cfg.YAxisLabel, "Y"), c.num.Fixed(p.Y, 2)),
		)
		if c.cfg.UseWeight || p.Weight != 0 {
			tip.Lines = append(tip.Lines, fmt.Sprintf("%s: %s", c.cfg.ValueLabel, c.num.Full(p.Weight)))
		}
		if p.Group != "" {
			tip.Lines = append(tip.Lines, "Group: "+p.Group)
		}
		tip.Lines = append(tip.Lines, "Quadrant: "+layout.Classify(p.X, p.Y, meanX, meanY).String())
		return tip
	}
}

// quadrants tints the four quadrants, draws the mean guides and labels each
// quadrant with its point count over the whole dataset.
func (c *composer) quadrants(l layout.ScatterLayout) {
	g := scene.NewGroup("quadrants", 0, 0)
	counts := layout.QuadrantCounts(c.data)
	for _, q := range layout.Quadrants {
		x, y, w, h := l.QuadrantRect(q)
		g.Add(scene.Rect("quadrant", x, y, w, h, scene.Solid(withAlpha(gg.Hex(quadrantColors[q]), tintOpacity))))

		label := fmt.Sprintf("%s (%d)", q, counts[q])
		t := scene.NewText("quadrant-label", label, labelGap/2, labelGap, tickFontSize, gg.Hex(colorMuted))
		t.Baseline = scene.BaselineHanging
		if q == layout.TopRight || q == layout.BottomRight {
			t.Pos.X = c.w - labelGap/2
			t.Anchor = scene.AnchorEnd
		}
		if q == layout.BottomLeft || q == layout.BottomRight {
			t.Pos.Y = c.h - labelGap/2
			t.Baseline = scene.BaselineAlphabetic
		}
		g.Add(t)
	}
	stroke := scene.Stroke{Paint: scene.Hex(colorAxis), Width: 1, Dash: meanDashScatter}
	mx := clampUnit(l.Mean.X, c.w)
	my := clampUnit(l.Mean.Y, c.h)
	g.Add(
		scene.Line("mean", mx, 0, mx, c.h, stroke),
		scene.Line("mean", 0, my, c.w, my, stroke),
	)
	c.plot.Add(g)
}

// legend lists the group colors in the top-right corner of the plot.
func (c *composer) legend(groups []string, color func(dataset.Point, layout.Quadrant) gg.RGBA) {
	g := scene.NewGroup("legend", c.w-legendWidth, labelGap)
	for k, name := range groups {
		y := float64(k) * legendRow
		dot := gg.NewPath()
		dot.Circle(5, y+5, 5)
		g.Add(scene.NewShape("legend-swatch", dot, scene.Solid(color(dataset.Point{Group: name}, 0))))
		label := name
		if label == "" {
			label = "(none)"
		}
		t := scene.NewText("legend-label", label, 16, y+5, labelFontSize, gg.Hex(colorText))
		t.Baseline = scene.BaselineMiddle
		g.Add(t)
	}
	c.plot.Add(g)
}

func axisName(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}

func clampUnit(v, hi float64) float64 {
	return max(0, min(hi, v))
}

// clipSegment clips the segment a-b to the rectangle [0,w]x[0,h] with the
// Liang-Barsky algorithm.
func clipSegment(a, b gg.Point, w, h float64) (gg.Point, gg.Point, bool) {
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, a.X},
		{d.X, w - a.X},
		{-d.Y, a.Y},
		{d.Y, h - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = max(t0, r)
		} else {
			t1 = min(t1, r)
		}
		if t0 > t1 {
			return a, b, false
		}
	}
	return a.Add(d.Mul(t0)), a.Add(d.Mul(t1)), true
}
