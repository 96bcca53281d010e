package chart

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/chart/interact"
	"github.com/gogpu/chart/internal/textfmt"
	"github.com/gogpu/chart/layout"
	"github.com/gogpu/chart/scale"
	"github.com/gogpu/chart/scene"
)

// Horizontal bar names get more room than category labels under a plot.
const nameBudget = 28

var (
	selectedDash = []float64{5, 5}
	meanDash     = []float64{4, 4}
)

// bars composes Bar and HorizontalBar charts.
func (c *composer) bars() {
	horizontal := c.kind == HorizontalBar
	l := layout.Bars(c.data, layout.BarOptions{
		Width:         c.w,
		Height:        c.h,
		Horizontal:    horizontal,
		PreserveOrder: c.cfg.PreserveOrder,
		TopN:          c.cfg.TopN,
	})
	c.valueGrid(l.Value, horizontal, c.num.Compact)

	var ranked []gg.RGBA
	if horizontal {
		ranked = l.Colors(scale.RdYlBu)
	}
	origin := c.origin()
	marks := scene.NewGroup("bars", 0, 0)
	labels := scene.NewGroup("labels", 0, 0)
	for k, b := range l.Bars {
		fill := gg.Hex(colorBar)
		if ranked != nil {
			fill = ranked[k]
		}
		selected := c.selected(b.Index)
		switch {
		case selected:
			fill = gg.Hex(colorSelected)
		case c.hover.Is(b.Index):
			fill = gg.Hex(colorHover)
		}
		sh := scene.NewShape("bar", b.Path(barRadius), scene.Solid(fill))
		sh.Stroke = scene.Stroke{Paint: scene.Solid(gg.White), Width: 1}
		sh.Target = b.Index
		sh.Opacity = c.recede(b.Index)
		marks.Add(sh)
		c.target(b.Index, interact.Rect{X: origin.X + b.X, Y: origin.Y + b.Y, W: b.W, H: b.H})

		if selected {
			p := gg.NewPath()
			p.RoundedRectangle(b.X-5, b.Y-5, b.W+10, b.H+10, 6)
			outline := scene.NewShape("selected", p, scene.Paint{})
			outline.Stroke = scene.Stroke{Paint: scene.Hex(colorSelected), Width: 3, Dash: selectedDash}
			marks.Add(outline)
		}

		if c.cfg.ShowValueLabel {
			t := scene.NewText("value", c.num.Full(b.Value), b.Label.X, b.Label.Y, titleFontSize, gg.Hex(colorText))
			if horizontal {
				t.Baseline = scene.BaselineMiddle
			} else {
				t.Anchor = scene.AnchorMiddle
			}
			labels.Add(t)
		}

		if horizontal {
			t := scene.NewText("name", textfmt.Truncate(b.Name, nameBudget), -labelGap, b.Y+b.H/2, labelFontSize, gg.Hex(colorText))
			t.Anchor = scene.AnchorEnd
			t.Baseline = scene.BaselineMiddle
			labels.Add(t)
		} else {
			c.categoryLabel(b.Name, b.X+b.W/2)
		}
	}
	c.plot.Add(marks, labels)

	if horizontal && len(l.Bars) > 0 {
		x := l.Value.Map(l.Mean)
		stroke := scene.Stroke{Paint: scene.Hex(colorMuted), Width: 1, Dash: meanDash}
		t := scene.NewText("mean", "Mean: "+c.num.Full(l.Mean), x, -labelGap, labelFontSize, gg.Hex(colorMuted))
		t.Anchor = scene.AnchorMiddle
		c.plot.Add(scene.Line("mean", x, 0, x, c.h, stroke), t)
	}
	c.axisTitles()
	c.f.tooltip = c.valueTooltip
}
