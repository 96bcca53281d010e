package chart

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/interact"
	"github.com/gogpu/chart/layout"
	"github.com/gogpu/chart/scale"
	"github.com/gogpu/chart/scene"
)

// pie composes Pie charts. A dataset whose values sum to zero shows the
// empty state.
func (c *composer) pie() {
	hovered, hovering := c.hover.Index()
	l := layout.Pie(c.data, layout.PieOptions{
		Width:       c.dims.Width,
		Height:      c.dims.Height,
		InnerRatio:  c.cfg.InnerRatio,
		Hovered:     hovered,
		HasHover:    hovering,
		SortByValue: c.cfg.SortSlices,
		Format:      c.num.Compact,
	})
	if len(l.Slices) == 0 {
		c.placeholder()
		return
	}

	names := make([]string, len(l.Slices))
	for k, s := range l.Slices {
		names[k] = s.Name
	}
	colors := scale.NewOrdinal(names, scale.Category10)
	center := c.origin().Add(l.Center)

	g := scene.NewGroup("pie", l.Center.X, l.Center.Y)
	wedges := scene.NewGroup("slices", 0, 0)
	labels := scene.NewGroup("labels", 0, 0)
	for _, s := range l.Slices {
		sh := scene.NewShape("slice", s.Path(), scene.Solid(colors.Map(s.Name)))
		sh.Stroke = scene.Stroke{Paint: scene.Solid(gg.White), Width: 1}
		sh.Opacity = c.recede(s.Index)
		sh.Target = s.Index
		wedges.Add(sh)
		c.target(s.Index, interact.Wedge{
			Center: center,
			Inner:  s.InnerRadius,
			Outer:  s.OuterRadius,
			Start:  s.StartAngle,
			End:    s.EndAngle,
		})

		if s.EndAngle <= s.StartAngle {
			continue
		}
		leader := scene.NewShape("leader", s.Label.Leader(), scene.Paint{})
		leader.Stroke = scene.Stroke{Paint: scene.Hex(colorMuted), Width: 1}
		t := scene.NewText("slice-label", s.Label.Text, s.Label.Anchor.X, s.Label.Anchor.Y, labelFontSize, gg.Hex(colorText))
		t.Baseline = scene.BaselineMiddle
		if s.Label.Side == layout.SideLeft {
			t.Anchor = scene.AnchorEnd
		}
		labels.Add(leader, t)
	}
	g.Add(wedges, labels)
	c.plot.Add(g)

	total := l.Total
	c.f.tooltip = func(i int) interact.Tooltip {
		tip := c.valueTooltip(i)
		share := math.Max(c.data[i].Value, 0) / total * 100
		tip.Lines = append(tip.Lines, fmt.Sprintf("Share: %s", c.num.Percent(share)))
		return tip
	}
}
