package chart

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/interact"
	"github.com/gogpu/chart/layout"
	"github.com/gogpu/chart/scene"
)

// Category labels under an area chart are thinned to at most this many.
const maxAreaLabels = 12

var guideDash = []float64{3, 3}

// area composes Area charts. Pointer positions anywhere in the plot resolve
// to the nearest data index.
func (c *composer) area() {
	l := layout.Area(c.data, layout.AreaOptions{Width: c.w, Height: c.h})
	c.valueGrid(l.Y, false, c.num.Compact)

	base := gg.Hex(colorBar)
	if l.Fill != nil {
		grad := scene.Vertical("area-fill",
			scene.Stop{Offset: 0, Color: withAlpha(base, 0.45)},
			scene.Stop{Offset: 1, Color: withAlpha(base, 0.05)},
		)
		c.plot.Add(scene.NewShape("area", l.Fill, scene.Gradient(grad)))
	}
	line := scene.NewShape("line", l.Line, scene.Paint{})
	line.Stroke = scene.Stroke{Paint: scene.Solid(base), Width: 2}
	c.plot.Add(line)

	step := int(math.Ceil(float64(len(l.Points)) / maxAreaLabels))
	for i, p := range l.Points {
		if i%step == 0 {
			c.categoryLabel(c.data[i].DisplayName(), p.X)
		}
	}

	marks := scene.NewGroup("points", 0, 0)
	for i, p := range l.Points {
		r := 3.0
		if c.hover.Is(i) {
			r = 5
			stroke := scene.Stroke{Paint: scene.Hex(colorMuted), Width: 1, Dash: guideDash}
			c.plot.Add(scene.Line("guide", p.X, 0, p.X, c.h, stroke))
		}
		dot := gg.NewPath()
		dot.Circle(p.X, p.Y, r)
		sh := scene.NewShape("point", dot, scene.Solid(base))
		sh.Stroke = scene.Stroke{Paint: scene.Solid(gg.White), Width: 1}
		sh.Target = i
		marks.Add(sh)
	}
	c.plot.Add(marks)
	c.axisTitles()

	origin := c.origin()
	n := len(l.Points)
	c.f.continuous = func(p gg.Point) (int, bool) {
		if !c.inside(p) {
			return 0, false
		}
		return interact.NearestIndex(l.X, p.X-origin.X, n)
	}
	c.f.tooltip = c.valueTooltip
}
