package chart

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/dataset"
	"github.com/gogpu/chart/interact"
	"github.com/gogpu/chart/internal/fontmetrics"
	"github.com/gogpu/chart/internal/textfmt"
	"github.com/gogpu/chart/scale"
	"github.com/gogpu/chart/scene"
)

// Palette.
const (
	colorBar       = "#3b82f6"
	colorHover     = "#f97316"
	colorSelected  = "#ef4444"
	colorText      = "#374151"
	colorMuted     = "#6b7280"
	colorGrid      = "#e5e7eb"
	colorAxis      = "#9ca3af"
	colorTitle     = "#111827"
	colorTooltipBg = "#ffffff"
)

// Mark styling.
const (
	barRadius      = 4
	recedeOpacity  = 0.3
	tickFontSize   = 10
	labelFontSize  = 11
	titleFontSize  = 12
	emptyFontSize  = 14
	labelGap       = 10
	tooltipRadius  = 6
	categoryBudget = 20
)

var gridDash = []float64{2, 2}

// frame is the derived geometry of one (data, dimensions, config, hover)
// tuple. It is rebuilt on every change and never modified afterwards.
type frame struct {
	scene   *scene.Scene
	margins Margins
	empty   bool

	targets []interact.Target
	// continuous resolves pointers along an index axis; when nil the
	// targets are hit tested.
	continuous func(p gg.Point) (int, bool)
	tooltip    func(i int) interact.Tooltip
}

func (f *frame) resolve(p gg.Point) (int, bool) {
	if f.empty {
		return 0, false
	}
	if f.continuous != nil {
		return f.continuous(p)
	}
	return interact.HitTest(f.targets, p)
}

// snapshot returns a scene sharing the frame's nodes under a fresh root, so
// nodes added to it do not leak into the frame.
func (f *frame) snapshot() *scene.Scene {
	s := *f.scene
	s.Root = scene.NewGroup(f.scene.Root.ID, 0, 0)
	s.Root.Children = append([]scene.Node(nil), f.scene.Root.Children...)
	return &s
}

// overlay builds the tooltip box for the hovered item.
func (f *frame) overlay(h interact.Hover, dims Dimensions, m fontmetrics.Measurer) *scene.Group {
	i, ok := h.Index()
	if !ok || f.tooltip == nil {
		return nil
	}
	tip := f.tooltip(i)
	if tip.Empty() {
		return nil
	}
	size := tip.Measure(m)
	surface := interact.Size{W: dims.Width, H: dims.Height}
	pos := interact.Place(h.Pointer(), size, surface, TooltipOffset, TooltipMinTop)

	g := scene.NewGroup("tooltip", pos.X, pos.Y)
	box := gg.NewPath()
	box.RoundedRectangle(0, 0, size.W, size.H, tooltipRadius)
	bg := scene.NewShape("tooltip-box", box, scene.Hex(colorTooltipBg))
	bg.Stroke = scene.Stroke{Paint: scene.Hex(colorGrid), Width: 1}
	g.Add(bg)

	pad := float64(interact.TooltipPadding)
	y := pad + (interact.TooltipLineHeight-interact.TooltipFontSize)/2
	if tip.Title != "" {
		t := scene.NewText("tooltip-title", tip.Title, pad, y, interact.TooltipFontSize, gg.Hex(colorTitle))
		t.Baseline = scene.BaselineHanging
		t.Bold = true
		g.Add(t)
		y += interact.TooltipLineHeight
	}
	for _, line := range tip.Lines {
		t := scene.NewText("tooltip-line", line, pad, y, interact.TooltipFontSize, gg.Hex(colorText))
		t.Baseline = scene.BaselineHanging
		g.Add(t)
		y += interact.TooltipLineHeight
	}
	return g
}

// composer carries the inputs of one composition.
type composer struct {
	kind  Kind
	data  []dataset.Point
	cfg   Config
	dims  Dimensions
	hover interact.Hover
	num   textfmt.Formatter

	m    Margins
	w, h float64

	plot *scene.Group
	f    *frame
}

func compose(k Kind, data []dataset.Point, dims Dimensions, cfg Config, hover interact.Hover) *frame {
	c := &composer{
		kind:  k,
		data:  data,
		cfg:   cfg,
		dims:  dims,
		hover: hover,
		num:   textfmt.NewFormatter(cfg.Locale),
		m:     MarginsFor(k, cfg),
	}
	c.w, c.h = dims.Inner(c.m)
	s := scene.New(dims.Width, dims.Height)
	s.Title = cfg.ChartTitle
	c.f = &frame{scene: s, margins: c.m}
	c.plot = scene.NewGroup("plot", c.m.Left, c.m.Top)

	if len(data) == 0 {
		c.placeholder()
		return c.f
	}
	switch k {
	case Bar, HorizontalBar:
		c.bars()
	case Pie:
		c.pie()
	case Area:
		c.area()
	case Scatter:
		c.scatter()
	default:
		c.placeholder()
	}
	if !c.f.empty {
		s.Add(c.plot)
	}
	return c.f
}

// placeholder replaces the chart by a centred message.
func (c *composer) placeholder() {
	c.f.empty = true
	c.f.targets = nil
	c.f.continuous = nil
	c.f.tooltip = nil
	t := scene.NewText("empty", c.cfg.EmptyMessage, c.dims.Width/2, c.dims.Height/2, emptyFontSize, gg.Hex(colorMuted))
	t.Anchor = scene.AnchorMiddle
	t.Baseline = scene.BaselineMiddle
	c.f.scene.Add(t)
}

// target registers a hit region in surface coordinates.
func (c *composer) target(i int, r interact.Region) {
	c.f.targets = append(c.f.targets, interact.Target{Index: i, Region: r})
}

// origin is the plot offset on the surface.
func (c *composer) origin() gg.Point { return gg.Pt(c.m.Left, c.m.Top) }

// recede fades marks other than the hovered one.
func (c *composer) recede(i int) float64 {
	if cur, ok := c.hover.Index(); ok && cur != i {
		return recedeOpacity
	}
	return 0
}

// selected reports whether the item is drawn as selected.
func (c *composer) selected(i int) bool {
	p := c.data[i]
	if p.Highlighted {
		return true
	}
	return c.cfg.Selected != "" && (p.Name == c.cfg.Selected || p.DisplayName() == c.cfg.Selected)
}

// valueGrid draws one grid line per tick of s with its label. alongX puts
// the value axis horizontally. The zero line is solid, the others dashed.
func (c *composer) valueGrid(s scale.Linear, alongX bool, format func(float64) string) {
	g := scene.NewGroup("grid", 0, 0)
	for _, v := range s.Ticks() {
		px := s.Map(v)
		stroke := scene.Stroke{Paint: scene.Hex(colorGrid), Width: 1, Dash: gridDash}
		if v == 0 {
			stroke = scene.Stroke{Paint: scene.Hex(colorAxis), Width: 1}
		}
		var line *scene.Shape
		var t *scene.Text
		if alongX {
			line = scene.Line("grid", px, 0, px, c.h, stroke)
			t = scene.NewText("tick", format(v), px, c.h+labelGap, tickFontSize, gg.Hex(colorMuted))
			t.Anchor = scene.AnchorMiddle
			t.Baseline = scene.BaselineHanging
		} else {
			line = scene.Line("grid", 0, px, c.w, px, stroke)
			t = scene.NewText("tick", format(v), -labelGap, px, tickFontSize, gg.Hex(colorMuted))
			t.Anchor = scene.AnchorEnd
			t.Baseline = scene.BaselineMiddle
		}
		g.Add(line, t)
	}
	c.plot.Add(g)
}

// categoryLabel draws a category name under the plot at x.
func (c *composer) categoryLabel(name string, x float64) {
	t := scene.NewText("category", textfmt.Truncate(name, categoryBudget), x, c.h+labelGap, labelFontSize, gg.Hex(colorText))
	if c.cfg.RotateLabels {
		t.Anchor = scene.AnchorEnd
		t.Baseline = scene.BaselineMiddle
		t.Rotate = -45
	} else {
		t.Anchor = scene.AnchorMiddle
		t.Baseline = scene.BaselineHanging
	}
	c.plot.Add(t)
}

// axisTitles draws the optional axis titles inside the margins.
func (c *composer) axisTitles() {
	if s := c.cfg.XAxisLabel; s != "" {
		t := scene.NewText("axis-title", s, c.w/2, c.h+c.m.Bottom-labelGap, titleFontSize, gg.Hex(colorText))
		t.Anchor = scene.AnchorMiddle
		t.Bold = true
		c.plot.Add(t)
	}
	if s := c.cfg.YAxisLabel; s != "" {
		t := scene.NewText("axis-title", s, -c.m.Left+2*labelGap, c.h/2, titleFontSize, gg.Hex(colorText))
		t.Anchor = scene.AnchorMiddle
		t.Baseline = scene.BaselineMiddle
		t.Rotate = -90
		t.Bold = true
		c.plot.Add(t)
	}
}

// valueTooltip is the tooltip of bar and area items.
func (c *composer) valueTooltip(i int) interact.Tooltip {
	p := c.data[i]
	tip := interact.Tooltip{Title: p.DisplayName()}
	if p.FullName != "" && p.FullName != p.Name {
		tip.Lines = append(tip.Lines, fmt.Sprintf("%s: %s", c.cfg.ItemLabel, p.Name))
	}
	tip.Lines = append(tip.Lines, fmt.Sprintf("%s: %s", c.cfg.ValueLabel, c.num.Full(p.Value)))
	if p.ID != 0 {
		tip.Lines = append(tip.Lines, fmt.Sprintf("ID: %d", p.ID))
	}
	return tip
}

// inside reports whether p, in surface coordinates, lies in the plot area.
func (c *composer) inside(p gg.Point) bool {
	q := p.Sub(c.origin())
	return q.X >= 0 && q.X <= c.w && q.Y >= 0 && q.Y <= c.h
}

func withAlpha(c gg.RGBA, a float64) gg.RGBA {
	c.A = math.Max(0, math.Min(1, a))
	return c
}
