package chart

import (
	"context"
	"io"
	"sync"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/dataset"
	"github.com/gogpu/chart/export"
	"github.com/gogpu/chart/interact"
	"github.com/gogpu/chart/render"
	_ "github.com/gogpu/chart/render/raster" // registers "raster"
	_ "github.com/gogpu/chart/render/svg"    // registers "svg"
	"github.com/gogpu/chart/responsive"
	"github.com/gogpu/chart/scene"
)

// Tooltip placement relative to the pointer.
var TooltipOffset = gg.Pt(10, -80)

// TooltipMinTop is the highest a tooltip may be placed.
const TooltipMinTop = 10

// Chart is one chart instance: data, kind, configuration and the transient
// hover state. All methods are safe for concurrent use.
type Chart struct {
	mu sync.Mutex

	kind Kind
	data []dataset.Point
	cfg  Config
	dims Dimensions

	hover interact.Hover
	frame *frame

	sizer   *responsive.Sizer
	mounted bool
	// gen changes on every unmount; callbacks from an older generation
	// are dropped.
	gen uint64

	lastExport export.Result
}

// New creates a chart of the given kind. data is copied; non-finite numbers
// are replaced by zero.
func New(kind Kind, data []dataset.Point, opts ...Option) *Chart {
	c := &Chart{kind: kind, cfg: defaultConfig()}
	c.apply(opts)
	c.dims = c.clamp(0, 0)
	c.setData(data)
	c.refresh("new")
	return c
}

// Kind returns the chart kind.
func (c *Chart) Kind() Kind {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kind
}

// Config returns a copy of the resolved configuration.
func (c *Chart) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// Dimensions returns the current surface size.
func (c *Chart) Dimensions() Dimensions {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dims
}

// Margins returns the margins in effect for the current configuration.
func (c *Chart) Margins() Margins {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame.margins
}

// SetData replaces the dataset and clears the hover state.
func (c *Chart) SetData(data []dataset.Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setData(data)
	c.hover.Clear()
	c.refresh("data")
}

// SetKind switches the chart kind and clears the hover state.
func (c *Chart) SetKind(k Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.kind = k
	c.hover.Clear()
	c.refresh("kind")
}

// Configure applies options on top of the current configuration.
func (c *Chart) Configure(opts ...Option) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apply(opts)
	c.dims = c.clamp(c.dims.Width, c.dims.Height)
	c.hover.Clear()
	c.refresh("config")
}

// Resize sets the surface size. The width is raised to the configured
// minimum and a non-positive height falls back to the default height.
func (c *Chart) Resize(w, h float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dims = c.clamp(w, h)
	c.refresh("resize")
}

// Mount sizes the chart to container and follows its size changes until
// Unmount. Mounting again replaces the previous container.
func (c *Chart) Mount(container responsive.Container) {
	c.Unmount()

	c.mu.Lock()
	gen := c.gen
	s := responsive.NewSizer(func(w, h float64) { c.resized(gen, w, h) })
	s.MinWidth = c.cfg.MinWidth
	c.sizer = s
	c.mounted = true
	c.mu.Unlock()

	s.Attach(container)
}

// Unmount stops following the container. Resize notifications and export
// completions that arrive afterwards do not touch the chart.
func (c *Chart) Unmount() {
	c.mu.Lock()
	s := c.sizer
	c.sizer = nil
	c.mounted = false
	c.gen++
	if _, ok := c.hover.Index(); ok {
		c.hover.Clear()
		c.refresh("unmount")
	}
	c.mu.Unlock()

	if s != nil {
		s.Detach()
	}
}

// Mounted reports whether a container is attached.
func (c *Chart) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mounted
}

func (c *Chart) resized(gen uint64, w, h float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.mounted || c.gen != gen {
		return
	}
	c.dims = c.clamp(w, h)
	c.refresh("resize")
}

// PointerMove updates the hover state for a pointer at (x, y) in surface
// coordinates.
func (c *Chart) PointerMove(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := gg.Pt(x, y)
	i, ok := c.frame.resolve(p)
	cur, hovering := c.hover.Index()
	switch {
	case ok && hovering && cur == i:
		// same mark: only the tooltip follows
		c.hover.Move(p)
		return
	case ok:
		c.hover.Enter(i, p)
	case hovering:
		c.hover.Leave(cur)
	default:
		return
	}
	c.refresh("hover")
}

// PointerLeave clears the hover state.
func (c *Chart) PointerLeave() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.hover.Index(); !ok {
		return
	}
	c.hover.Clear()
	c.refresh("hover")
}

// Click resolves the mark at (x, y) and hands a copy of its item to the
// OnSelect callback. It reports whether a callback ran. The callback runs
// without the chart lock held and may call back into the chart.
func (c *Chart) Click(x, y float64) bool {
	c.mu.Lock()
	i, ok := c.frame.resolve(gg.Pt(x, y))
	sel := interact.Selector{OnSelect: c.cfg.OnSelect}
	data := c.data
	c.mu.Unlock()

	if !ok {
		return false
	}
	return sel.Select(data, i)
}

// Hovered returns the hovered data index.
func (c *Chart) Hovered() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hover.Index()
}

// Tooltip returns the content for the hovered item, or an empty tooltip.
func (c *Chart) Tooltip() interact.Tooltip {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.hover.Index()
	if !ok || c.frame.tooltip == nil {
		return interact.Tooltip{}
	}
	return c.frame.tooltip(i)
}

// Scene returns the current drawing including the tooltip overlay.
func (c *Chart) Scene() *scene.Scene {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.frame.snapshot()
	if g := c.frame.overlay(c.hover, c.dims, c.cfg.measurer()); g != nil {
		s.Add(g)
	}
	return s
}

// ExportScene returns the current drawing without the tooltip overlay.
func (c *Chart) ExportScene() *scene.Scene {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame.snapshot()
}

// Render draws the current scene with a registered backend and writes the
// result to w.
func (c *Chart) Render(w io.Writer, backend string) (int64, error) {
	return render.Render(c.Scene(), backend, w)
}

// Export rasterizes the chart without its tooltip and saves it to the
// configured sink, named after the chart title. It returns at once; the
// channel delivers exactly one Result and is then closed. With export
// disabled the Result is Skipped.
func (c *Chart) Export(ctx context.Context) <-chan export.Result {
	c.mu.Lock()
	cfg := c.cfg
	s := c.frame.snapshot()
	gen := c.gen
	c.mu.Unlock()

	out := make(chan export.Result, 1)
	if !cfg.ShowExportButton {
		Logger().Debug("chart: export disabled", "title", cfg.ChartTitle)
		out <- export.Result{Skipped: true}
		close(out)
		return out
	}

	p := &export.Pipeline{Backend: cfg.ExportBackend, Sink: cfg.ExportSink, Logger: Logger()}
	in := p.Export(ctx, s, cfg.ChartTitle)
	go func() {
		defer close(out)
		r := <-in
		c.exported(gen, r)
		out <- r
	}()
	return out
}

// LastExport returns the result of the most recent export that finished
// while the chart was in the same mount generation it started in.
func (c *Chart) LastExport() export.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastExport
}

func (c *Chart) exported(gen uint64, r export.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		Logger().Debug("chart: export finished after unmount", "name", r.Name)
		return
	}
	c.lastExport = r
}

func (c *Chart) apply(opts []Option) {
	for _, o := range opts {
		if o != nil {
			o(&c.cfg)
		}
	}
}

func (c *Chart) setData(data []dataset.Point) {
	clean, replaced := dataset.Sanitize(data)
	if replaced > 0 {
		Logger().Warn("chart: non-finite values replaced by zero", "kind", c.kind, "replaced", replaced)
	}
	c.data = clean
}

func (c *Chart) clamp(w, h float64) Dimensions {
	w, h = responsive.ClampSize(w, h, c.cfg.MinWidth, responsive.DefaultHeight)
	return Dimensions{Width: w, Height: h}
}

// refresh recomputes the geometry. Callers hold c.mu.
func (c *Chart) refresh(reason string) {
	c.frame = compose(c.kind, c.data, c.dims, c.cfg, c.hover)
	Logger().Debug("chart: geometry recomputed",
		"reason", reason,
		"kind", c.kind,
		"width", c.dims.Width,
		"height", c.dims.Height,
		"points", len(c.data))
}
