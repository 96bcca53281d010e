package layout

import (
	"math"
	"sort"

	"github.com/gogpu/gg"
	"gonum.org/v1/gonum/stat"

	"github.com/gogpu/chart/dataset"
	"github.com/gogpu/chart/scale"
)

// Scatter defaults.
const (
	DefaultJitter       = 0.015
	ScatterDomainPad    = 0.1
	BubbleMinRadius     = 4
	BubbleMaxRadius     = 30
	DefaultBubbleRadius = 4
)

// Quadrant is a region of the scatter plane split at the means. Values equal
// to a mean fall on the low side.
type Quadrant int

const (
	BottomLeft Quadrant = iota
	BottomRight
	TopLeft
	TopRight
)

// Quadrants lists every quadrant in a stable order.
var Quadrants = [...]Quadrant{TopRight, TopLeft, BottomLeft, BottomRight}

func (q Quadrant) String() string {
	switch q {
	case TopRight:
		return "top-right"
	case TopLeft:
		return "top-left"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return "unknown"
}

// Classify places (x, y) relative to the means.
func Classify(x, y, meanX, meanY float64) Quadrant {
	q := BottomLeft
	if x > meanX {
		q |= BottomRight
	}
	if y > meanY {
		q |= TopLeft
	}
	return q
}

// Jitter returns the deterministic unit offset for the i-th point scaled by
// k. Multiply by the domain span to get data units.
func Jitter(i int, k float64) (dx, dy float64) {
	t := float64(i) * 0.1
	return math.Sin(t) * 0.5 * k, math.Cos(t) * 0.5 * k
}

// ScatterOptions controls scatter layout.
type ScatterOptions struct {
	Width, Height float64

	// Jitter is the jitter factor k; 0 selects DefaultJitter, negative
	// disables jitter.
	Jitter float64

	// UseWeight sizes bubbles by Weight with an area-proportional scale.
	UseWeight bool

	// Indices restricts the layout to a subset of the input. Nil lays out
	// every point.
	Indices []int
}

// Bubble is one laid-out scatter mark.
type Bubble struct {
	Index    int
	Center   gg.Point
	Radius   float64
	Quadrant Quadrant
}

// Path returns the bubble outline grown by factor.
func (b Bubble) Path(factor float64) *gg.Path {
	p := gg.NewPath()
	p.Circle(b.Center.X, b.Center.Y, b.Radius*factor)
	return p
}

// Trend is the fitted line clipped to the x domain, in pixels.
type Trend struct {
	Fit
	From, To gg.Point
}

// ScatterLayout is the result of Scatter.
type ScatterLayout struct {
	Bubbles []Bubble
	X, Y    scale.Linear

	MeanX, MeanY float64
	// Mean is the pixel position of the mean cross.
	Mean gg.Point

	// Trend is nil when no line can be fitted.
	Trend *Trend
}

// Scatter lays out one bubble per point. Domains are padded by 10% on both
// ends and clamped at zero for non-negative data. Jitter offsets are
// proportional to each domain span, so a zero span yields no jitter.
func Scatter(points []dataset.Point, o ScatterOptions) ScatterLayout {
	idx := o.Indices
	if idx == nil {
		idx = make([]int, len(points))
		for i := range idx {
			idx[i] = i
		}
	}
	xs := make([]float64, len(idx))
	ys := make([]float64, len(idx))
	ws := make([]float64, len(idx))
	for i, j := range idx {
		xs[i], ys[i], ws[i] = points[j].X, points[j].Y, points[j].Weight
	}

	var l ScatterLayout
	x0, x1 := scale.PadExtent(xs, ScatterDomainPad, true)
	y0, y1 := scale.PadExtent(ys, ScatterDomainPad, true)
	l.X = scale.NewLinear(x0, x1, 0, o.Width)
	l.Y = scale.NewLinear(y0, y1, o.Height, 0)
	if len(idx) > 0 {
		l.MeanX, l.MeanY = stat.Mean(xs, nil), stat.Mean(ys, nil)
	}
	l.Mean = gg.Pt(l.X.Map(l.MeanX), l.Y.Map(l.MeanY))

	k := o.Jitter
	switch {
	case k == 0:
		k = DefaultJitter
	case k < 0:
		k = 0
	}
	spanX, spanY := x1-x0, y1-y0

	radius := func(float64) float64 { return DefaultBubbleRadius }
	if o.UseWeight {
		lo, hi, _ := dataset.Extent(ws)
		r := scale.NewSqrt(math.Min(lo, 0), hi, BubbleMinRadius, BubbleMaxRadius)
		if hi <= 0 {
			r = scale.NewSqrt(0, 0, BubbleMinRadius, BubbleMinRadius)
		}
		radius = r.Map
	}

	l.Bubbles = make([]Bubble, len(idx))
	for i, j := range idx {
		dx, dy := Jitter(i, k)
		l.Bubbles[i] = Bubble{
			Index:    j,
			Center:   gg.Pt(l.X.Map(xs[i]+dx*spanX), l.Y.Map(ys[i]+dy*spanY)),
			Radius:   radius(ws[i]),
			Quadrant: Classify(xs[i], ys[i], l.MeanX, l.MeanY),
		}
	}

	if f, ok := FitLine(xs, ys); ok {
		l.Trend = &Trend{
			Fit:  f,
			From: gg.Pt(l.X.Map(x0), l.Y.Map(f.At(x0))),
			To:   gg.Pt(l.X.Map(x1), l.Y.Map(f.At(x1))),
		}
	}
	return l
}

// QuadrantRect returns the pixel rectangle of q bounded by the plot area and
// the mean cross.
func (l ScatterLayout) QuadrantRect(q Quadrant) (x, y, w, h float64) {
	_, width := l.X.Range()
	height, _ := l.Y.Range()
	mx, my := clampRange(l.Mean.X, 0, width), clampRange(l.Mean.Y, 0, height)
	switch q {
	case TopLeft:
		return 0, 0, mx, my
	case TopRight:
		return mx, 0, width - mx, my
	case BottomLeft:
		return 0, my, mx, height - my
	default:
		return mx, my, width - mx, height - my
	}
}

// QuadrantCounts tallies points per quadrant against their own means.
func QuadrantCounts(points []dataset.Point) map[Quadrant]int {
	counts := make(map[Quadrant]int, len(Quadrants))
	for _, q := range Quadrants {
		counts[q] = 0
	}
	if len(points) == 0 {
		return counts
	}
	mx, my := means(points)
	for _, p := range points {
		counts[Classify(p.X, p.Y, mx, my)]++
	}
	return counts
}

// FilterQuadrant returns the indices of points in q, in input order.
func FilterQuadrant(points []dataset.Point, q Quadrant) []int {
	if len(points) == 0 {
		return nil
	}
	mx, my := means(points)
	var out []int
	for i, p := range points {
		if Classify(p.X, p.Y, mx, my) == q {
			out = append(out, i)
		}
	}
	return out
}

// TopByWeight keeps the n heaviest of idx, returned in ascending index order.
// n <= 0 keeps everything.
func TopByWeight(points []dataset.Point, idx []int, n int) []int {
	if n <= 0 || n >= len(idx) {
		return idx
	}
	ranked := append([]int(nil), idx...)
	sort.SliceStable(ranked, func(a, b int) bool {
		return points[ranked[a]].Weight > points[ranked[b]].Weight
	})
	ranked = ranked[:n]
	sort.Ints(ranked)
	return ranked
}

func means(points []dataset.Point) (mx, my float64) {
	xs := dataset.Metric(points, func(p dataset.Point) float64 { return p.X })
	ys := dataset.Metric(points, func(p dataset.Point) float64 { return p.Y })
	return stat.Mean(xs, nil), stat.Mean(ys, nil)
}

func clampRange(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
