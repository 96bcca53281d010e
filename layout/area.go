package layout

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/dataset"
	"github.com/gogpu/chart/scale"
)

// AreaOptions controls area layout.
type AreaOptions struct {
	Width, Height float64
	// Tension of the cardinal spline in [0, 1]; 0 is the Catmull-Rom-like
	// default and 1 draws straight segments.
	Tension float64
}

// AreaLayout is the result of Area.
type AreaLayout struct {
	// Points are the data vertices in input order.
	Points []gg.Point
	X, Y   scale.Linear

	// Line is the smoothed upper edge; Fill closes it to the baseline. Fill is
	// nil with fewer than two points.
	Line, Fill *gg.Path

	Baseline float64
}

// Area lays out points at x = index and y = value. The value domain is
// [0, max·1.1].
func Area(points []dataset.Point, o AreaOptions) AreaLayout {
	values := dataset.Values(points)
	lo, hi := scale.PadMax(values, ValueDomainPad)
	var l AreaLayout
	l.X = scale.NewLinear(0, float64(max(len(points)-1, 0)), 0, o.Width)
	l.Y = scale.NewLinear(lo, hi, o.Height, 0)
	l.Baseline = l.Y.Map(0)

	l.Points = make([]gg.Point, len(points))
	for i, v := range values {
		l.Points[i] = gg.Pt(l.X.Map(float64(i)), l.Y.Map(v))
	}

	l.Line = gg.NewPath()
	Cardinal(l.Line, l.Points, o.Tension)
	if len(l.Points) >= 2 {
		l.Fill = gg.NewPath()
		first, last := l.Points[0], l.Points[len(l.Points)-1]
		l.Fill.MoveTo(first.X, l.Baseline)
		l.Fill.LineTo(first.X, first.Y)
		cardinalSegments(l.Fill, l.Points, o.Tension)
		l.Fill.LineTo(last.X, l.Baseline)
		l.Fill.Close()
	}
	return l
}

// NearestIndex resolves a pixel x to the closest data index.
func (l AreaLayout) NearestIndex(px float64) (int, bool) {
	n := len(l.Points)
	if n == 0 {
		return 0, false
	}
	i := int(math.Round(l.X.Invert(px)))
	return max(0, min(n-1, i)), true
}

// Cardinal appends a cardinal spline through pts to p, starting with a MoveTo.
func Cardinal(p *gg.Path, pts []gg.Point, tension float64) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	cardinalSegments(p, pts, tension)
}

// cardinalSegments appends the curve from pts[0] onwards; the current point
// must already be pts[0]. End points are duplicated as their own neighbours.
func cardinalSegments(p *gg.Path, pts []gg.Point, tension float64) {
	k := (1 - clampRange(tension, 0, 1)) / 6
	n := len(pts)
	for i := 0; i+1 < n; i++ {
		p0 := pts[max(i-1, 0)]
		p1, p2 := pts[i], pts[i+1]
		p3 := pts[min(i+2, n-1)]
		c1 := p1.Add(p2.Sub(p0).Mul(k))
		c2 := p2.Sub(p3.Sub(p1).Mul(k))
		p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p2.X, p2.Y)
	}
}
