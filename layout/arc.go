package layout

import (
	"math"

	"github.com/gogpu/gg"
)

// Polar returns the point at radius r along angle a, where a is measured
// clockwise from 12 o'clock.
func Polar(a, r float64) gg.Point {
	return gg.Pt(r*math.Sin(a), -r*math.Cos(a))
}

// appendArc continues p with cubic segments along a circle of radius r
// centred on c, from clock angle a0 to a1. The sweep may run either way; the
// path's current point is expected to sit at the arc start.
func appendArc(p *gg.Path, c gg.Point, r, a0, a1 float64) {
	// convert clock angles to screen angles (0 = 3 o'clock, y down)
	t0, t1 := a0-math.Pi/2, a1-math.Pi/2
	sweep := t1 - t0
	if sweep == 0 || r <= 0 {
		return
	}
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	for i := 0; i < n; i++ {
		s0 := t0 + float64(i)*step
		s1 := s0 + step
		alpha := math.Sin(s1-s0) * (math.Sqrt(4+3*math.Tan((s1-s0)/2)*math.Tan((s1-s0)/2)) - 1) / 3

		cos0, sin0 := math.Cos(s0), math.Sin(s0)
		cos1, sin1 := math.Cos(s1), math.Sin(s1)
		x0, y0 := c.X+r*cos0, c.Y+r*sin0
		x1, y1 := c.X+r*cos1, c.Y+r*sin1
		p.CubicTo(
			x0-alpha*r*sin0, y0+alpha*r*cos0,
			x1+alpha*r*sin1, y1-alpha*r*cos1,
			x1, y1,
		)
	}
}

// Wedge builds the outline of an annular sector. innerRadius 0 yields a pie
// slice that closes on the centre.
func Wedge(c gg.Point, innerRadius, outerRadius, a0, a1 float64) *gg.Path {
	p := gg.NewPath()
	start := Polar(a0, outerRadius).Add(c)
	if innerRadius <= 0 {
		p.MoveTo(c.X, c.Y)
		p.LineTo(start.X, start.Y)
		appendArc(p, c, outerRadius, a0, a1)
		p.Close()
		return p
	}
	p.MoveTo(start.X, start.Y)
	appendArc(p, c, outerRadius, a0, a1)
	end := Polar(a1, innerRadius).Add(c)
	p.LineTo(end.X, end.Y)
	appendArc(p, c, innerRadius, a1, a0)
	p.Close()
	return p
}
