package interact

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/scale"
)

// Region is the hit area of one mark.
type Region interface {
	Contains(p gg.Point) bool
}

// Rect is an axis-aligned hit area.
type Rect struct{ X, Y, W, H float64 }

func (r Rect) Contains(p gg.Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Circle is a round hit area.
type Circle struct {
	Center gg.Point
	R      float64
}

func (c Circle) Contains(p gg.Point) bool {
	return p.Distance(c.Center) <= c.R
}

// Wedge is an annular sector hit area. Angles are clockwise from 12 o'clock.
type Wedge struct {
	Center       gg.Point
	Inner, Outer float64
	Start, End   float64
}

func (w Wedge) Contains(p gg.Point) bool {
	d := p.Sub(w.Center)
	r := d.Length()
	if r > w.Outer || r < w.Inner {
		return false
	}
	a := math.Atan2(d.X, -d.Y)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a >= w.Start && a < w.End
}

// Target binds a region to the data index it represents.
type Target struct {
	Index  int
	Region Region
}

// HitTest returns the index of the topmost target containing p. Targets are
// in draw order, so later targets win.
func HitTest(targets []Target, p gg.Point) (int, bool) {
	for i := len(targets) - 1; i >= 0; i-- {
		if targets[i].Region != nil && targets[i].Region.Contains(p) {
			return targets[i].Index, true
		}
	}
	return 0, false
}

// NearestIndex resolves a pixel on a continuous index axis to the nearest
// item in [0, n).
func NearestIndex(s scale.Linear, px float64, n int) (int, bool) {
	if n <= 0 || math.IsNaN(px) {
		return 0, false
	}
	i := int(math.Round(s.Invert(px)))
	return max(0, min(n-1, i)), true
}
