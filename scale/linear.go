package scale

import (
	"math"

	"gonum.org/v1/plot"
)

// Linear is a continuous scale with linear interpolation.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear creates a scale mapping [d0, d1] onto [r0, r1].
// The range may be inverted (r0 > r1), which is how y axes grow upwards.
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Map converts a domain value to a pixel value.
func (s Linear) Map(v float64) float64 {
	span := s.d1 - s.d0
	if span == 0 || math.IsNaN(span) {
		return (s.r0 + s.r1) / 2
	}
	return s.r0 + (v-s.d0)/span*(s.r1-s.r0)
}

// Invert converts a pixel value back to the domain.
func (s Linear) Invert(px float64) float64 {
	span := s.r1 - s.r0
	if span == 0 || s.d0 == s.d1 {
		return s.d0
	}
	return s.d0 + (px-s.r0)/span*(s.d1-s.d0)
}

// Domain returns the domain ends.
func (s Linear) Domain() (float64, float64) { return s.d0, s.d1 }

// Range returns the range ends.
func (s Linear) Range() (float64, float64) { return s.r0, s.r1 }

// Degenerate reports whether the domain collapsed to a single value.
func (s Linear) Degenerate() bool { return s.d0 == s.d1 }

// Ticks returns major tick values within the domain, ascending.
func (s Linear) Ticks() []float64 {
	return Ticks(s.d0, s.d1)
}

// Ticks returns major tick values in [lo, hi], ascending.
func Ticks(lo, hi float64) []float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		return nil
	}
	if lo == hi {
		return []float64{lo}
	}
	var out []float64
	for _, t := range (plot.DefaultTicks{}).Ticks(lo, hi) {
		if t.Label == "" || t.Value < lo || t.Value > hi {
			continue
		}
		out = append(out, t.Value)
	}
	return out
}
