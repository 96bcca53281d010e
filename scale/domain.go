package scale

import "math"

// PadMax returns the value-axis domain used by bar and area charts: from
// min(0, lowest value) up to the highest value grown by pad (0.1 = 10%).
// A dataset with no positive extent yields [lo, lo+1] so zero-height bars stay
// on the baseline.
func PadMax(values []float64, pad float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 1
	}
	lo, hi = 0, math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi <= 0 {
		if lo == 0 {
			return 0, 1
		}
		return lo * (1 + pad), 0
	}
	return lo * (1 + pad), hi * (1 + pad)
}

// PadExtent returns [min-p, max+p] where p = (max-min)*pad. When clampZero is
// set and the data is non-negative, the padding never pushes the lower end
// below zero. A single distinct value yields a degenerate domain, which the
// scales map to the middle of their range.
func PadExtent(values []float64, pad float64, clampZero bool) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	p := (hi - lo) * pad
	if clampZero && lo >= 0 {
		return math.Max(0, lo-p), hi + p
	}
	return lo - p, hi + p
}
