package scale

import (
	"math"

	"github.com/gogpu/gg"
)

// Interpolator maps t in [0, 1] to a color.
type Interpolator func(t float64) gg.RGBA

// Category10 is the ten-color categorical palette.
var Category10 = hexes(
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
)

var rdYlBu = hexes(
	"#a50026", "#d73027", "#f46d43", "#fdae61", "#fee090", "#ffffbf",
	"#e0f3f8", "#abd9e9", "#74add1", "#4575b4", "#313695",
)

// RdYlBu is a diverging red-yellow-blue interpolator: 0 is dark red, 1 is
// dark blue.
func RdYlBu(t float64) gg.RGBA {
	return Stops(rdYlBu)(t)
}

// Stops returns an interpolator that blends linearly between evenly spaced
// colors.
func Stops(colors []gg.RGBA) Interpolator {
	return func(t float64) gg.RGBA {
		switch {
		case len(colors) == 0:
			return gg.Black
		case len(colors) == 1:
			return colors[0]
		}
		t = clamp01(t)
		pos := t * float64(len(colors)-1)
		i := int(math.Floor(pos))
		if i >= len(colors)-1 {
			return colors[len(colors)-1]
		}
		return colors[i].Lerp(colors[i+1], pos-float64(i))
	}
}

// Sequential maps a numeric domain onto an interpolator.
type Sequential struct {
	d0, d1 float64
	interp Interpolator
}

// NewSequential creates a sequential color scale. d0 maps to interp(0) and d1
// to interp(1); the domain may be reversed.
func NewSequential(d0, d1 float64, interp Interpolator) Sequential {
	return Sequential{d0: d0, d1: d1, interp: interp}
}

// Map returns the color for v.
func (s Sequential) Map(v float64) gg.RGBA {
	if s.d0 == s.d1 {
		return s.interp(0.5)
	}
	return s.interp((v - s.d0) / (s.d1 - s.d0))
}

// Ordinal assigns palette colors to categories in domain order, cycling when
// there are more categories than colors.
type Ordinal struct {
	index   map[string]int
	palette []gg.RGBA
}

// NewOrdinal creates an ordinal color scale.
func NewOrdinal(domain []string, palette []gg.RGBA) Ordinal {
	o := Ordinal{index: make(map[string]int, len(domain)), palette: palette}
	for _, d := range domain {
		if _, ok := o.index[d]; !ok {
			o.index[d] = len(o.index)
		}
	}
	return o
}

// Map returns the color of a category. Unknown categories take the next free
// slot of the palette so repeated lookups stay stable.
func (o Ordinal) Map(category string) gg.RGBA {
	if len(o.palette) == 0 {
		return gg.Black
	}
	i, ok := o.index[category]
	if !ok {
		i = len(o.index)
		o.index[category] = i
	}
	return o.palette[i%len(o.palette)]
}

func hexes(values ...string) []gg.RGBA {
	out := make([]gg.RGBA, len(values))
	for i, v := range values {
		out[i] = gg.Hex(v)
	}
	return out
}

func clamp01(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
