package scale

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestSqrtAreaProportional(t *testing.T) {
	s := NewSqrt(0, 100, 0, 10)
	r25, r100 := s.Map(25), s.Map(100)
	if math.Abs(r25-5) > 1e-9 || math.Abs(r100-10) > 1e-9 {
		t.Fatalf("Map(25)=%v Map(100)=%v", r25, r100)
	}
	// area ratio equals value ratio
	if got := (r25 * r25) / (r100 * r100); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("area ratio = %v, want 0.25", got)
	}
	if got := s.Invert(5); math.Abs(got-25) > 1e-9 {
		t.Errorf("Invert(5) = %v", got)
	}
}

func TestSqrtDegenerate(t *testing.T) {
	if got := NewSqrt(9, 9, 4, 30).Map(9); got != 17 {
		t.Errorf("degenerate sqrt = %v, want 17", got)
	}
}

func TestPadMax(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		lo, hi float64
	}{
		{"positive", []float64{10, 30, 20}, 0, 33},
		{"all zero", []float64{0, 0}, 0, 1},
		{"empty", nil, 0, 1},
		{"mixed sign", []float64{-10, 20}, -11, 22},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := PadMax(tt.values, 0.1)
			if math.Abs(lo-tt.lo) > 1e-9 || math.Abs(hi-tt.hi) > 1e-9 {
				t.Errorf("PadMax() = [%v, %v], want [%v, %v]", lo, hi, tt.lo, tt.hi)
			}
		})
	}
}

func TestPadExtent(t *testing.T) {
	lo, hi := PadExtent([]float64{10, 20}, 0.1, true)
	if lo != 9 || hi != 21 {
		t.Errorf("PadExtent = [%v, %v], want [9, 21]", lo, hi)
	}
	lo, _ = PadExtent([]float64{0.5, 20}, 0.1, true)
	if lo != 0 {
		t.Errorf("clamped lower end = %v, want 0", lo)
	}
	lo, _ = PadExtent([]float64{-5, 5}, 0.1, true)
	if lo != -6 {
		t.Errorf("negative data lower end = %v, want -6", lo)
	}
	lo, hi = PadExtent([]float64{7}, 0.1, true)
	if lo != 7 || hi != 7 {
		t.Errorf("single value = [%v, %v], want degenerate [7, 7]", lo, hi)
	}
}

func TestSequential(t *testing.T) {
	s := NewSequential(100, 0, RdYlBu)
	if got := s.Map(100); got != gg.Hex("#a50026") {
		t.Errorf("Map(max) = %+v, want dark red", got)
	}
	if got := s.Map(0); got != gg.Hex("#313695") {
		t.Errorf("Map(0) = %+v, want dark blue", got)
	}
	if got := NewSequential(3, 3, RdYlBu).Map(3); got != RdYlBu(0.5) {
		t.Errorf("degenerate Map = %+v", got)
	}
}

func TestOrdinalCycles(t *testing.T) {
	palette := []gg.RGBA{gg.Hex("#000"), gg.Hex("#fff")}
	o := NewOrdinal([]string{"a", "b", "c"}, palette)
	if o.Map("a") != palette[0] || o.Map("b") != palette[1] || o.Map("c") != palette[0] {
		t.Error("ordinal colors do not cycle through the palette")
	}
	first := o.Map("zz")
	if o.Map("zz") != first {
		t.Error("unknown category color not stable")
	}
}
