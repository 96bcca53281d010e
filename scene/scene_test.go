package scene

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestTargetsCarryAbsoluteOffset(t *testing.T) {
	s := New(200, 100)
	plot := NewGroup("plot", 10, 20)
	inner := NewGroup("inner", 5, 5)

	bar := Rect("bar", 0, 0, 10, 10, Hex("#3b82f6"))
	bar.Target = 3
	inner.Add(bar, Rect("grid", 0, 0, 1, 1, Hex("#eeeeee")))
	plot.Add(inner)
	s.Add(plot)

	targets := s.Targets()
	if len(targets) != 1 {
		t.Fatalf("len(Targets) = %d, want 1", len(targets))
	}
	if targets[0].Shape.Target != 3 || targets[0].Offset != gg.Pt(15, 25) {
		t.Errorf("target = %d at %v, want 3 at (15, 25)", targets[0].Shape.Target, targets[0].Offset)
	}
}

func TestGradientsAreDeduplicated(t *testing.T) {
	g := Vertical("fill", Stop{0, gg.Hex("#1976d2")}, Stop{1, gg.Hex("#1976d2")})
	s := New(10, 10)
	s.Add(
		NewShape("a", gg.NewPath(), Gradient(g)),
		NewShape("b", gg.NewPath(), Gradient(g)),
	)
	if got := s.Gradients(); len(got) != 1 || got[0] != g {
		t.Errorf("Gradients = %v, want [fill]", got)
	}
}

func TestPaintAndStroke(t *testing.T) {
	if !(Paint{}).None() {
		t.Error("zero Paint should paint nothing")
	}
	if Hex("#000000").None() {
		t.Error("opaque black reported as None")
	}
	if (Stroke{Paint: Hex("#000"), Width: 0}).Visible() {
		t.Error("zero-width stroke reported visible")
	}
}

func TestAlignment(t *testing.T) {
	if AnchorStart.Fraction() != 0 || AnchorMiddle.Fraction() != 0.5 || AnchorEnd.Fraction() != 1 {
		t.Error("anchor fractions")
	}
	if BaselineAlphabetic.Shift(10) != 0 || BaselineMiddle.Shift(10) <= 0 {
		t.Error("baseline shifts")
	}
}

func TestAlphaDefaults(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 1}, {0.3, 0.3}, {1, 1}, {2, 1}, {-1, 1},
	}
	for _, tt := range tests {
		if got := (&Shape{Opacity: tt.in}).Alpha(); got != tt.want {
			t.Errorf("Alpha(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
