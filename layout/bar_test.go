package layout

import (
	"math"
	"testing"

	"github.com/gogpu/chart/dataset"
	"github.com/gogpu/chart/scale"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestBarsVertical(t *testing.T) {
	pts := []dataset.Point{{Name: "A", Value: 10}, {Name: "B", Value: 30}, {Name: "C", Value: 20}}
	l := Bars(pts, BarOptions{Width: 300, Height: 200})

	wantOrder := []string{"B", "C", "A"}
	if len(l.Bars) != 3 {
		t.Fatalf("len(Bars) = %d, want 3", len(l.Bars))
	}
	for i, b := range l.Bars {
		if b.Name != wantOrder[i] {
			t.Errorf("Bars[%d].Name = %q, want %q", i, b.Name, wantOrder[i])
		}
		if !approx(b.Y+b.H, l.Baseline) {
			t.Errorf("bar %q does not rest on the baseline: %v+%v != %v", b.Name, b.Y, b.H, l.Baseline)
		}
		if !approx(b.Label.Y, b.Y-ValueLabelOffset) {
			t.Errorf("bar %q label y = %v, want %v", b.Name, b.Label.Y, b.Y-ValueLabelOffset)
		}
	}
	// tallest bar reaches 1/1.1 of the plot height
	if got, want := l.Bars[0].H, 200/1.1; !approx(got, want) {
		t.Errorf("tallest bar height = %v, want %v", got, want)
	}
	if l.Band.Padding() != VerticalBandPadding {
		t.Errorf("padding = %v, want %v", l.Band.Padding(), VerticalBandPadding)
	}
	if !approx(l.Mean, 20) {
		t.Errorf("Mean = %v, want 20", l.Mean)
	}
}

func TestBarsPreserveOrderAndTopN(t *testing.T) {
	pts := []dataset.Point{{Name: "A", Value: 1}, {Name: "B", Value: 3}, {Name: "C", Value: 2}}

	tests := []struct {
		name string
		opts BarOptions
		want []string
	}{
		{"sorted", BarOptions{Width: 100, Height: 100}, []string{"B", "C", "A"}},
		{"preserved", BarOptions{Width: 100, Height: 100, PreserveOrder: true}, []string{"A", "B", "C"}},
		{"top2", BarOptions{Width: 100, Height: 100, TopN: 2}, []string{"B", "C"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Bars(pts, tt.opts)
			if len(l.Bars) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(l.Bars), len(tt.want))
			}
			for i, b := range l.Bars {
				if b.Name != tt.want[i] {
					t.Errorf("[%d] = %q, want %q", i, b.Name, tt.want[i])
				}
			}
		})
	}
}

func TestBarsHorizontal(t *testing.T) {
	pts := []dataset.Point{{Name: "A", Value: 5}, {Name: "B", Value: 10}}
	l := Bars(pts, BarOptions{Width: 220, Height: 100, Horizontal: true})

	if l.Band.Padding() != HorizontalBandPadding {
		t.Errorf("padding = %v, want %v", l.Band.Padding(), HorizontalBandPadding)
	}
	for _, b := range l.Bars {
		if b.X != 0 {
			t.Errorf("bar %q starts at x=%v, want 0", b.Name, b.X)
		}
		if !approx(b.Label.X, b.X+b.W+ValueLabelOffset) {
			t.Errorf("bar %q label x = %v", b.Name, b.Label.X)
		}
	}
	if !approx(l.Bars[0].W, 200) {
		t.Errorf("widest bar = %v, want 200", l.Bars[0].W)
	}
	if l.Bars[0].Y >= l.Bars[1].Y {
		t.Errorf("bands not stacked downwards: %v >= %v", l.Bars[0].Y, l.Bars[1].Y)
	}

	colors := l.Colors(scale.RdYlBu)
	if colors[0] != scale.RdYlBu(0) {
		t.Errorf("largest value color = %v, want %v", colors[0], scale.RdYlBu(0))
	}
}

func TestBarsEmptyAndZero(t *testing.T) {
	if l := Bars(nil, BarOptions{Width: 100, Height: 100}); len(l.Bars) != 0 {
		t.Errorf("empty input produced %d bars", len(l.Bars))
	}

	l := Bars([]dataset.Point{{Name: "A"}, {Name: "B"}}, BarOptions{Width: 100, Height: 100})
	for _, b := range l.Bars {
		if math.IsNaN(b.Y) || math.IsNaN(b.H) {
			t.Fatalf("NaN geometry for zero data: %+v", b)
		}
		if b.H != 0 {
			t.Errorf("zero value bar height = %v, want 0", b.H)
		}
	}
}

func TestBarPath(t *testing.T) {
	b := Bar{X: 0, Y: 0, W: 20, H: 40}
	if n := b.Path(4).NumVerbs(); n == 0 {
		t.Error("rounded bar path is empty")
	}
	// too small to round
	tiny := Bar{W: 2, H: 2}
	if n := tiny.Path(4).NumVerbs(); n != 5 {
		t.Errorf("tiny bar path has %d verbs, want 5 (rectangle)", n)
	}
}
