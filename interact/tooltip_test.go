package interact

import (
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/dataset"
	"github.com/gogpu/chart/internal/fontmetrics"
)

func TestPlace(t *testing.T) {
	surface := Size{W: 400, H: 300}
	offset := gg.Pt(10, -60)
	tests := []struct {
		name    string
		pointer gg.Point
		size    Size
		want    gg.Point
	}{
		{"free", gg.Pt(50, 200), Size{W: 100, H: 40}, gg.Pt(60, 140)},
		{"right edge", gg.Pt(380, 200), Size{W: 200, H: 40}, gg.Pt(200, 140)},
		{"top edge", gg.Pt(50, 20), Size{W: 100, H: 40}, gg.Pt(60, 10)},
		{"wider than surface", gg.Pt(50, 200), Size{W: 500, H: 40}, gg.Pt(0, 140)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Place(tt.pointer, tt.size, surface, offset, 10)
			if got != tt.want {
				t.Errorf("Place = %v, want %v", got, tt.want)
			}
			if got.X+tt.size.W > surface.W && got.X != 0 {
				t.Errorf("tooltip overflows right edge: %v + %v > %v", got.X, tt.size.W, surface.W)
			}
		})
	}
}

func TestTooltipMeasure(t *testing.T) {
	tip := Tooltip{Title: "abcd", Lines: []string{"ab", "abcdefgh"}}
	got := tip.Measure(fontmetrics.Fixed(1))
	want := Size{W: 8*TooltipFontSize + 2*TooltipPadding, H: 3*TooltipLineHeight + 2*TooltipPadding}
	if got != want {
		t.Errorf("Measure = %+v, want %+v", got, want)
	}
	if !(Tooltip{}).Empty() || tip.Empty() {
		t.Error("Empty misreports")
	}
}

func TestSelectorPassesCopy(t *testing.T) {
	pts := []dataset.Point{{Name: "A", Value: 1}}
	var got dataset.Point
	s := Selector{OnSelect: func(p dataset.Point) {
		got = p
		p.Name = "mutated"
	}}
	if !s.Select(pts, 0) {
		t.Fatal("Select returned false")
	}
	if got.Name != "A" || pts[0].Name != "A" {
		t.Errorf("got %q, source %q; want A, A", got.Name, pts[0].Name)
	}
	if s.Select(pts, 5) || (Selector{}).Select(pts, 0) {
		t.Error("Select ran for an invalid index or nil callback")
	}
}
