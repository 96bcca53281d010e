package fontmetrics

import (
	"math"
	"testing"
)

func TestDefaultMeasure(t *testing.T) {
	m := Default()
	if err := m.Err(); err != nil {
		t.Fatalf("Go Regular failed to parse: %v", err)
	}
	short := m.Measure("Linha", 12)
	long := m.Measure("Linha 101 - Centro", 12)
	if short <= 0 {
		t.Fatalf("Measure(short) = %v", short)
	}
	if long <= short {
		t.Errorf("longer text measured narrower: %v <= %v", long, short)
	}
	if big := m.Measure("Linha", 24); big <= short {
		t.Errorf("larger size measured narrower: %v <= %v", big, short)
	}
	if got := m.Measure("", 12); got != 0 {
		t.Errorf("Measure(empty) = %v", got)
	}
}

func TestBrokenFontFallsBack(t *testing.T) {
	m := New([]byte("not a font"))
	if m.Err() == nil {
		t.Fatal("expected parse error")
	}
	if got := m.Measure("abcd", 10); math.Abs(got-4*10*approxAdvance) > 1e-9 {
		t.Errorf("fallback Measure = %v", got)
	}
}

func TestFixed(t *testing.T) {
	if got := Fixed(0.5).Measure("abcd", 10); got != 20 {
		t.Errorf("Fixed.Measure = %v, want 20", got)
	}
}
