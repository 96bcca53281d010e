package chart

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"bar", Bar, false},
		{" Pie ", Pie, false},
		{"AREA", Area, false},
		{"scatter", Scatter, false},
		{"horizontal-bar", HorizontalBar, false},
		{"hbar", HorizontalBar, false},
		{"horizontal_bar", HorizontalBar, false},
		{"donut", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownKind) {
				t.Errorf("ParseKind(%q) err = %v, want ErrUnknownKind", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds {
		b, err := k.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText: %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalText(b); err != nil || back != k {
			t.Errorf("UnmarshalText(%q) = %v, %v", b, back, err)
		}
	}
	if _, err := Kind(42).MarshalText(); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("MarshalText of an invalid kind: %v", err)
	}
	if s := Kind(-1).String(); s != "Kind(-1)" {
		t.Errorf("String() = %q", s)
	}
}
