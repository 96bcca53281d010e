package chart

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a chart kind name is not recognized.
var ErrUnknownKind = errors.New("chart: unknown kind")

// Kind selects the geometry a Chart lays out.
type Kind int

const (
	// Bar draws vertical bars, one per category.
	Bar Kind = iota
	// HorizontalBar draws ranked horizontal bars.
	HorizontalBar
	// Pie draws slices proportional to value.
	Pie
	// Area draws a smoothed line closed to the baseline.
	Area
	// Scatter draws one bubble per entity on two metrics.
	Scatter
)

var kindNames = [...]string{
	Bar:           "bar",
	HorizontalBar: "horizontal-bar",
	Pie:           "pie",
	Area:          "area",
	Scatter:       "scatter",
}

// Kinds lists every chart kind.
var Kinds = [...]Kind{Bar, HorizontalBar, Pie, Area, Scatter}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a kind name. Matching ignores case, and "hbar",
// "horizontal_bar" and "horizontalbar" are accepted for HorizontalBar.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "hbar", "horizontal_bar", "horizontalbar":
		return HorizontalBar, nil
	}
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("%w %d", ErrUnknownKind, int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// axes reports whether the kind draws cartesian axes.
func (k Kind) axes() bool { return k != Pie }
