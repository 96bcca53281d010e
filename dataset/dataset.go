// Package dataset holds the records a chart plots and the small set of
// derivations every chart type needs: ordering, top-N selection, sums and
// extents.
//
// Points are owned by the caller. Nothing in this package mutates a slice it
// receives; helpers that need to change values return copies.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/goccy/go-json"
)

// ErrDecode is returned when a dataset payload cannot be decoded.
var ErrDecode = errors.New("dataset: decode failed")

// Point is one observation to plot.
//
// Bar, pie and area charts read Name and Value. Scatter charts read X and Y as
// the two metrics, Weight for the bubble size and Group for categorical color.
type Point struct {
	ID          int64   `json:"id,omitempty"`
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	FullName    string  `json:"fullName,omitempty"`
	Highlighted bool    `json:"isHighlighted,omitempty"`

	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Weight float64 `json:"weight,omitempty"`
	Group  string  `json:"group,omitempty"`
}

// DisplayName returns FullName when set, Name otherwise.
func (p Point) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Name
}

// Decode reads a JSON array of points.
func Decode(r io.Reader) ([]Point, error) {
	var points []Point
	if err := json.NewDecoder(r).Decode(&points); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return points, nil
}

// Sanitize returns a copy of points where every non-finite number is replaced
// by zero, together with the number of fields that were replaced.
func Sanitize(points []Point) ([]Point, int) {
	out := make([]Point, len(points))
	replaced := 0
	fix := func(v *float64) {
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			*v = 0
			replaced++
		}
	}
	for i, p := range points {
		fix(&p.Value)
		fix(&p.X)
		fix(&p.Y)
		fix(&p.Weight)
		out[i] = p
	}
	return out, replaced
}

// Order returns the indices of points in render order. By default points are
// sorted by descending value; ties keep their input order. With preserve set
// the input order is returned unchanged.
func Order(points []Point, preserve bool) []int {
	idx := make([]int, len(points))
	for i := range idx {
		idx[i] = i
	}
	if preserve {
		return idx
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return points[idx[a]].Value > points[idx[b]].Value
	})
	return idx
}

// Top truncates an order to its first n entries. n <= 0 keeps everything.
func Top(order []int, n int) []int {
	if n <= 0 || n >= len(order) {
		return order
	}
	return order[:n]
}

// Values extracts the Value field.
func Values(points []Point) []float64 {
	vs := make([]float64, len(points))
	for i, p := range points {
		vs[i] = p.Value
	}
	return vs
}

// Metric extracts one float field per point.
func Metric(points []Point, field func(Point) float64) []float64 {
	vs := make([]float64, len(points))
	for i, p := range points {
		vs[i] = field(p)
	}
	return vs
}

// Sum adds up values.
func Sum(values []float64) float64 {
	var s float64
	for _, v := range values {
		s += v
	}
	return s
}

// Extent returns the minimum and maximum of values. ok is false for an empty
// slice.
func Extent(values []float64) (lo, hi float64, ok bool) {
	if len(values) == 0 {
		return 0, 0, false
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi, true
}

// Groups returns the distinct Group values in sorted order.
func Groups(points []Point) []string {
	seen := make(map[string]struct{}, len(points))
	var out []string
	for _, p := range points {
		if _, ok := seen[p.Group]; ok {
			continue
		}
		seen[p.Group] = struct{}{}
		out = append(out, p.Group)
	}
	sort.Strings(out)
	return out
}
