package scale

import "math"

// Band assigns each category an equal-width band of a pixel range.
//
// Inner and outer padding are both set to the configured padding and bands
// are centred in the range, matching the usual band-scale layout.
type Band struct {
	categories []string
	index      map[string]int
	r0, r1     float64
	padding    float64
	step       float64
	bandwidth  float64
	start      float64
}

// NewBand creates a band scale over categories. padding is clamped to [0, 1).
func NewBand(categories []string, r0, r1, padding float64) Band {
	if padding < 0 || math.IsNaN(padding) {
		padding = 0
	}
	if padding >= 1 {
		padding = math.Nextafter(1, 0)
	}
	b := Band{
		categories: categories,
		index:      make(map[string]int, len(categories)),
		r0:         r0,
		r1:         r1,
		padding:    padding,
	}
	for i, c := range categories {
		if _, dup := b.index[c]; !dup {
			b.index[c] = i
		}
	}

	n := float64(len(categories))
	if n == 0 {
		b.start = (r0 + r1) / 2
		return b
	}
	b.step = (r1 - r0) / math.Max(1, n-padding+2*padding)
	b.start = r0 + (r1-r0-b.step*(n-padding))*0.5
	b.bandwidth = b.step * (1 - padding)
	return b
}

// Bandwidth returns the usable width of one band.
func (b Band) Bandwidth() float64 { return math.Abs(b.bandwidth) }

// Step returns the distance between the starts of adjacent bands.
func (b Band) Step() float64 { return b.step }

// Padding returns the effective padding.
func (b Band) Padding() float64 { return b.padding }

// Len returns the number of categories.
func (b Band) Len() int { return len(b.categories) }

// Categories returns the ordered categories.
func (b Band) Categories() []string { return b.categories }

// At returns the start of the i-th band.
func (b Band) At(i int) float64 {
	return b.start + b.step*float64(i)
}

// Map returns the start of the band for a category.
func (b Band) Map(category string) (float64, bool) {
	i, ok := b.index[category]
	if !ok {
		return 0, false
	}
	return b.At(i), true
}

// IndexAt returns the category index whose band contains px.
func (b Band) IndexAt(px float64) (int, bool) {
	for i := range b.categories {
		x := b.At(i)
		if px >= x && px <= x+b.Bandwidth() {
			return i, true
		}
	}
	return 0, false
}
