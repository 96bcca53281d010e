package scale

import "math"

// Sqrt is a square-root scale. Mapping bubble radii through it keeps the
// circle area, not the radius, proportional to the value.
type Sqrt struct {
	lin Linear
}

// NewSqrt creates a square-root scale mapping [d0, d1] onto [r0, r1].
func NewSqrt(d0, d1, r0, r1 float64) Sqrt {
	return Sqrt{lin: NewLinear(signedSqrt(d0), signedSqrt(d1), r0, r1)}
}

// Map converts a domain value to the range.
func (s Sqrt) Map(v float64) float64 {
	return s.lin.Map(signedSqrt(v))
}

// Invert converts a range value back to the domain.
func (s Sqrt) Invert(px float64) float64 {
	r := s.lin.Invert(px)
	return math.Copysign(r*r, r)
}

func signedSqrt(v float64) float64 {
	if v < 0 {
		return -math.Sqrt(-v)
	}
	return math.Sqrt(v)
}
