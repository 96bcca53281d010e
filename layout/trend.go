package layout

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Fit is an ordinary least squares line y = Intercept + Slope·x with the
// Pearson correlation of the sample.
type Fit struct {
	Slope, Intercept float64
	// R is the Pearson correlation coefficient in [-1, 1]. It is 0 when y
	// has no variance.
	R float64
}

// At evaluates the fitted line.
func (f Fit) At(x float64) float64 { return f.Intercept + f.Slope*x }

// FitLine regresses ys on xs. It reports false when fewer than two points are
// given, the lengths differ, or xs has zero variance.
func FitLine(xs, ys []float64) (Fit, bool) {
	if len(xs) < 2 || len(xs) != len(ys) {
		return Fit{}, false
	}
	if v := stat.Variance(xs, nil); v == 0 || math.IsNaN(v) {
		return Fit{}, false
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	r := stat.Correlation(xs, ys, nil)
	switch {
	case math.IsNaN(r):
		r = 0
	case r > 1:
		r = 1
	case r < -1:
		r = -1
	}
	return Fit{Slope: beta, Intercept: alpha, R: r}, true
}
