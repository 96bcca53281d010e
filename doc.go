// Package chart renders small in-memory datasets as interactive 2D charts.
//
// # Overview
//
// A Chart combines a dataset, a chart kind and a configuration into a
// scene: a backend-neutral tree of shapes and text that the render
// backends turn into SVG or PNG. Geometry is a pure function of the data,
// the surface dimensions and the configuration; it is recomputed whenever
// one of them changes. Hover state is the only transient state a chart
// keeps.
//
// # Quick Start
//
//	import "github.com/gogpu/chart"
//
//	c := chart.New(chart.Bar, points,
//		chart.WithAxisLabels("Line", "Passengers"),
//		chart.WithValueLabel("Passengers"),
//	)
//	c.Resize(800, 400)
//
//	// Vector output
//	c.Render(w, "svg")
//
//	// Pointer input from the host
//	c.PointerMove(120, 200)
//	tip := c.Tooltip()
//
// # Chart kinds
//
//   - Bar: vertical bars sorted by descending value
//   - HorizontalBar: ranked horizontal bars colored on a sequential scale
//   - Pie: slices with leader-line labels that avoid each other
//   - Area: a smoothed line closed to the zero baseline
//   - Scatter: jittered bubbles with quadrants and a trend line
//
// # Coordinate System
//
// Pixel coordinates with the origin at the top-left of the surface, x to
// the right and y down. Pie angles start at 12 o'clock and run clockwise.
//
// # Backends
//
// The "svg" and "raster" backends are registered by this package. Others
// can be added with render.Register.
package chart
