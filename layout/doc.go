// Package layout converts datasets into pixel-space geometry.
//
// Each chart type has a pure function from (points, options) to a layout:
// Bars, Pie, Scatter and Area. Layouts are plain values recomputed whenever
// the data, the plot size or the options change; nothing here holds state
// between calls. Coordinates are relative to the plot area, with the origin at
// its top-left corner, except for Pie which is centred on (0, 0).
//
// Shapes are returned as *gg.Path so that every backend draws exactly the
// same geometry.
package layout
