// Package scale maps data domains to pixel ranges.
//
// Continuous scales (Linear, Sqrt) are pure functions with an inverse for hit
// testing. Band is the discrete scale used for categorical axes. Sequential
// and Ordinal map values to colors.
//
// Every scale stays finite when its domain collapses to a single value: the
// whole domain maps to the midpoint of the range.
package scale
