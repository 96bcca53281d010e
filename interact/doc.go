// Package interact resolves pointer input against chart geometry.
//
// It holds the hover state machine, hit regions for discrete marks, the
// continuous index resolution used by area charts, tooltip placement and
// selection callbacks. Nothing here draws; the chart shell feeds pointer
// events in and reads state back when it composes a scene.
package interact
