// Package render plays scenes onto output backends.
//
// Backends are registered by name, following the database/sql driver
// pattern, and created fresh for every render:
//
//	import _ "github.com/gogpu/chart/render/svg"
//
//	b, err := render.NewBackend("svg")
//
// The svg backend writes SVG documents; the raster backend paints with gg
// and encodes PNG.
package render

import (
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/scene"
)

// Backend receives scene nodes in draw order.
//
// Groups arrive bracketed by PushGroup/PopGroup; the backend is responsible
// for accumulating group offsets and opacity (see Stack).
type Backend interface {
	// Begin starts a drawing of the given size. A background with zero
	// alpha leaves the surface transparent.
	Begin(width, height int, background gg.RGBA) error

	// End finishes the drawing. Output is available afterwards.
	End() error

	PushGroup(g *scene.Group)
	PopGroup()

	DrawShape(s *scene.Shape) error
	DrawText(t *scene.Text) error
}

// WriterBackend writes its output to a stream.
type WriterBackend interface {
	Backend

	// WriteTo writes the finished output. Call after End.
	WriteTo(w io.Writer) (int64, error)
}

// ImageBackend exposes rendered pixels.
type ImageBackend interface {
	Backend

	// Image returns the rendered image. Call after End.
	Image() image.Image
}
