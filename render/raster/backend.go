// Package raster renders chart scenes to pixels with gg and encodes PNG.
//
// Import it for its side effect of registering the "raster" backend:
//
//	import _ "github.com/gogpu/chart/render/raster"
//
// Text uses the Go fonts. Rotated text is drawn from glyph outlines so that
// it follows the rotation; everything else goes through gg's text drawing.
// Linear gradients are composited through a coverage mask because gg's
// software renderer fills solid paints only.
package raster

import (
	"image"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/chart/render"
	"github.com/gogpu/chart/scene"
)

func init() {
	render.Register("raster", render.Driver{
		Format: render.Format{Ext: ".png", ContentType: "image/png"},
		New:    func() render.Backend { return NewBackend() },
	})
}

var (
	_ render.WriterBackend = (*Backend)(nil)
	_ render.ImageBackend  = (*Backend)(nil)
)

var (
	fontsOnce           sync.Once
	regularSrc, boldSrc *text.FontSource
	regularErr, boldErr error
)

func loadFonts() {
	fontsOnce.Do(func() {
		regularSrc, regularErr = text.NewFontSource(goregular.TTF)
		boldSrc, boldErr = text.NewFontSource(gobold.TTF)
	})
}

type faceKey struct {
	size float64
	bold bool
}

// Backend paints scenes onto a gg.Context.
type Backend struct {
	ctx           *gg.Context
	width, height int
	stack         render.Stack
	faces         map[faceKey]text.Face
	outlines      *text.OutlineExtractor
}

// NewBackend creates a raster backend. Call Begin before drawing.
func NewBackend() *Backend {
	return &Backend{faces: make(map[faceKey]text.Face)}
}

// Begin implements render.Backend.
func (b *Backend) Begin(width, height int, background gg.RGBA) error {
	b.width, b.height = width, height
	b.ctx = gg.NewContext(width, height)
	if background.A > 0 {
		b.ctx.ClearWithColor(background)
	}
	b.stack = render.Stack{}
	return nil
}

// End implements render.Backend.
func (b *Backend) End() error {
	return b.ctx.FlushGPU()
}

// PushGroup implements render.Backend.
func (b *Backend) PushGroup(g *scene.Group) { b.stack.Push(g) }

// PopGroup implements render.Backend.
func (b *Backend) PopGroup() { b.stack.Pop() }

// DrawShape implements render.Backend.
func (b *Backend) DrawShape(s *scene.Shape) error {
	if s.Path == nil {
		return nil
	}
	off := b.stack.Offset()
	path := s.Path.Transform(gg.Translate(off.X, off.Y))
	alpha := b.stack.Opacity() * s.Alpha()

	if !s.Fill.None() {
		if s.Fill.Gradient != nil {
			b.fillGradient(path, s.Fill.Gradient, alpha)
		} else {
			b.ctx.SetFillBrush(gg.Solid(fade(s.Fill.Color, alpha)))
			b.setPath(path)
			if err := b.ctx.Fill(); err != nil {
				return err
			}
		}
	}
	if s.Stroke.Visible() {
		c := s.Stroke.Paint.Color
		if g := s.Stroke.Paint.Gradient; g != nil && len(g.Stops) > 0 {
			c = g.Stops[0].Color
		}
		b.ctx.SetStrokeBrush(gg.Solid(fade(c, alpha)))
		b.ctx.SetLineWidth(s.Stroke.Width)
		if len(s.Stroke.Dash) > 0 {
			b.ctx.SetDash(s.Stroke.Dash...)
		} else {
			b.ctx.ClearDash()
		}
		b.setPath(path)
		if err := b.ctx.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// DrawText implements render.Backend.
func (b *Backend) DrawText(t *scene.Text) error {
	if t.Content == "" || t.Size <= 0 {
		return nil
	}
	face, err := b.face(t.Size, t.Bold)
	if err != nil {
		return err
	}
	off := b.stack.Offset()
	pos := t.Pos.Add(off)
	c := fade(t.Color, b.stack.Opacity())

	if t.Rotate != 0 {
		return b.drawRotated(t, face, pos, c)
	}
	b.ctx.SetFont(face)
	b.ctx.SetColor(c.Color())
	b.ctx.DrawStringAnchored(t.Content, pos.X, pos.Y+t.Baseline.Shift(t.Size), t.Anchor.Fraction(), 0)
	return nil
}

// drawRotated fills the glyph outlines of t rotated about pos.
func (b *Backend) drawRotated(t *scene.Text, face text.Face, pos gg.Point, c gg.RGBA) error {
	if b.outlines == nil {
		b.outlines = text.NewOutlineExtractor()
	}
	parsed := face.Source().Parsed()
	dx := -face.Advance(t.Content) * t.Anchor.Fraction()
	dy := t.Baseline.Shift(t.Size)

	glyphs := gg.NewPath()
	for g := range face.Glyphs(t.Content) {
		o, err := b.outlines.ExtractOutline(parsed, g.GID, face.Size())
		if err != nil || o == nil || o.IsEmpty() {
			continue
		}
		appendOutline(glyphs, o, dx+g.X, dy+g.Y)
	}

	m := gg.Translate(pos.X, pos.Y).
		Multiply(gg.Rotate(t.Rotate * math.Pi / 180))
	b.ctx.SetFillBrush(gg.Solid(c))
	b.setPath(glyphs.Transform(m))
	return b.ctx.Fill()
}

// appendOutline adds a glyph outline, whose y axis already points down, at
// (x, y) relative to the text origin.
func appendOutline(p *gg.Path, o *text.GlyphOutline, x, y float64) {
	pt := func(op text.OutlinePoint) (float64, float64) {
		return x + float64(op.X), y + float64(op.Y)
	}
	for _, seg := range o.Segments {
		switch seg.Op {
		case text.OutlineOpMoveTo:
			p.MoveTo(pt(seg.Points[0]))
		case text.OutlineOpLineTo:
			p.LineTo(pt(seg.Points[0]))
		case text.OutlineOpQuadTo:
			cx, cy := pt(seg.Points[0])
			px, py := pt(seg.Points[1])
			p.QuadraticTo(cx, cy, px, py)
		case text.OutlineOpCubicTo:
			c1x, c1y := pt(seg.Points[0])
			c2x, c2y := pt(seg.Points[1])
			px, py := pt(seg.Points[2])
			p.CubicTo(c1x, c1y, c2x, c2y, px, py)
		}
	}
}

// fillGradient composites a linear gradient through the coverage of path.
func (b *Backend) fillGradient(path *gg.Path, lg *scene.LinearGradient, alpha float64) {
	box := path.BoundingBox()
	w, h := box.Max.X-box.Min.X, box.Max.Y-box.Min.Y
	brush := gg.NewLinearGradientBrush(
		box.Min.X+lg.X1*w, box.Min.Y+lg.Y1*h,
		box.Min.X+lg.X2*w, box.Min.Y+lg.Y2*h,
	)
	for _, s := range lg.Stops {
		brush.AddColorStop(s.Offset, s.Color)
	}

	mask := gg.NewContext(b.width, b.height)
	defer mask.Close()
	mask.SetFillBrush(gg.Solid(gg.White))
	mask.SetPath(path)
	_ = mask.Fill()

	cov, dst := mask.ResizeTarget(), b.ctx.ResizeTarget()
	x0, y0 := max(0, int(math.Floor(box.Min.X))), max(0, int(math.Floor(box.Min.Y)))
	x1, y1 := min(b.width, int(math.Ceil(box.Max.X))), min(b.height, int(math.Ceil(box.Max.Y)))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			a := cov.GetPixel(x, y).A
			if a == 0 {
				continue
			}
			src := brush.ColorAt(float64(x)+0.5, float64(y)+0.5)
			sa := src.A * a * alpha
			d := dst.GetPixel(x, y)
			dst.SetPixel(x, y, gg.RGBA{
				R: src.R*sa + d.R*(1-sa),
				G: src.G*sa + d.G*(1-sa),
				B: src.B*sa + d.B*(1-sa),
				A: sa + d.A*(1-sa),
			})
		}
	}
}

// WriteTo encodes the image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.ctx.Image())
	return cw.n, err
}

// Image implements render.ImageBackend.
func (b *Backend) Image() image.Image { return b.ctx.Image() }

// Close releases the drawing context.
func (b *Backend) Close() error {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Close()
}

func (b *Backend) face(size float64, bold bool) (text.Face, error) {
	k := faceKey{size, bold}
	if f, ok := b.faces[k]; ok {
		return f, nil
	}
	loadFonts()
	src, err := regularSrc, regularErr
	if bold {
		src, err = boldSrc, boldErr
	}
	if err != nil {
		return nil, err
	}
	f := src.Face(size)
	b.faces[k] = f
	return f, nil
}

// setPath replaces the context path with p, already in device coordinates.
func (b *Backend) setPath(p *gg.Path) {
	b.ctx.SetPath(p)
}

func fade(c gg.RGBA, alpha float64) gg.RGBA {
	c.A *= alpha
	return c
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
