// Package svg serialises chart scenes as SVG documents with svgo.
//
// Import it for its side effect of registering the "svg" backend:
//
//	import _ "github.com/gogpu/chart/render/svg"
//
// Shapes bound to data items carry a data-index attribute so that a host
// page can wire its own pointer handling to the marks.
package svg

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"
	"github.com/gogpu/gg"

	"github.com/gogpu/chart/render"
	"github.com/gogpu/chart/scene"
)

func init() {
	render.Register("svg", render.Driver{
		Format: render.Format{Ext: ".svg", ContentType: "image/svg+xml"},
		New:    func() render.Backend { return NewBackend() },
	})
}

var _ render.WriterBackend = (*Backend)(nil)

// FontFamily is the CSS font stack used for text.
const FontFamily = "system-ui,-apple-system,sans-serif"

// Backend writes SVG into an internal buffer.
type Backend struct {
	buf       bytes.Buffer
	canvas    *svgo.SVG
	gradients map[*scene.LinearGradient]string
}

// NewBackend creates an SVG backend. Call Begin before drawing.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin implements render.Backend.
func (b *Backend) Begin(width, height int, background gg.RGBA) error {
	b.buf.Reset()
	b.gradients = make(map[*scene.LinearGradient]string)
	b.canvas = svgo.New(&b.buf)
	b.canvas.Start(width, height, fmt.Sprintf(`viewBox="0 0 %d %d"`, width, height))
	if background.A > 0 {
		b.canvas.Rect(0, 0, width, height, "fill:"+hex(background), opacity("fill-opacity", background.A))
	}
	return nil
}

// End implements render.Backend.
func (b *Backend) End() error {
	b.canvas.End()
	return nil
}

// PushGroup implements render.Backend.
func (b *Backend) PushGroup(g *scene.Group) {
	attrs := []string{fmt.Sprintf(`transform="translate(%s,%s)"`, num(g.Offset.X), num(g.Offset.Y))}
	if g.ID != "" {
		attrs = append(attrs, fmt.Sprintf(`id="%s"`, g.ID))
	}
	if a := g.Alpha(); a < 1 {
		attrs = append(attrs, fmt.Sprintf(`opacity="%s"`, num(a)))
	}
	b.canvas.Group(attrs...)
}

// PopGroup implements render.Backend.
func (b *Backend) PopGroup() { b.canvas.Gend() }

// DrawShape implements render.Backend.
func (b *Backend) DrawShape(s *scene.Shape) error {
	if s.Path == nil {
		return nil
	}
	d := PathData(s.Path)
	if d == "" {
		return nil
	}

	var style []string
	switch {
	case s.Fill.Gradient != nil:
		style = append(style, "fill:url(#"+b.gradient(s.Fill.Gradient)+")")
	case s.Fill.None():
		style = append(style, "fill:none")
	default:
		style = append(style, "fill:"+hex(s.Fill.Color))
		if s.Fill.Color.A < 1 {
			style = append(style, "fill-opacity:"+num(s.Fill.Color.A))
		}
	}
	if s.Stroke.Visible() {
		style = append(style, "stroke:"+hex(s.Stroke.Paint.Color), "stroke-width:"+num(s.Stroke.Width))
		if s.Stroke.Paint.Color.A < 1 {
			style = append(style, "stroke-opacity:"+num(s.Stroke.Paint.Color.A))
		}
		if len(s.Stroke.Dash) > 0 {
			dash := make([]string, len(s.Stroke.Dash))
			for i, v := range s.Stroke.Dash {
				dash[i] = num(v)
			}
			style = append(style, "stroke-dasharray:"+strings.Join(dash, ","))
		}
	}
	if a := s.Alpha(); a < 1 {
		style = append(style, "opacity:"+num(a))
	}

	args := []string{strings.Join(style, ";")}
	if s.Class != "" {
		args = append(args, fmt.Sprintf(`class="%s"`, s.Class))
	}
	if s.Target != scene.NoTarget {
		args = append(args, fmt.Sprintf(`data-index="%d"`, s.Target))
	}
	b.canvas.Path(d, args...)
	return nil
}

// DrawText implements render.Backend.
func (b *Backend) DrawText(t *scene.Text) error {
	if t.Content == "" {
		return nil
	}
	style := []string{
		"fill:" + hex(t.Color),
		"font-size:" + num(t.Size) + "px",
		"font-family:" + FontFamily,
		"text-anchor:" + anchor(t.Anchor),
	}
	if t.Color.A < 1 {
		style = append(style, "fill-opacity:"+num(t.Color.A))
	}
	if bl := baseline(t.Baseline); bl != "" {
		style = append(style, "dominant-baseline:"+bl)
	}
	if t.Bold {
		style = append(style, "font-weight:bold")
	}

	transform := "translate(" + num(t.Pos.X) + "," + num(t.Pos.Y) + ")"
	if t.Rotate != 0 {
		transform += " rotate(" + num(t.Rotate) + ")"
	}
	b.canvas.Gtransform(transform)
	args := []string{strings.Join(style, ";")}
	if t.Class != "" {
		args = append(args, fmt.Sprintf(`class="%s"`, t.Class))
	}
	b.canvas.Text(0, 0, t.Content, args...)
	b.canvas.Gend()
	return nil
}

// WriteTo writes the finished document.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewReader(b.buf.Bytes()).WriteTo(w)
}

// gradient emits the definition of g on first use and returns its id.
func (b *Backend) gradient(g *scene.LinearGradient) string {
	if id, ok := b.gradients[g]; ok {
		return id
	}
	id := g.ID
	if id == "" {
		id = "gradient-" + strconv.Itoa(len(b.gradients))
	}
	b.gradients[g] = id

	stops := make([]svgo.Offcolor, len(g.Stops))
	for i, s := range g.Stops {
		stops[i] = svgo.Offcolor{
			Offset:  pct(s.Offset),
			Color:   hex(s.Color),
			Opacity: s.Color.A,
		}
	}
	b.canvas.Def()
	b.canvas.LinearGradient(id, pct(g.X1), pct(g.Y1), pct(g.X2), pct(g.Y2), stops)
	b.canvas.DefEnd()
	return id
}

// svgCommands maps path verbs to SVG path commands.
var svgCommands = map[gg.PathVerb]string{
	gg.MoveTo:  "M",
	gg.LineTo:  "L",
	gg.QuadTo:  "Q",
	gg.CubicTo: "C",
	gg.Close:   "Z",
}

// PathData converts a path to SVG path data.
func PathData(p *gg.Path) string {
	var sb strings.Builder
	p.Iterate(func(verb gg.PathVerb, coords []float64) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(svgCommands[verb])
		for k := 0; k+1 < len(coords); k += 2 {
			if k > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(pt(gg.Pt(coords[k], coords[k+1])))
		}
	})
	return sb.String()
}

func pt(p gg.Point) string { return num(p.X) + "," + num(p.Y) }

// num formats v with at most two decimals and no trailing zeros.
func num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

func pct(f float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, f)) * 100))
}

func hex(c gg.RGBA) string {
	to := func(v float64) int { return int(math.Round(math.Max(0, math.Min(1, v)) * 255)) }
	return fmt.Sprintf("#%02x%02x%02x", to(c.R), to(c.G), to(c.B))
}

func opacity(prop string, a float64) string {
	return prop + `="` + num(a) + `"`
}

func anchor(a scene.Anchor) string {
	switch a {
	case scene.AnchorMiddle:
		return "middle"
	case scene.AnchorEnd:
		return "end"
	}
	return "start"
}

func baseline(b scene.Baseline) string {
	switch b {
	case scene.BaselineMiddle:
		return "middle"
	case scene.BaselineHanging:
		return "hanging"
	}
	return ""
}
