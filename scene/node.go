package scene

import "github.com/gogpu/gg"

// Node is an element of the scene tree: *Group, *Shape or *Text.
type Node interface {
	node()
}

// Group translates and fades its children.
type Group struct {
	ID     string
	Offset gg.Point
	// Opacity multiplies the opacity of every child. Zero means opaque.
	Opacity  float64
	Children []Node
}

func (*Group) node() {}

// NewGroup creates a group translated by (x, y).
func NewGroup(id string, x, y float64) *Group {
	return &Group{ID: id, Offset: gg.Pt(x, y)}
}

// Add appends children and returns g.
func (g *Group) Add(nodes ...Node) *Group {
	for _, n := range nodes {
		if n != nil {
			g.Children = append(g.Children, n)
		}
	}
	return g
}

// Alpha returns the effective opacity.
func (g *Group) Alpha() float64 { return alpha(g.Opacity) }

// Paint is a solid color or a gradient. The zero value paints nothing.
type Paint struct {
	Color    gg.RGBA
	Gradient *LinearGradient
}

// Solid returns a solid paint.
func Solid(c gg.RGBA) Paint { return Paint{Color: c} }

// Hex returns a solid paint from a CSS hex color.
func Hex(s string) Paint { return Paint{Color: gg.Hex(s)} }

// Gradient returns a gradient paint.
func Gradient(g *LinearGradient) Paint { return Paint{Gradient: g} }

// None reports whether p paints nothing.
func (p Paint) None() bool { return p.Gradient == nil && p.Color.A == 0 }

// Stop is a gradient color stop.
type Stop struct {
	Offset float64
	Color  gg.RGBA
}

// LinearGradient runs from (X1, Y1) to (X2, Y2), given as fractions of the
// painted shape's bounding box.
type LinearGradient struct {
	ID             string
	X1, Y1, X2, Y2 float64
	Stops          []Stop
}

// Vertical returns a top-to-bottom gradient.
func Vertical(id string, stops ...Stop) *LinearGradient {
	return &LinearGradient{ID: id, X2: 0, Y2: 1, Stops: stops}
}

// Stroke is an outline style. A zero Width or a None paint draws nothing.
type Stroke struct {
	Paint Paint
	Width float64
	Dash  []float64
}

// Visible reports whether the stroke draws anything.
func (s Stroke) Visible() bool { return s.Width > 0 && !s.Paint.None() }

// Shape is a filled and/or stroked path.
type Shape struct {
	Path   *gg.Path
	Fill   Paint
	Stroke Stroke
	// Opacity scales fill and stroke. Zero means opaque.
	Opacity float64
	// Target is the data index this shape represents, or NoTarget.
	Target int
	// Class is a free-form role name ("bar", "slice", "grid", ...).
	Class string
}

func (*Shape) node() {}

// Alpha returns the effective opacity.
func (s *Shape) Alpha() float64 { return alpha(s.Opacity) }

// NewShape creates an untargeted shape.
func NewShape(class string, p *gg.Path, fill Paint) *Shape {
	return &Shape{Path: p, Fill: fill, Target: NoTarget, Class: class}
}

// Line creates a stroked segment.
func Line(class string, x1, y1, x2, y2 float64, stroke Stroke) *Shape {
	p := gg.NewPath()
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	return &Shape{Path: p, Stroke: stroke, Target: NoTarget, Class: class}
}

// Rect creates a filled rectangle.
func Rect(class string, x, y, w, h float64, fill Paint) *Shape {
	p := gg.NewPath()
	p.Rectangle(x, y, w, h)
	return NewShape(class, p, fill)
}

// Anchor is the horizontal text alignment.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Fraction returns the share of the text width left of the anchor point.
func (a Anchor) Fraction() float64 {
	switch a {
	case AnchorMiddle:
		return 0.5
	case AnchorEnd:
		return 1
	}
	return 0
}

// Baseline is the vertical text alignment.
type Baseline int

const (
	BaselineAlphabetic Baseline = iota
	BaselineMiddle
	BaselineHanging
)

// Shift returns the distance from the requested y to the alphabetic
// baseline for a font of the given size.
func (b Baseline) Shift(size float64) float64 {
	switch b {
	case BaselineMiddle:
		return 0.35 * size
	case BaselineHanging:
		return 0.8 * size
	}
	return 0
}

// Text is a single line of text.
type Text struct {
	Content  string
	Pos      gg.Point
	Anchor   Anchor
	Baseline Baseline
	Size     float64
	Bold     bool
	Color    gg.RGBA
	// Rotate is a clockwise rotation in degrees around Pos.
	Rotate float64
	Class  string
}

func (*Text) node() {}

// NewText creates text of the given size and color.
func NewText(class, content string, x, y, size float64, c gg.RGBA) *Text {
	return &Text{Class: class, Content: content, Pos: gg.Pt(x, y), Size: size, Color: c}
}

func alpha(o float64) float64 {
	if o <= 0 || o > 1 {
		return 1
	}
	return o
}
