// Package scene is a backend-neutral description of a drawn chart.
//
// A Scene is a tree of groups holding shapes and text. Shapes carry their
// geometry as *gg.Path so that every backend plays back identical outlines.
// Scenes are built fresh for every frame and are not modified after they are
// handed to a backend, which makes them safe to share with the export
// goroutine.
package scene

import "github.com/gogpu/gg"

// NoTarget marks a shape that is not bound to a data item.
const NoTarget = -1

// Scene is the root of a drawing.
type Scene struct {
	Width, Height float64
	Background    gg.RGBA
	Title         string
	Root          *Group
}

// New creates an empty scene with a transparent background.
func New(width, height float64) *Scene {
	return &Scene{Width: width, Height: height, Root: NewGroup("root", 0, 0)}
}

// Add appends nodes to the root group.
func (s *Scene) Add(nodes ...Node) *Scene {
	s.Root.Add(nodes...)
	return s
}

// Gradients returns the distinct gradients used by shapes in draw order.
func (s *Scene) Gradients() []*LinearGradient {
	var out []*LinearGradient
	seen := make(map[*LinearGradient]bool)
	Walk(s.Root, func(n Node, _ gg.Point) {
		sh, ok := n.(*Shape)
		if !ok {
			return
		}
		for _, g := range []*LinearGradient{sh.Fill.Gradient, sh.Stroke.Paint.Gradient} {
			if g != nil && !seen[g] {
				seen[g] = true
				out = append(out, g)
			}
		}
	})
	return out
}

// Targets returns the shapes bound to data items in draw order, with the
// absolute offset of their parent group.
func (s *Scene) Targets() []Placed {
	var out []Placed
	Walk(s.Root, func(n Node, off gg.Point) {
		if sh, ok := n.(*Shape); ok && sh.Target != NoTarget {
			out = append(out, Placed{Shape: sh, Offset: off})
		}
	})
	return out
}

// Placed is a shape with the absolute offset it is drawn at.
type Placed struct {
	Shape  *Shape
	Offset gg.Point
}

// Walk visits n and its descendants depth first. off is the accumulated
// group offset of each visited node's parent.
func Walk(n Node, fn func(n Node, off gg.Point)) {
	walk(n, gg.Pt(0, 0), fn)
}

func walk(n Node, off gg.Point, fn func(Node, gg.Point)) {
	fn(n, off)
	if g, ok := n.(*Group); ok {
		inner := off.Add(g.Offset)
		for _, c := range g.Children {
			walk(c, inner, fn)
		}
	}
}
