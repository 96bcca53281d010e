package render

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/chart/scene"
)

// Stack accumulates group offsets and opacity for backends that draw in
// absolute coordinates. The zero value is ready to use.
type Stack struct {
	frames []frame
}

type frame struct {
	offset  gg.Point
	opacity float64
}

// Push enters g.
func (s *Stack) Push(g *scene.Group) {
	cur := s.top()
	s.frames = append(s.frames, frame{
		offset:  cur.offset.Add(g.Offset),
		opacity: cur.opacity * g.Alpha(),
	})
}

// Pop leaves the innermost group. Popping an empty stack is a no-op.
func (s *Stack) Pop() {
	if len(s.frames) > 0 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// Offset returns the accumulated translation.
func (s *Stack) Offset() gg.Point { return s.top().offset }

// Opacity returns the accumulated opacity.
func (s *Stack) Opacity() float64 { return s.top().opacity }

// Depth returns the number of open groups.
func (s *Stack) Depth() int { return len(s.frames) }

func (s *Stack) top() frame {
	if len(s.frames) == 0 {
		return frame{opacity: 1}
	}
	return s.frames[len(s.frames)-1]
}
