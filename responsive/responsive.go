// Package responsive keeps a chart sized to its host container.
//
// A Sizer observes a Container for the lifetime of an attachment, clamps the
// reported size and forwards it to a callback. Detaching releases the
// observer, and notifications that race with a detach are dropped.
package responsive

import (
	"math"
	"sync"
	"sync/atomic"
)

// Defaults applied by Clamp.
const (
	DefaultMinWidth = 400
	DefaultHeight   = 400
)

// Container is a host surface whose size can change.
type Container interface {
	// Size returns the current size.
	Size() (w, h float64)
	// Observe registers fn for size changes and returns a function that
	// unregisters it.
	Observe(fn func(w, h float64)) (stop func())
}

// Sizer adapts chart dimensions to a container.
type Sizer struct {
	MinWidth      float64
	DefaultHeight float64

	onResize func(w, h float64)

	mu  sync.Mutex
	cur *attachment
}

type attachment struct {
	active atomic.Bool
	stop   func()
}

// NewSizer creates a sizer that reports clamped sizes to onResize.
func NewSizer(onResize func(w, h float64)) *Sizer {
	return &Sizer{
		MinWidth:      DefaultMinWidth,
		DefaultHeight: DefaultHeight,
		onResize:      onResize,
	}
}

// Clamp applies the minimum width and the default height to a raw size.
func (s *Sizer) Clamp(w, h float64) (float64, float64) {
	return ClampSize(w, h, s.MinWidth, s.DefaultHeight)
}

// ClampSize raises w to at least minWidth and replaces a non-positive h by
// height. NaN counts as too small.
func ClampSize(w, h, minWidth, height float64) (float64, float64) {
	if math.IsNaN(w) || w < minWidth {
		w = minWidth
	}
	if math.IsNaN(h) || h <= 0 {
		h = height
	}
	return w, h
}

// Attach measures c immediately and then follows its size changes. An
// existing attachment is detached first.
func (s *Sizer) Attach(c Container) {
	s.Detach()

	a := &attachment{}
	a.active.Store(true)
	notify := func(w, h float64) {
		if !a.active.Load() || s.onResize == nil {
			return
		}
		s.onResize(s.Clamp(w, h))
	}

	s.mu.Lock()
	s.cur = a
	s.mu.Unlock()

	notify(c.Size())
	stop := c.Observe(notify)

	s.mu.Lock()
	if s.cur == a {
		a.stop = stop
		stop = nil
	}
	s.mu.Unlock()
	// detached while subscribing
	if stop != nil {
		stop()
	}
}

// Detach stops observing. It is safe to call more than once.
func (s *Sizer) Detach() {
	s.mu.Lock()
	a := s.cur
	s.cur = nil
	s.mu.Unlock()
	if a == nil {
		return
	}
	a.active.Store(false)
	if a.stop != nil {
		a.stop()
	}
}

// Attached reports whether a container is being observed.
func (s *Sizer) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur != nil
}
