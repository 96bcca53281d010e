package responsive

import "sync"

// Manual is a Container whose size is set by the caller. Headless hosts and
// tests use it in place of a real window or element.
type Manual struct {
	mu        sync.Mutex
	w, h      float64
	next      int
	observers map[int]func(w, h float64)
}

// NewManual creates a container with an initial size.
func NewManual(w, h float64) *Manual {
	return &Manual{w: w, h: h, observers: make(map[int]func(w, h float64))}
}

// Size implements Container.
func (m *Manual) Size() (float64, float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.w, m.h
}

// Observe implements Container.
func (m *Manual) Observe(fn func(w, h float64)) func() {
	m.mu.Lock()
	id := m.next
	m.next++
	m.observers[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.observers, id)
			m.mu.Unlock()
		})
	}
}

// Resize changes the size and notifies observers outside the lock.
func (m *Manual) Resize(w, h float64) {
	m.mu.Lock()
	m.w, m.h = w, h
	fns := make([]func(w, h float64), 0, len(m.observers))
	for _, fn := range m.observers {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(w, h)
	}
}

// Observers returns the number of registered observers.
func (m *Manual) Observers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.observers)
}
