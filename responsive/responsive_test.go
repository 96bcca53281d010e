package responsive

import (
	"math"
	"sync"
	"testing"
)

type recorder struct {
	mu    sync.Mutex
	sizes [][2]float64
}

func (r *recorder) record(w, h float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sizes = append(r.sizes, [2]float64{w, h})
}

func (r *recorder) last() [2]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sizes[len(r.sizes)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sizes)
}

func TestClamp(t *testing.T) {
	s := NewSizer(nil)
	tests := []struct {
		w, h         float64
		wantW, wantH float64
	}{
		{800, 300, 800, 300},
		{200, 300, 400, 300},
		{800, 0, 800, 400},
		{-5, -5, 400, 400},
	}
	for _, tt := range tests {
		if w, h := s.Clamp(tt.w, tt.h); w != tt.wantW || h != tt.wantH {
			t.Errorf("Clamp(%v, %v) = %v, %v; want %v, %v", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestClampSizeNaN(t *testing.T) {
	w, h := ClampSize(math.NaN(), math.NaN(), 320, 200)
	if w != 320 || h != 200 {
		t.Errorf("ClampSize(NaN, NaN) = %v, %v; want 320, 200", w, h)
	}
}

func TestAttachMeasuresAndFollows(t *testing.T) {
	var r recorder
	s := NewSizer(r.record)
	c := NewManual(600, 300)

	s.Attach(c)
	if r.count() != 1 || r.last() != [2]float64{600, 300} {
		t.Fatalf("initial measure = %v", r.sizes)
	}
	if !s.Attached() || c.Observers() != 1 {
		t.Fatalf("Attached = %v, observers = %d", s.Attached(), c.Observers())
	}

	c.Resize(100, 500)
	if got := r.last(); got != [2]float64{400, 500} {
		t.Errorf("after resize = %v, want clamped [400 500]", got)
	}
}

func TestDetachIsIdempotentAndSilences(t *testing.T) {
	var r recorder
	s := NewSizer(r.record)
	c := NewManual(600, 300)
	s.Attach(c)

	s.Detach()
	s.Detach()
	if s.Attached() || c.Observers() != 0 {
		t.Fatalf("after Detach: Attached = %v, observers = %d", s.Attached(), c.Observers())
	}
	n := r.count()
	c.Resize(900, 900)
	if r.count() != n {
		t.Error("resize after Detach reached the callback")
	}
}

func TestReattachReleasesPrevious(t *testing.T) {
	var r recorder
	s := NewSizer(r.record)
	a, b := NewManual(500, 300), NewManual(700, 300)

	s.Attach(a)
	s.Attach(b)
	if a.Observers() != 0 || b.Observers() != 1 {
		t.Fatalf("observers a=%d b=%d, want 0 and 1", a.Observers(), b.Observers())
	}
	a.Resize(1000, 1000)
	if got := r.last(); got != [2]float64{700, 300} {
		t.Errorf("stale container reached the callback: %v", got)
	}
}

// staleContainer keeps delivering notifications after stop, like a host whose
// resize event is already queued.
type staleContainer struct {
	fn func(w, h float64)
}

func (c *staleContainer) Size() (float64, float64) { return 500, 500 }

func (c *staleContainer) Observe(fn func(w, h float64)) func() {
	c.fn = fn
	return func() {}
}

func TestLateNotificationAfterDetach(t *testing.T) {
	var r recorder
	s := NewSizer(r.record)
	c := &staleContainer{}
	s.Attach(c)
	s.Detach()

	c.fn(800, 800)
	if r.count() != 1 {
		t.Errorf("late notification was delivered: %v", r.sizes)
	}
}

func TestConcurrentResize(t *testing.T) {
	var r recorder
	s := NewSizer(r.record)
	c := NewManual(500, 500)
	s.Attach(c)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Resize(float64(500+i), 400)
		}(i)
	}
	wg.Wait()
	s.Detach()
	if r.count() != 9 {
		t.Errorf("callbacks = %d, want 9", r.count())
	}
}
