package chart

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/chart/dataset"
)

// captureLogs installs a debug-level text logger for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestDiscardHandler(t *testing.T) {
	var h slog.Handler = discard{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = true", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle = %v", err)
	}
	if _, ok := h.WithAttrs(nil).WithGroup("g").(discard); !ok {
		t.Error("derived handler is not silent")
	}
}

func TestSetLoggerNilIsSilent(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	SetLogger(slog.Default())
	SetLogger(nil)
	if l := Logger(); l == nil || l.Enabled(context.Background(), slog.LevelError) {
		t.Errorf("Logger() after SetLogger(nil) = %v", l)
	}
}

func TestChartLogRecords(t *testing.T) {
	tests := []struct {
		name string
		do   func(t *testing.T)
		want []string
	}{
		{
			name: "sanitised input",
			do: func(t *testing.T) {
				New(Bar, []dataset.Point{{Name: "a", Value: math.NaN()}, {Name: "b", Value: 2}})
			},
			want: []string{"level=WARN", "replaced=1", "reason=new"},
		},
		{
			name: "hover",
			do: func(t *testing.T) {
				c := newTestChart(Bar, abc())
				p := targetCenter(t, c.Scene(), 0)
				c.PointerMove(p.X, p.Y)
			},
			want: []string{"reason=hover", "kind=bar"},
		},
		{
			name: "resize",
			do:   func(t *testing.T) { newTestChart(Pie, abc()).Resize(900, 500) },
			want: []string{"reason=resize", "width=900"},
		},
		{
			name: "export disabled",
			do:   func(t *testing.T) { <-newTestChart(Bar, abc(), WithExport(false, "x")).Export(context.Background()) },
			want: []string{"export disabled"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			tt.do(t)
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("log output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestSetLoggerWhileCharting(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	c := New(Area, abc())
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Resize(float64(400+i), 300)
		}()
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				SetLogger(slog.Default())
			} else {
				SetLogger(nil)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkSilentRefresh(b *testing.B) {
	c := New(Scatter, []dataset.Point{{X: 1, Y: 2}, {X: 3, Y: 1}, {X: 2, Y: 5}})
	b.ReportAllocs()
	for b.Loop() {
		c.Resize(800, 400)
	}
}
