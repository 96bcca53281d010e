package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/chart/scene"
)

func testScene() *scene.Scene {
	s := scene.New(100.4, 50)
	plot := scene.NewGroup("plot", 10, 20)
	plot.Opacity = 0.5
	bar := scene.Rect("bar", 0, 0, 5, 5, scene.Hex("#3b82f6"))
	bar.Opacity = 0.5
	plot.Add(bar, scene.NewText("label", "hi", 0, 0, 12, scene.Hex("#000").Color))
	s.Add(plot, scene.Rect("frame", 0, 0, 1, 1, scene.Hex("#fff")))
	return s
}

func TestPlayOrderAndOffsets(t *testing.T) {
	b := newMockBackend("mock")
	if err := Play(testScene(), b); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if b.beginCalls != 1 || b.endCalls != 1 {
		t.Errorf("begin/end = %d/%d, want 1/1", b.beginCalls, b.endCalls)
	}
	if b.width != 101 || b.height != 50 {
		t.Errorf("size = %dx%d, want 101x50", b.width, b.height)
	}
	want := []string{
		"push root",
		"push plot",
		"shape bar @10,20 α0.25",
		"text hi",
		"pop",
		"shape frame @0,0 α1.00",
		"pop",
	}
	if got := strings.Join(b.calls, "|"); got != strings.Join(want, "|") {
		t.Errorf("calls =\n%s\nwant\n%s", got, strings.Join(want, "|"))
	}
	if b.stack.Depth() != 0 {
		t.Errorf("stack depth after play = %d", b.stack.Depth())
	}
}

func TestPlayPropagatesErrorsAndBalancesGroups(t *testing.T) {
	b := newMockBackend("mock")
	b.failShape = true
	err := Play(testScene(), b)
	if err == nil || !strings.Contains(err.Error(), `shape "bar"`) {
		t.Fatalf("err = %v, want shape error", err)
	}
	if b.endCalls != 0 {
		t.Error("End called after a failed shape")
	}
	if b.stack.Depth() != 0 {
		t.Errorf("groups left open: %d", b.stack.Depth())
	}
}

func TestRender(t *testing.T) {
	resetRegistry()
	defer resetRegistry()
	Register("mock", mockDriver("mock"))

	var buf bytes.Buffer
	n, err := Render(testScene(), "mock", &buf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if n != int64(buf.Len()) || !strings.Contains(buf.String(), "shape bar") {
		t.Errorf("Render wrote %d bytes: %q", n, buf.String())
	}

	if _, err := Render(testScene(), "missing", &buf); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("err = %v, want ErrUnknownBackend", err)
	}
}

func TestRenderWithoutWriter(t *testing.T) {
	resetRegistry()
	defer resetRegistry()
	Register("silent", Driver{New: func() Backend {
		// hide WriteTo
		return struct{ Backend }{newMockBackend("silent")}
	}})
	if _, err := Render(testScene(), "silent", &bytes.Buffer{}); !errors.Is(err, ErrNoOutput) {
		t.Errorf("err = %v, want ErrNoOutput", err)
	}
}
