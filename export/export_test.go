package export

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gg"

	_ "github.com/gogpu/chart/render/raster"
	_ "github.com/gogpu/chart/render/svg"
	"github.com/gogpu/chart/scene"
)

func testScene() *scene.Scene {
	s := scene.New(40, 30)
	s.Add(scene.Rect("bar", 5, 5, 10, 10, scene.Hex("#3b82f6")))
	return s
}

func TestFileName(t *testing.T) {
	tests := []struct {
		title, want string
	}{
		{"Monthly Flights", "monthly_flights.png"},
		{"  Top   Airports ", "top_airports.png"},
		{"a/b\\c", "a_b_c.png"},
		{"", "chart.png"},
		{"   ", "chart.png"},
	}
	for _, tt := range tests {
		if got := FileName(tt.title, ".png"); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestExportWritesOpaquePNG(t *testing.T) {
	var buf bytes.Buffer
	p := &Pipeline{Sink: &WriterSink{W: &buf}}

	res := <-p.Export(context.Background(), testScene(), "Flights by Month")
	if res.Err != nil || res.Skipped {
		t.Fatalf("result = %+v", res)
	}
	if res.Name != "flights_by_month.png" {
		t.Errorf("Name = %q", res.Name)
	}
	if res.Bytes != int64(buf.Len()) {
		t.Errorf("Bytes = %d, buffer holds %d", res.Bytes, buf.Len())
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	// background is painted white even though the scene has none
	if _, _, _, a := img.At(35, 25).RGBA(); a != 0xffff {
		t.Errorf("corner alpha = %#x, want opaque", a)
	}
}

func TestExportDoesNotMutateScene(t *testing.T) {
	s := testScene()
	p := &Pipeline{Sink: &WriterSink{W: io.Discard}}
	<-p.Export(context.Background(), s, "x")
	if s.Background != (gg.RGBA{}) {
		t.Errorf("scene background changed to %v", s.Background)
	}
}

func TestExportSkipped(t *testing.T) {
	tests := []struct {
		name string
		p    *Pipeline
		s    *scene.Scene
	}{
		{"unknown backend", &Pipeline{Backend: "gpu", Sink: &WriterSink{W: io.Discard}}, testScene()},
		{"zero size", &Pipeline{Sink: &WriterSink{W: io.Discard}}, scene.New(0, 10)},
		{"nil scene", &Pipeline{Sink: &WriterSink{W: io.Discard}}, nil},
		{"no sink", &Pipeline{}, testScene()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := <-tt.p.Export(context.Background(), tt.s, "t")
			if !ok {
				t.Fatal("channel closed without a result")
			}
			if !res.Skipped || res.Err != nil {
				t.Errorf("result = %+v, want skipped without error", res)
			}
		})
	}
}

func TestExportChannelClosesAfterResult(t *testing.T) {
	p := &Pipeline{Sink: &WriterSink{W: io.Discard}}
	ch := p.Export(context.Background(), testScene(), "t")
	<-ch
	if _, ok := <-ch; ok {
		t.Error("channel delivered a second result")
	}
}

func TestExportCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	p := &Pipeline{Sink: &WriterSink{W: &buf}}
	res := <-p.Export(ctx, testScene(), "t")
	if !errors.Is(res.Err, context.Canceled) {
		t.Errorf("Err = %v, want context.Canceled", res.Err)
	}
	if buf.Len() != 0 {
		t.Error("canceled export wrote output")
	}
}

func TestExportSVG(t *testing.T) {
	var buf bytes.Buffer
	p := &Pipeline{Backend: "svg", Sink: &WriterSink{W: &buf}}
	res := <-p.Export(context.Background(), testScene(), "Chart")
	if res.Err != nil || res.Name != "chart.svg" {
		t.Fatalf("result = %+v", res)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output is not SVG")
	}
}

func TestDirSink(t *testing.T) {
	dir := t.TempDir()
	p := &Pipeline{Sink: DirSink{Dir: dir}}
	res := <-p.Export(context.Background(), testScene(), "Passengers 2024")
	if res.Err != nil {
		t.Fatalf("Export: %v", res.Err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "passengers_2024.png"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if int64(len(data)) != res.Bytes {
		t.Errorf("file has %d bytes, result says %d", len(data), res.Bytes)
	}
	assertOnly(t, dir, "passengers_2024.png")
}

func TestDirSinkLeavesNoPartialFile(t *testing.T) {
	dir := t.TempDir()
	err := DirSink{Dir: dir}.Save(context.Background(), "broken.png", func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return errors.New("encoder failed")
	})
	if err == nil {
		t.Fatal("Save succeeded with a failing writer")
	}
	assertOnly(t, dir)
}

func assertOnly(t *testing.T, dir string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	if strings.Join(got, ",") != strings.Join(names, ",") {
		t.Errorf("directory holds %v, want %v", got, names)
	}
}
