package cli

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/chart/internal/config"
)

const lines = `[{"name":"Red","value":30},{"name":"Blue","value":10},{"name":"Green","value":20}]`

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr).WithInput(strings.NewReader(stdin))
	err := app.ExecuteWithArgs(context.Background(), args)
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "chartctl version") {
		t.Errorf("output = %q", out)
	}
}

func TestHelp(t *testing.T) {
	out, _, err := run(t, "", "--help")
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	for _, cmd := range []string{"render", "export", "serve", "backends"} {
		if !strings.Contains(out, cmd) {
			t.Errorf("help output missing %q", cmd)
		}
	}
}

func TestBackends(t *testing.T) {
	out, _, err := run(t, "", "backends")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "raster\n") || !strings.Contains(out, "svg\n") {
		t.Errorf("output = %q", out)
	}
}

func TestRenderStdinToStdout(t *testing.T) {
	out, _, err := run(t, lines, "render", "-k", "pie", "-b", "svg")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<svg") {
		t.Errorf("output is not SVG: %.40q", out)
	}
}

func TestRenderFileToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "lines.json")
	if err := os.WriteFile(in, []byte(lines), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "lines.png")
	if _, _, err := run(t, "", "render", "-k", "bar", "-i", in, "-o", out, "-b", "raster", "--width", "500"); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"kind", lines, []string{"render", "-k", "radar"}},
		{"backend", lines, []string{"render", "-b", "pdf"}},
		{"input", "not json", []string{"render"}},
		{"missing file", "", []string{"render", "-i", "/nonexistent/lines.json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := run(t, tt.stdin, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestExportWritesTitledFile(t *testing.T) {
	dir := t.TempDir()
	out, _, err := run(t, lines, "export", "-k", "bar", "-t", "Passengers by Line", "-d", dir)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(out, "passengers_by_line.png") {
		t.Errorf("output = %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "passengers_by_line.png")); err != nil {
		t.Error(err)
	}
}

func TestVerboseLogsAtDebug(t *testing.T) {
	_, stderr, err := run(t, lines, "render", "-v", "-k", "area")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "level=DEBUG") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.yaml")
	if err := os.WriteFile(path, []byte("log:\n  format: xml\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err := run(t, "", "backends", "-c", path)
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	app := New().WithOutput(&bytes.Buffer{}, &bytes.Buffer{})
	if err := app.setup(nil, nil); err != nil {
		t.Fatal(err)
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	srv := &http.Server{Handler: http.NotFoundHandler(), ReadHeaderTimeout: time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, srv, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return")
	}
}
