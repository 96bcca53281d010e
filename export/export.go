// Package export turns chart scenes into image files off the caller's
// goroutine.
//
// Every export renders a private copy of the scene's drawing instructions
// onto its own backend instance, paints an opaque white background and hands
// the encoded bytes to a Sink. When no drawing surface can be obtained the
// export is skipped quietly: nothing is written and no error is reported.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/internal/textfmt"
	"github.com/gogpu/chart/render"
	"github.com/gogpu/chart/scene"
)

// ErrNoSurface reports that no drawing surface was available.
var ErrNoSurface = errors.New("export: no drawing surface")

// DefaultBackend is the backend used when Pipeline.Backend is empty.
const DefaultBackend = "raster"

// Result is the outcome of one export.
type Result struct {
	// Name is the file name handed to the sink.
	Name string
	// Bytes is the encoded size.
	Bytes int64
	// Skipped is set when no surface was available; Err is nil then.
	Skipped bool
	Err     error
}

// Pipeline exports scenes to a sink.
type Pipeline struct {
	// Backend names the registered render backend; empty means raster.
	Backend string
	Sink    Sink
	Logger  *slog.Logger
}

// FileName derives the download name for a chart title: whitespace runs
// become underscores, path separators are replaced and the result is
// lowercased. A blank title yields "chart".
func FileName(title, ext string) string {
	stem := textfmt.Slug(title)
	if stem == "" {
		stem = "chart"
	}
	return stem + ext
}

// Export starts an export of s and returns a channel that delivers exactly
// one Result and is then closed.
func (p *Pipeline) Export(ctx context.Context, s *scene.Scene, title string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		out <- p.run(ctx, s, title)
	}()
	return out
}

func (p *Pipeline) run(ctx context.Context, s *scene.Scene, title string) Result {
	log := p.logger()
	name := FileName(title, extension(p.backend()))
	res := Result{Name: name}

	err := p.export(ctx, s, name, &res.Bytes)
	switch {
	case errors.Is(err, ErrNoSurface):
		log.Debug("export skipped", "name", name, "reason", err)
		res.Skipped = true
	case err != nil:
		log.Warn("export failed", "name", name, "err", err)
		res.Err = err
	default:
		log.Debug("export written", "name", name, "bytes", res.Bytes)
	}
	return res
}

func (p *Pipeline) export(ctx context.Context, s *scene.Scene, name string, n *int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: empty scene", ErrNoSurface)
	}
	if p.Sink == nil {
		return fmt.Errorf("%w: no sink", ErrNoSurface)
	}
	b, err := render.NewBackend(p.backend())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoSurface, err)
	}
	if c, ok := b.(io.Closer); ok {
		defer c.Close()
	}
	wb, ok := b.(render.WriterBackend)
	if !ok {
		return fmt.Errorf("%w: backend %q cannot encode", ErrNoSurface, p.backend())
	}

	frame := *s
	frame.Background = gg.White
	if err := render.Play(&frame, wb); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.Sink.Save(ctx, name, func(w io.Writer) error {
		written, err := wb.WriteTo(w)
		*n = written
		return err
	})
}

func (p *Pipeline) backend() string {
	if p.Backend == "" {
		return DefaultBackend
	}
	return p.Backend
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// extension returns the file extension of the backend's output, or an
// empty string for unknown backends.
func extension(backend string) string {
	f, err := render.FormatOf(backend)
	if err != nil {
		return ""
	}
	return f.Ext
}
