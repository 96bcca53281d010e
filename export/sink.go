package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Sink receives encoded exports.
type Sink interface {
	// Save stores the output of write under name. write is called at most
	// once.
	Save(ctx context.Context, name string, write func(io.Writer) error) error
}

// DirSink writes files into a directory. A file only appears once it has
// been written completely.
type DirSink struct {
	Dir string
}

// Save implements Sink.
func (d DirSink) Save(ctx context.Context, name string, write func(io.Writer) error) error {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	tmp, err := os.CreateTemp(d.Dir, "."+name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("export: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), filepath.Join(d.Dir, name)); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// WriterSink streams every export to W, ignoring the name.
type WriterSink struct {
	mu sync.Mutex
	W  io.Writer
}

// Save implements Sink.
func (s *WriterSink) Save(_ context.Context, _ string, write func(io.Writer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return write(s.W)
}
