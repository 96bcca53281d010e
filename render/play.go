package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gogpu/chart/scene"
)

// ErrNoOutput is returned by Render for backends that cannot write a stream.
var ErrNoOutput = errors.New("render: backend has no stream output")

// Play draws s onto b, from Begin to End.
func Play(s *scene.Scene, b Backend) error {
	w, h := int(math.Ceil(s.Width)), int(math.Ceil(s.Height))
	if err := b.Begin(w, h, s.Background); err != nil {
		return fmt.Errorf("render: begin: %w", err)
	}
	if s.Root != nil {
		if err := play(s.Root, b); err != nil {
			return err
		}
	}
	if err := b.End(); err != nil {
		return fmt.Errorf("render: end: %w", err)
	}
	return nil
}

func play(n scene.Node, b Backend) error {
	switch n := n.(type) {
	case *scene.Group:
		b.PushGroup(n)
		defer b.PopGroup()
		for _, c := range n.Children {
			if err := play(c, b); err != nil {
				return err
			}
		}
	case *scene.Shape:
		if err := b.DrawShape(n); err != nil {
			return fmt.Errorf("render: shape %q: %w", n.Class, err)
		}
	case *scene.Text:
		if err := b.DrawText(n); err != nil {
			return fmt.Errorf("render: text %q: %w", n.Class, err)
		}
	}
	return nil
}

// Render plays s onto a new backend called name and writes the output to w.
func Render(s *scene.Scene, name string, w io.Writer) (int64, error) {
	b, err := NewBackend(name)
	if err != nil {
		return 0, err
	}
	wb, ok := b.(WriterBackend)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoOutput, name)
	}
	if err := Play(s, wb); err != nil {
		return 0, err
	}
	return wb.WriteTo(w)
}
