package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/dataset"
)

// chartFlags are shared by render and export.
type chartFlags struct {
	kind   string
	in     string
	width  float64
	height float64
	title  string
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.kind, "kind", "k", "", "chart kind (bar, horizontal-bar, pie, area, scatter)")
	cmd.Flags().StringVarP(&f.in, "in", "i", "-", "JSON point array to read, - for stdin")
	cmd.Flags().Float64Var(&f.width, "width", 0, "surface width")
	cmd.Flags().Float64Var(&f.height, "height", 0, "surface height")
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "chart title, used for export file names")
}

// build reads the data set and creates the chart described by the flags
// layered over the configuration.
func (a *App) build(f *chartFlags) (*chart.Chart, error) {
	cc := a.cfg.Chart
	if f.kind != "" {
		cc.Kind = f.kind
	}
	if f.width > 0 {
		cc.Width = f.width
	}
	if f.height > 0 {
		cc.Height = f.height
	}
	if f.title != "" {
		cc.Title = f.title
	}
	kind, err := chart.ParseKind(cc.Kind)
	if err != nil {
		return nil, err
	}

	points, err := a.readPoints(f.in)
	if err != nil {
		return nil, err
	}
	opts := append(cc.Options(), chart.WithExportBackend(a.cfg.Export.Backend))
	c := chart.New(kind, points, opts...)
	c.Resize(cc.Width, cc.Height)
	return c, nil
}

func (a *App) readPoints(path string) ([]dataset.Point, error) {
	var r io.Reader = a.stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		r = file
	}
	return dataset.Decode(r)
}

func (a *App) newRenderCmd() *cobra.Command {
	var (
		flags   chartFlags
		out     string
		backend string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart to a file or stdout",
		Example: `  chartctl render -k pie -i lines.json -o lines.svg
  cat lines.json | chartctl render -k bar --backend raster > lines.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.build(&flags)
			if err != nil {
				return err
			}
			if backend == "" {
				backend = a.cfg.Render.Backend
			}

			var w io.Writer = a.stdout
			if out != "-" {
				file, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer file.Close()
				w = file
			}
			n, err := c.Render(w, backend)
			if err != nil {
				return err
			}
			a.log.Debug("chart rendered", "kind", c.Kind(), "backend", backend, "bytes", n, "out", out)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().StringVarP(&backend, "backend", "b", "", "render backend (default from config)")
	return cmd
}
