package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/export"
)

func (a *App) newExportCmd() *cobra.Command {
	var (
		flags chartFlags
		dir   string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a chart into a directory under its title-derived name",
		Example: `  chartctl export -k bar -t "Passengers by Line" -i lines.json -d out/
  # writes out/passengers_by_line.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.build(&flags)
			if err != nil {
				return err
			}
			if dir == "" {
				dir = a.cfg.Export.Dir
			}
			c.Configure(chart.WithExportSink(export.DirSink{Dir: dir}))

			res := <-c.Export(cmd.Context())
			switch {
			case res.Err != nil:
				return res.Err
			case res.Skipped:
				return fmt.Errorf("export skipped: no drawing surface")
			}
			fmt.Fprintf(a.stdout, "%s (%d bytes)\n", res.Name, res.Bytes)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "output directory (default from config)")
	return cmd
}
