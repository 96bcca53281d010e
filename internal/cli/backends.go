package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/chart/render"
)

func (a *App) newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the registered render backends",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range render.Backends() {
				fmt.Fprintln(a.stdout, name)
			}
		},
	}
}
