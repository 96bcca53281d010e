// Command chartctl renders, exports and serves charts.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gogpu/chart/internal/cli"
)

func main() {
	if err := cli.New().Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "chartctl:", err)
		os.Exit(1)
	}
}
