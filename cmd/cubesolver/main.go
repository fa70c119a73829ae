// cubesolver - CLI for benchmarking the two-phase Rubik's cube solver.
package main

import (
	"github.com/SeamusWaldron/cubesolver/internal/cli"
)

func main() {
	cli.Execute()
}
