package main

import (
	"os"

	"loopsort/src/cmd"
)

func main() {
	if err := cmd.Main(os.Args); err != nil {
		os.Exit(1)
	}
}
