package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"loopsort/src/seqio"
	"loopsort/src/sort"
)

func CmdCompare() *cli.Command {
	return &cli.Command{
		Name:     "compare",
		Action:   compare,
		Category: "TOOL",
		Usage:    "run every algorithm on the same input",
		Description: `Reads one sequence, sorts a copy of it with each algorithm and prints every
result with its operation counts. Fails if the results disagree.

Examples:
$ echo 5 9 7 5 3 1 | loopsort compare`,
		Flags: sortFlags(),
	}
}

func compare(c *cli.Context) error {
	if err := setup(c, 0); err != nil {
		return err
	}

	in, err := readInput(c)
	if err != nil {
		return err
	}

	var first sort.IntArray
	for _, alg := range sort.Algorithms {
		a := append(sort.IntArray{}, in...)
		counter := run(c, alg, a, c.App.ErrWriter)
		fmt.Fprintf(c.App.Writer, "%-14s %s  (%s)\n", alg.Name, seqio.Format(a), counter)

		if first == nil {
			first = a
			continue
		}
		for i := range a {
			if a[i] != first[i] {
				return errors.Errorf("%s disagrees with %s at index %d: %d != %d",
					alg.Name, sort.Algorithms[0].Name, i, a[i], first[i])
			}
		}
	}
	return nil
}
