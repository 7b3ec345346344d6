package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"loopsort/src/seqio"
	"loopsort/src/sort"
)

func sortFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "read the sequence from `FILE` instead of stdin",
		},
		&cli.BoolFlag{
			Name:  "steps",
			Usage: "print every pass of the sort as a tree on stderr",
		},
		&cli.BoolFlag{
			Name:  "stats",
			Usage: "print comparison, shift and swap counts on stderr",
		},
	}
}

func CmdInsertion() *cli.Command {
	return &cli.Command{
		Name:     "insertion",
		Action:   sortAction("insertion"),
		Category: "SORT",
		Usage:    "insertion sort, left to right",
		Description: `Reads a count n and then n integers, sorts them by inserting each key into
the sorted prefix a[0..i-1], and prints the result.

Examples:
$ echo 6 3 5 4 6 2 1 | loopsort insertion
1 2 3 4 5 6
# Show every pass
$ echo 6 3 5 4 6 2 1 | loopsort insertion --steps`,
		Flags: sortFlags(),
	}
}

func CmdRevInsertion() *cli.Command {
	return &cli.Command{
		Name:     "rev-insertion",
		Action:   sortAction("rev-insertion"),
		Category: "SORT",
		Usage:    "insertion sort, right to left",
		Description: `Reads a count n and then n integers, sorts them by inserting each key into
the sorted suffix a[i+1..n-1], walking from the back, and prints the result.

Examples:
$ echo 3 3 1 2 | loopsort rev-insertion
1 2 3`,
		Flags: sortFlags(),
	}
}

func CmdLinear() *cli.Command {
	return &cli.Command{
		Name:     "linear",
		Aliases:  []string{"selection"},
		Action:   sortAction("linear"),
		Category: "SORT",
		Usage:    "selection sort",
		Description: `Reads a count n and then n integers, sorts them by swapping the minimum of
the unsorted suffix into place, and prints the result. Among equal minima the
last one is selected.

Examples:
$ echo 3 3 1 2 | loopsort linear --stats
1 2 3`,
		Flags: sortFlags(),
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func readInput(c *cli.Context) (sort.IntArray, error) {
	r := c.App.Reader
	if path := c.String("input"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer f.Close()
		r = f
	}

	sr := seqio.NewReader(r)
	if f, ok := r.(*os.File); ok && isTerminal(f) {
		sr.WithPrompt(c.App.ErrWriter)
	}
	return sr.ReadSequence()
}

// run sorts a with alg and reports stats and steps on w as asked.
func run(c *cli.Context, alg *sort.Algorithm, a sort.IntArray, w io.Writer) *sort.Counter {
	counter := &sort.Counter{}
	tracer := sort.Tracer(counter)
	var steps *stepTracer
	if c.Bool("steps") {
		steps = newStepTracer(alg.Name, a)
		tracer = sort.Tee(counter, steps)
	}

	start := time.Now()
	alg.Sort(a, tracer)
	logger.Debugf("%s: n=%d %s in %s", alg.Name, len(a), counter, time.Since(start))

	if steps != nil {
		steps.root.ShowTree(w, "")
	}
	if c.Bool("stats") {
		fmt.Fprintf(w, "%s: %s\n", alg.Name, counter)
	}
	return counter
}

func sortAction(name string) cli.ActionFunc {
	return func(c *cli.Context) error {
		if err := setup(c, 0); err != nil {
			return err
		}
		alg, ok := sort.Lookup(name)
		if !ok {
			return errors.Errorf("unknown algorithm %q", name)
		}

		a, err := readInput(c)
		if err != nil {
			return err
		}
		logger.Tracef("%s: read %d values", name, len(a))

		run(c, alg, a, c.App.ErrWriter)
		return seqio.Write(c.App.Writer, a)
	}
}
