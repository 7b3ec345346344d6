package sort

import "fmt"

// Counter is a Tracer that tallies operations.
type Counter struct {
	Passes      int
	Comparisons int
	Shifts      int
	Swaps       int
	Places      int
}

func (c *Counter) Begin(int, IntArray)      { c.Passes++ }
func (c *Counter) Compare(int, IntArray)    { c.Comparisons++ }
func (c *Counter) Shift(int, int, IntArray) { c.Shifts++ }
func (c *Counter) Swap(int, int, IntArray)  { c.Swaps++ }
func (c *Counter) Place(int, int, IntArray) { c.Places++ }

func (c *Counter) String() string {
	return fmt.Sprintf("passes=%d comparisons=%d shifts=%d swaps=%d", c.Passes, c.Comparisons, c.Shifts, c.Swaps)
}

type multiTracer []Tracer

// Tee fans every event out to each of ts in order.
func Tee(ts ...Tracer) Tracer {
	return multiTracer(ts)
}

func (m multiTracer) Begin(i int, a IntArray) {
	for _, t := range m {
		t.Begin(i, a)
	}
}

func (m multiTracer) Compare(j int, a IntArray) {
	for _, t := range m {
		t.Compare(j, a)
	}
}

func (m multiTracer) Shift(from, to int, a IntArray) {
	for _, t := range m {
		t.Shift(from, to, a)
	}
}

func (m multiTracer) Swap(i, j int, a IntArray) {
	for _, t := range m {
		t.Swap(i, j, a)
	}
}

func (m multiTracer) Place(at, key int, a IntArray) {
	for _, t := range m {
		t.Place(at, key, a)
	}
}
