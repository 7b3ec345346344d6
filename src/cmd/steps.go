package cmd

import (
	"fmt"

	"loopsort/src/seqio"
	"loopsort/src/sort"
	"loopsort/src/utils"
)

// stepTracer records one node per pass, with a child per operation.
type stepTracer struct {
	root *utils.StepNode
	pass *utils.StepNode
}

func newStepTracer(name string, a sort.IntArray) *stepTracer {
	return &stepTracer{root: utils.NewStepTree(fmt.Sprintf("%s: %s", name, seqio.Format(a)))}
}

func (t *stepTracer) Begin(i int, a sort.IntArray) {
	t.pass = t.root.Addf("i=%d a[i]=%d | %s", i, a[i], seqio.Format(a))
}

func (t *stepTracer) Compare(j int, a sort.IntArray) {
	t.pass.Addf("compare a[%d]=%d", j, a[j])
}

func (t *stepTracer) Shift(from, to int, a sort.IntArray) {
	t.pass.Addf("copy a[%d] to a[%d] | %s", from, to, seqio.Format(a))
}

func (t *stepTracer) Swap(i, j int, a sort.IntArray) {
	t.pass.Addf("swap a[%d], a[%d] | %s", i, j, seqio.Format(a))
}

func (t *stepTracer) Place(at, key int, a sort.IntArray) {
	t.pass.Addf("place key %d at a[%d] | %s", key, at, seqio.Format(a))
}
