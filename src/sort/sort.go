package sort

type IntArray []int

func (p IntArray) Len() int { return len(p) }

func (p IntArray) Less(i, j int) bool { return p[i] < p[j] }

func (p IntArray) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// Tracer observes the work an algorithm does. Compare reports that a[j] was
// compared against the pass's key or current minimum; Shift, Swap and Place
// are reported after the write, so a holds the new state.
type Tracer interface {
	Begin(i int, a IntArray)
	Compare(j int, a IntArray)
	Shift(from, to int, a IntArray)
	Swap(i, j int, a IntArray)
	Place(at, key int, a IntArray)
}

type nopTracer struct{}

func (nopTracer) Begin(int, IntArray)      {}
func (nopTracer) Compare(int, IntArray)    {}
func (nopTracer) Shift(int, int, IntArray) {}
func (nopTracer) Swap(int, int, IntArray)  {}
func (nopTracer) Place(int, int, IntArray) {}

// Algorithm is one named in-place sort.
type Algorithm struct {
	Name string
	run  func(a IntArray, t Tracer)
}

// Sort sorts a in place ascending. t may be nil.
func (alg *Algorithm) Sort(a IntArray, t Tracer) {
	if t == nil {
		t = nopTracer{}
	}
	alg.run(a, t)
}

var Algorithms = []*Algorithm{
	{Name: "insertion", run: insertion},
	{Name: "rev-insertion", run: reverseInsertion},
	{Name: "linear", run: linear},
}

func Lookup(name string) (*Algorithm, bool) {
	for _, alg := range Algorithms {
		if alg.Name == name {
			return alg, true
		}
	}
	return nil, false
}

// Insertion sorts a in place by inserting each key into the sorted prefix.
func Insertion(a IntArray) { insertion(a, nopTracer{}) }

// ReverseInsertion sorts a in place by inserting each key into the sorted
// suffix, walking from the back.
func ReverseInsertion(a IntArray) { reverseInsertion(a, nopTracer{}) }

// Linear sorts a in place by selection.
func Linear(a IntArray) { linear(a, nopTracer{}) }
