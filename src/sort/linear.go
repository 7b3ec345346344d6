package sort

// linear is selection sort. a[0..i-1] holds the i smallest values in order.
//
// The minimum is updated on <=, so among equal minima the last one is picked.
// The swap happens even when it is a self-swap.
func linear(a IntArray, t Tracer) {
	n := a.Len()
	for i := 0; i < n-1; i++ {
		t.Begin(i, a)
		minIdx := i
		for j := i; j < n; j++ {
			t.Compare(j, a)
			if !a.Less(minIdx, j) {
				minIdx = j
			}
		}
		a.Swap(i, minIdx)
		t.Swap(i, minIdx, a)
	}
}
