package sort

// insertion keeps a[0..i-1] sorted and holding exactly the elements it
// started with. Ties stop the scan, so equal keys keep their order.
func insertion(a IntArray, t Tracer) {
	for i := 1; i < len(a); i++ {
		t.Begin(i, a)
		key := a[i]
		j := i - 1
		for j >= 0 {
			t.Compare(j, a)
			if a[j] <= key {
				break
			}
			a[j+1] = a[j]
			t.Shift(j, j+1, a)
			j--
		}
		a[j+1] = key
		t.Place(j+1, key, a)
	}
}

// reverseInsertion is the mirror of insertion: a[i+1..n-1] is the sorted
// suffix and smaller elements move left to make room for the key. Shifting
// on a[j] > key instead would build the suffix descending.
func reverseInsertion(a IntArray, t Tracer) {
	n := len(a)
	for i := n - 2; i >= 0; i-- {
		t.Begin(i, a)
		key := a[i]
		j := i + 1
		for j < n {
			t.Compare(j, a)
			if a[j] >= key {
				break
			}
			a[j-1] = a[j]
			t.Shift(j, j-1, a)
			j++
		}
		a[j-1] = key
		t.Place(j-1, key, a)
	}
}
