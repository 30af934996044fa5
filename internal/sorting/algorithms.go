package sorting

// Each routine returns false as soon as the consumer stops the sequence.
// Swap steps in selectionSort and partition keep the highlight of the
// comparison that preceded them.

func bubbleSort(s *stepper) bool {
	v := s.st.Values
	n := len(v)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			s.st.Compare(j, j+1)
			op := OpCompare
			if v[j] > v[j+1] {
				s.st.Swap(j, j+1)
				op |= OpSwap
			}
			if !s.emit(op) {
				return false
			}
		}
	}
	return true
}

func selectionSort(s *stepper) bool {
	v := s.st.Values
	n := len(v)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			s.st.Compare(i, j)
			if !s.emit(OpCompare) {
				return false
			}
			if v[j] < v[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			s.st.Swap(i, minIdx)
			if !s.emit(OpSwap) {
				return false
			}
		}
	}
	return true
}

func insertionSort(s *stepper) bool {
	v := s.st.Values
	for i := 1; i < len(v); i++ {
		key := v[i]
		j := i - 1
		for j >= 0 {
			s.st.Compare(j, j+1)
			if !s.emit(OpCompare) {
				v[j+1] = key
				return false
			}
			if v[j] <= key {
				break
			}
			s.st.Write(j+1, v[j])
			ok := s.emit(OpWrite)
			j--
			if !ok {
				v[j+1] = key
				return false
			}
		}
		// Final placement is not counted.
		v[j+1] = key
	}
	return true
}

type span struct {
	low, high int
}

// quickSort processes the left partition before the right one, the same
// order a recursive implementation visits them in.
func quickSort(s *stepper, low, high int) bool {
	stack := []span{{low, high}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if r.low >= r.high {
			continue
		}
		p, ok := partition(s, r.low, r.high)
		if !ok {
			return false
		}
		stack = append(stack, span{p + 1, r.high}, span{r.low, p - 1})
	}
	return true
}

// partition is Lomuto's scheme with v[high] as the pivot.
func partition(s *stepper, low, high int) (int, bool) {
	v := s.st.Values
	pivot := v[high]
	i := low - 1
	for j := low; j < high; j++ {
		s.st.Compare(j, high)
		if !s.emit(OpCompare) {
			return 0, false
		}
		if v[j] < pivot {
			i++
			s.st.Swap(i, j)
			if !s.emit(OpSwap) {
				return 0, false
			}
		}
	}
	s.st.Swap(i+1, high)
	if !s.emit(OpSwap) {
		return 0, false
	}
	return i + 1, true
}

func mergeSort(s *stepper, left, right int) bool {
	if left >= right {
		return true
	}
	mid := left + (right-left)/2
	return mergeSort(s, left, mid) &&
		mergeSort(s, mid+1, right) &&
		merge(s, left, mid, right)
}

// merge counts every element written into [left, right] as a swap, whether
// it was chosen by a comparison or copied from a leftover tail.
func merge(s *stepper, left, mid, right int) bool {
	v := s.st.Values
	lo := append([]int(nil), v[left:mid+1]...)
	hi := append([]int(nil), v[mid+1:right+1]...)

	i, j, k := 0, 0, left
	// On abort the untouched tails are copied back so no value is lost.
	abort := func() bool {
		k += copy(v[k:], lo[i:])
		copy(v[k:], hi[j:])
		return false
	}

	for i < len(lo) && j < len(hi) {
		s.st.Compare(k, k)
		if lo[i] <= hi[j] {
			s.st.Write(k, lo[i])
			i++
		} else {
			s.st.Write(k, hi[j])
			j++
		}
		k++
		if !s.emit(OpCompare | OpWrite) {
			return abort()
		}
	}
	for i < len(lo) {
		s.st.Mark(k, k)
		s.st.Write(k, lo[i])
		i++
		k++
		if !s.emit(OpWrite) {
			return abort()
		}
	}
	for j < len(hi) {
		s.st.Mark(k, k)
		s.st.Write(k, hi[j])
		j++
		k++
		if !s.emit(OpWrite) {
			return abort()
		}
	}
	return true
}
