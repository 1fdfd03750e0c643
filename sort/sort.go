package sort

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// Integer is the element type accepted by the benchmarked algorithms.
type Integer interface {
	constraints.Integer
}

// SelectionSortFunc returns a sorted copy of s. On every pass the remaining
// elements are scanned left to right and the first minimum found is moved to
// the output, so equal minima are taken lowest index first.
func SelectionSortFunc[E any](s []E, cmp func(a, b E) int) []E {
	if len(s) <= 1 {
		return slices.Clone(s)
	}
	work := slices.Clone(s)
	sorted := make([]E, 0, len(s))
	for len(work) > 0 {
		low := 0
		for j := 1; j < len(work); j++ {
			if cmp(work[j], work[low]) < 0 {
				low = j
			}
		}
		sorted = append(sorted, work[low])
		work = slices.Delete(work, low, low+1)
	}
	return sorted
}

// SelectionSort is SelectionSortFunc with the natural integer order.
func SelectionSort[T Integer](s []T) []T {
	return SelectionSortFunc(s, cmp.Compare[T])
}

// merge combines two sorted runs into a new slice. Ties go to left, and once
// either run is exhausted the rest of the other one is appended as is.
func merge[E any](left, right []E, cmp func(a, b E) int) []E {
	merged := make([]E, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) <= 0 {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
	}
	merged = append(merged, left[i:]...)
	return append(merged, right[j:]...)
}

// MergeSortFunc returns a sorted copy of s using top-down recursive merge
// sort. The left half gets len(s)/2 elements, the right half the remainder.
func MergeSortFunc[E any](s []E, cmp func(a, b E) int) []E {
	if len(s) <= 1 {
		return slices.Clone(s)
	}
	mid := len(s) / 2
	left := MergeSortFunc(s[:mid], cmp)
	right := MergeSortFunc(s[mid:], cmp)
	return merge(left, right, cmp)
}

// MergeSort is MergeSortFunc with the natural integer order.
func MergeSort[T Integer](s []T) []T {
	return MergeSortFunc(s, cmp.Compare[T])
}

// BaselineSort returns a sorted copy of s using the standard library sort.
func BaselineSort[T Integer](s []T) []T {
	sorted := slices.Clone(s)
	slices.Sort(sorted)
	return sorted
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[T Integer](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}
