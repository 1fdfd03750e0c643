package timing

import (
	"time"
)

// Measurement is the outcome of sorting one list once.
type Measurement struct {
	// Length is the element count of the input list.
	Length   int
	Sorted   []int
	Duration time.Duration
}

// Measure runs sortFn on list and records how long the call took. Only the
// call itself is timed; copying the input is left to the caller.
func Measure(sortFn func([]int) []int, list []int) Measurement {
	start := time.Now()
	sorted := sortFn(list)
	d := time.Since(start)
	if d < 0 {
		d = 0
	}

	return Measurement{
		Length:   len(list),
		Sorted:   sorted,
		Duration: d,
	}
}

// Seconds returns d as a floating point number of seconds.
func (m Measurement) Seconds() float64 {
	return m.Duration.Seconds()
}
