package bench

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang/glog"
	"github.com/sbezverk/sortbench/corpus"
	"github.com/sbezverk/sortbench/sort"
	"github.com/sbezverk/sortbench/timing"
)

var (
	// ErrInvalidResult is returned when an algorithm output is not an ordered permutation of its input
	ErrInvalidResult = errors.New("invalid sort result")
)

// Observer is notified about every measurement as soon as it is recorded.
type Observer interface {
	Observe(algorithm string, length int, d time.Duration)
}

// Option configures Run.
type Option func(*runner)

// WithObserver registers o to receive every measurement.
func WithObserver(o Observer) Option {
	return func(r *runner) {
		r.observers = append(r.observers, o)
	}
}

type runner struct {
	observers []Observer
}

// Run sorts every list of c with alg, one after another, and returns the
// measurements in corpus order. Each list is copied before it is handed to
// the algorithm so the corpus is never touched. The first invalid result
// aborts the run.
func Run(alg sort.Algorithm, c corpus.Corpus, opts ...Option) ([]timing.Measurement, error) {
	r := &runner{}
	for _, o := range opts {
		o(r)
	}
	glog.Infof("running %s over %d lists", alg.Name, len(c))
	ms := make([]timing.Measurement, 0, len(c))
	for i, l := range c {
		in := slices.Clone(l)
		m := timing.Measure(alg.Sort, in)
		if err := Verify(l, m.Sorted); err != nil {
			return nil, fmt.Errorf("%s failed on list %d: %w", alg.Name, i, err)
		}
		glog.V(5).Infof("%s sorted list %d of length %d in %s", alg.Name, i, m.Length, m.Duration)
		for _, o := range r.observers {
			o.Observe(alg.Name, m.Length, m.Duration)
		}
		ms = append(ms, m)
	}

	return ms, nil
}

// Verify checks that sorted is in non-decreasing order and holds exactly the
// values of input.
func Verify(input, sorted []int) error {
	if len(input) != len(sorted) {
		return fmt.Errorf("%w: expected %d elements, got %d", ErrInvalidResult, len(input), len(sorted))
	}
	if !sort.IsSorted(sorted) {
		return fmt.Errorf("%w: result is not in non-decreasing order", ErrInvalidResult)
	}
	counts := make(map[int]int, len(input))
	for _, v := range input {
		counts[v]++
	}
	for _, v := range sorted {
		counts[v]--
		if counts[v] < 0 {
			return fmt.Errorf("%w: value %d is not present in the input", ErrInvalidResult, v)
		}
	}

	return nil
}
