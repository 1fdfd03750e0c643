package stats

import (
	"errors"
	"fmt"
	"slices"

	moremath "github.com/aclements/go-moremath/stats"
	"github.com/sbezverk/sortbench/timing"
)

var (
	// ErrEmptyCorpus is returned when statistics are requested over zero samples
	ErrEmptyCorpus = errors.New("no samples")
	// ErrSingleSample is returned when a sample standard deviation is requested over one sample
	ErrSingleSample = errors.New("standard deviation is undefined for a single sample")
)

// StdDev is a standard deviation which may be undefined. The zero value is undefined.
type StdDev struct {
	value   float64
	defined bool
}

// Defined returns a defined standard deviation of v.
func Defined(v float64) StdDev {
	return StdDev{value: v, defined: true}
}

// Undefined returns a standard deviation with no value.
func Undefined() StdDev {
	return StdDev{}
}

// Value returns the deviation and whether it is defined.
func (s StdDev) Value() (float64, bool) {
	return s.value, s.defined
}

func (s StdDev) IsDefined() bool {
	return s.defined
}

func (s StdDev) String() string {
	if !s.defined {
		return "undefined"
	}
	return fmt.Sprintf("%g", s.value)
}

// Group holds the pooled durations, in seconds, of all lists sharing one length.
type Group struct {
	Length  int
	Samples []float64
	Mean    float64
	// StdDev is 0 when the group has a single sample.
	StdDev float64
}

// Report is the aggregated timing of one algorithm over a corpus.
type Report struct {
	Count  int
	Mean   float64
	StdDev StdDev
	// Groups are ordered by ascending Length.
	Groups []Group
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyCorpus
	}
	return moremath.Mean(xs), nil
}

// SampleStdDev returns the sample (n-1) standard deviation of xs.
func SampleStdDev(xs []float64) (float64, error) {
	switch len(xs) {
	case 0:
		return 0, ErrEmptyCorpus
	case 1:
		return 0, ErrSingleSample
	}
	return moremath.StdDev(xs), nil
}

// Aggregate computes the global and per length statistics of ms, durations
// are expressed in seconds. Aggregating zero measurements is an error; a single
// measurement gives an undefined global standard deviation.
func Aggregate(ms []timing.Measurement) (*Report, error) {
	if len(ms) == 0 {
		return nil, ErrEmptyCorpus
	}
	all := make([]float64, len(ms))
	byLength := make(map[int][]float64)
	for i, m := range ms {
		s := m.Seconds()
		all[i] = s
		byLength[m.Length] = append(byLength[m.Length], s)
	}
	r := &Report{
		Count: len(ms),
	}
	var err error
	if r.Mean, err = Mean(all); err != nil {
		return nil, err
	}
	switch sd, err := SampleStdDev(all); {
	case err == nil:
		r.StdDev = Defined(sd)
	case errors.Is(err, ErrSingleSample):
		r.StdDev = Undefined()
	default:
		return nil, err
	}

	lengths := make([]int, 0, len(byLength))
	for l := range byLength {
		lengths = append(lengths, l)
	}
	slices.Sort(lengths)
	r.Groups = make([]Group, 0, len(lengths))
	for _, l := range lengths {
		g, err := group(l, byLength[l])
		if err != nil {
			return nil, fmt.Errorf("length %d: %w", l, err)
		}
		r.Groups = append(r.Groups, g)
	}

	return r, nil
}

func group(length int, samples []float64) (Group, error) {
	g := Group{
		Length:  length,
		Samples: samples,
	}
	var err error
	if g.Mean, err = Mean(samples); err != nil {
		return Group{}, err
	}
	if len(samples) < 2 {
		// Nothing to spread over, plot a zero error bar.
		return g, nil
	}
	if g.StdDev, err = SampleStdDev(samples); err != nil {
		return Group{}, err
	}

	return g, nil
}
