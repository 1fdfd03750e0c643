package report

import (
	"fmt"
	"io"

	"github.com/sbezverk/sortbench/sort"
	"github.com/sbezverk/sortbench/stats"
)

// Point is one error bar of a chart: mean and standard deviation, in seconds,
// of the lists of one length.
type Point struct {
	Length int
	Mean   float64
	StdDev float64
}

// Series is everything a report sink needs to know about one algorithm run.
type Series struct {
	Name   string
	Label  string
	Marker string
	Count  int
	Mean   float64
	StdDev stats.StdDev
	Points []Point
}

// Key identifies a series by its algorithm name.
func (s *Series) Key() string {
	return s.Name
}

var (
	markers = map[string]string{
		sort.Simple:   "o",
		sort.Merge:    "s",
		sort.Baseline: "*",
	}
	headings = map[string]string{
		sort.Simple:   "Using simple sorting algorithm:",
		sort.Merge:    "Using divide-and-conquer sorting algorithm, merge-sort:",
		sort.Baseline: "Using baseline sort:",
	}
)

// NewSeries builds the series of algorithm alg from its aggregated report.
func NewSeries(alg sort.Algorithm, r *stats.Report) *Series {
	s := &Series{
		Name:   alg.Name,
		Label:  alg.Label,
		Marker: markers[alg.Name],
		Count:  r.Count,
		Mean:   r.Mean,
		StdDev: r.StdDev,
		Points: make([]Point, len(r.Groups)),
	}
	if s.Marker == "" {
		s.Marker = "."
	}
	for i, g := range r.Groups {
		s.Points[i] = Point{
			Length: g.Length,
			Mean:   g.Mean,
			StdDev: g.StdDev,
		}
	}

	return s
}

// FormatSeconds renders v in scientific notation with three significant digits.
func FormatSeconds(v float64) string {
	return fmt.Sprintf("%.2e", v)
}

// FormatStdDev is FormatSeconds for a deviation which may be undefined.
func FormatStdDev(sd stats.StdDev) string {
	v, ok := sd.Value()
	if !ok {
		return "undefined"
	}
	return FormatSeconds(v)
}

func heading(s *Series) string {
	if h, ok := headings[s.Name]; ok {
		return h
	}
	return "Using " + s.Label + ":"
}

// WriteSummary prints the global statistics of s.
func WriteSummary(w io.Writer, s *Series) error {
	_, err := fmt.Fprintf(w,
		"%s\nAverage elapsed time to sort %d lists in increasing order is: %s s\nStandard deviation of elapsed time to sort %d lists in increasing order is: %s s\n\n",
		heading(s), s.Count, FormatSeconds(s.Mean), s.Count, FormatStdDev(s.StdDev))

	return err
}

// WriteChart writes every series as an error bar data block: a comment line
// with label and marker followed by "length mean stddev" rows. Blocks are
// separated by two blank lines so gnuplot can address them by index.
func WriteChart(w io.Writer, series []*Series) error {
	for i, s := range series {
		if i > 0 {
			if _, err := io.WriteString(w, "\n\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "# %s %s\n", s.Label, s.Marker); err != nil {
			return err
		}
		for _, p := range s.Points {
			if _, err := fmt.Fprintf(w, "%d %s %s\n", p.Length, FormatSeconds(p.Mean), FormatSeconds(p.StdDev)); err != nil {
				return err
			}
		}
	}

	return nil
}
