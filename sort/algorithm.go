package sort

// Algorithm describes one benchmarked sorting strategy.
type Algorithm struct {
	// Name is the short identifier used in configuration and as a store key.
	Name string
	// Label is the human readable name used in reports.
	Label string
	Sort  func([]int) []int
}

const (
	Simple   = "simple"
	Merge    = "merge"
	Baseline = "baseline"
)

var algorithms = []Algorithm{
	{Name: Simple, Label: "Simple sort", Sort: SelectionSort[int]},
	{Name: Merge, Label: "Merge sort", Sort: MergeSort[int]},
	{Name: Baseline, Label: "Baseline sort", Sort: BaselineSort[int]},
}

// Algorithms returns all built-in algorithms in report order.
func Algorithms() []Algorithm {
	l := make([]Algorithm, len(algorithms))
	copy(l, algorithms)
	return l
}

// Lookup returns the built-in algorithm registered under name.
func Lookup(name string) (Algorithm, bool) {
	for _, a := range algorithms {
		if a.Name == name {
			return a, true
		}
	}
	return Algorithm{}, false
}
