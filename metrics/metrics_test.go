package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	r := NewRecorder()
	r.Observe("merge", 3, time.Microsecond)
	r.Observe("merge", 5, 2*time.Microsecond)
	r.Observe("simple", 2, time.Millisecond)

	require.Equal(t, 2, testutil.CollectAndCount(r.durations))
	n, err := testutil.GatherAndCount(r.Registry(), "sortbench_sort_duration_seconds", "sortbench_sorted_elements_total")
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, 8.0, testutil.ToFloat64(r.elements.WithLabelValues("merge")))
	require.Equal(t, 2.0, testutil.ToFloat64(r.elements.WithLabelValues("simple")))
}

func TestWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.Observe("baseline", 4, time.Microsecond)
	fn := filepath.Join(t.TempDir(), "sortbench.prom")
	require.NoError(t, r.WriteTextfile(fn))

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(b), `sortbench_sort_duration_seconds_count{algorithm="baseline"} 1`))
}
