package offline

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/sbezverk/sortbench/report"
	"github.com/sbezverk/sortbench/stats"
	"github.com/stretchr/testify/require"
)

func TestPublishRead(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "reports.bin")
	s, err := New(fn)
	require.NoError(t, err)

	in := []*report.Series{
		{Name: "simple", Label: "Simple sort", Marker: "o", Count: 1, Mean: 0.25, StdDev: stats.Undefined(),
			Points: []report.Point{{Length: 4, Mean: 0.25}}},
		{Name: "merge", Label: "Merge sort", Marker: "s", Count: 2, Mean: 0.5, StdDev: stats.Defined(0.1),
			Points: []report.Point{{Length: 1, Mean: 0.4}, {Length: 2, Mean: 0.6}}},
	}
	for _, series := range in {
		require.NoError(t, s.Publish(context.Background(), series))
	}
	require.NoError(t, s.Close())

	out, err := Read(fn)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		require.Equal(t, in[i].Name, out[i].Name)
		require.Equal(t, in[i].StdDev, out[i].StdDev)
		require.Equal(t, in[i].Points, out[i].Points)
	}
}

func TestPublishCanceled(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "reports.bin"))
	require.NoError(t, err)
	defer s.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.Publish(ctx, &report.Series{Name: "merge"}), context.Canceled)
}

func TestDecodeTruncated(t *testing.T) {
	out, err := Decode(bytes.NewReader(nil))
	require.NoError(t, err)
	require.Empty(t, out)

	_, err = Decode(bytes.NewReader([]byte{0, 0, 0, 8, 1, 2}))
	require.Error(t, err)

	_, err = Decode(bytes.NewReader([]byte{0, 0}))
	require.Error(t, err)
}

func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.bin"))
	require.Error(t, err)
}
