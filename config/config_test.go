package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "sortbench.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(body), 0o644))
	return fn
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	require.Equal(t, "input.txt", c.Corpus)
	require.Equal(t, []string{"simple", "merge", "baseline"}, c.Algorithms)
}

func TestLoad(t *testing.T) {
	fn := writeConfig(t, `
corpus: lists.txt
algorithms: [merge, baseline]
chart: chart.dat
offline: reports.bin
sink_addr: 127.0.0.1:50051
metrics_file: sortbench.prom
`)
	c, err := Load(fn)
	require.NoError(t, err)
	require.Equal(t, &Config{
		Corpus:      "lists.txt",
		Algorithms:  []string{"merge", "baseline"},
		Chart:       "chart.dat",
		Offline:     "reports.bin",
		SinkAddr:    "127.0.0.1:50051",
		MetricsFile: "sortbench.prom",
	}, c)

	algs, err := c.SelectedAlgorithms()
	require.NoError(t, err)
	require.Len(t, algs, 2)
	require.Equal(t, "merge", algs[0].Name)
}

func TestLoadKeepsDefaults(t *testing.T) {
	c, err := Load(writeConfig(t, "chart: chart.dat\n"))
	require.NoError(t, err)
	require.Equal(t, "input.txt", c.Corpus)
	require.Len(t, c.Algorithms, 3)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		err  error
	}{
		{name: "unknown algorithm", cfg: Config{Corpus: "a", Algorithms: []string{"bogo"}}, err: ErrUnknownAlgorithm},
		{name: "no algorithms", cfg: Config{Corpus: "a"}, err: ErrNoAlgorithms},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.cfg.Validate(), tt.err)
		})
	}
	bad := Config{Corpus: "a", Algorithms: []string{"merge"}, SinkAddr: "no-port"}
	require.Error(t, bad.Validate())
	require.Error(t, (&Config{Algorithms: []string{"merge"}}).Validate())
}

func TestLoadInvalid(t *testing.T) {
	c, err := Load(writeConfig(t, "algorithms: [bogo]\n"))
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	require.Nil(t, c)

	c, err = Load(writeConfig(t, "sink_addr: collector\n"))
	require.Error(t, err)
	require.Nil(t, c)

	_, err = Load(writeConfig(t, "algorithms: {\n"))
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
