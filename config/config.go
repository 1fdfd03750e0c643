package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sbezverk/sortbench"
	"github.com/sbezverk/sortbench/sort"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrNoAlgorithms     = errors.New("no algorithms selected")
)

// Config describes one benchmark run. Empty paths disable the matching output.
type Config struct {
	Corpus      string   `yaml:"corpus"`
	Algorithms  []string `yaml:"algorithms"`
	Chart       string   `yaml:"chart"`
	Offline     string   `yaml:"offline"`
	SinkAddr    string   `yaml:"sink_addr"`
	MetricsFile string   `yaml:"metrics_file"`
}

// Default returns the configuration of a run over input.txt with all algorithms.
func Default() *Config {
	c := &Config{
		Corpus: "input.txt",
	}
	for _, a := range sort.Algorithms() {
		c.Algorithms = append(c.Algorithms, a.Name)
	}

	return c
}

// Load reads the YAML file fn on top of the defaults.
func Load(fn string) (*Config, error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s with error: %w", fn, err)
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s with error: %w", fn, err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", fn, err)
	}

	return c, nil
}

func (c *Config) Validate() error {
	if c.Corpus == "" {
		return fmt.Errorf("corpus file is not specified")
	}
	if len(c.Algorithms) == 0 {
		return ErrNoAlgorithms
	}
	for _, n := range c.Algorithms {
		if _, ok := sort.Lookup(n); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownAlgorithm, n)
		}
	}
	if c.SinkAddr != "" {
		if err := sortbench.HostAddrValidator(c.SinkAddr); err != nil {
			return fmt.Errorf("invalid sink address: %w", err)
		}
	}

	return nil
}

// SelectedAlgorithms resolves Algorithms into their descriptors, in the configured order.
func (c *Config) SelectedAlgorithms() ([]sort.Algorithm, error) {
	l := make([]sort.Algorithm, 0, len(c.Algorithms))
	for _, n := range c.Algorithms {
		a, ok := sort.Lookup(n)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, n)
		}
		l = append(l, a)
	}

	return l, nil
}
