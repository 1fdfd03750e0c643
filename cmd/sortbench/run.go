package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/sbezverk/sortbench/bench"
	"github.com/sbezverk/sortbench/config"
	"github.com/sbezverk/sortbench/corpus"
	"github.com/sbezverk/sortbench/metrics"
	"github.com/sbezverk/sortbench/report"
	"github.com/sbezverk/sortbench/sink"
	"github.com/sbezverk/sortbench/sink/grpcsink"
	"github.com/sbezverk/sortbench/sink/offline"
	"github.com/sbezverk/sortbench/sort"
	"github.com/sbezverk/sortbench/stats"
	"github.com/sbezverk/sortbench/store"
)

const publishTimeout = 10 * time.Second

var errPassFailed = errors.New("benchmark failed")

// runAlgorithm is one full pass of alg over c, from sorting to the series.
func runAlgorithm(alg sort.Algorithm, c corpus.Corpus, o bench.Observer) (*report.Series, error) {
	ms, err := bench.Run(alg, c, bench.WithObserver(o))
	if err != nil {
		return nil, err
	}
	r, err := stats.Aggregate(ms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", alg.Name, err)
	}
	glog.Infof("%s sorted %d lists, mean %s s, stddev %s", alg.Name, r.Count, report.FormatSeconds(r.Mean), r.StdDev)

	return report.NewSeries(alg, r), nil
}

func openSinks(cfg *config.Config) ([]sink.Sink, error) {
	sinks := make([]sink.Sink, 0, 2)
	if cfg.Offline != "" {
		s, err := offline.New(cfg.Offline)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s)
	}
	if cfg.SinkAddr != "" {
		s, err := grpcsink.Dial(cfg.SinkAddr)
		if err != nil {
			closeSinks(sinks)
			return nil, err
		}
		sinks = append(sinks, s)
	}

	return sinks, nil
}

func closeSinks(sinks []sink.Sink) {
	for _, s := range sinks {
		if err := s.Close(); err != nil {
			glog.Errorf("failed to close report sink with error: %+v", err)
		}
	}
}

func publish(ctx context.Context, sinks []sink.Sink, s *report.Series) error {
	for _, sk := range sinks {
		pctx, cancel := context.WithTimeout(ctx, publishTimeout)
		err := sk.Publish(pctx, s)
		cancel()
		if err != nil {
			return err
		}
	}
	return nil
}

// runBenchmark runs every configured algorithm over the corpus, one after the
// other. A failing algorithm is logged and skipped so the others still run;
// the returned error lists all failures.
func runBenchmark(ctx context.Context, cfg *config.Config, out io.Writer, stop <-chan struct{}) error {
	algs, err := cfg.SelectedAlgorithms()
	if err != nil {
		return err
	}
	c, err := corpus.Load(cfg.Corpus)
	if err != nil {
		return err
	}
	if len(c) == 0 {
		return fmt.Errorf("corpus file %s: %w", cfg.Corpus, stats.ErrEmptyCorpus)
	}
	sinks, err := openSinks(cfg)
	if err != nil {
		return err
	}
	defer closeSinks(sinks)

	rec := metrics.NewRecorder()
	results := store.NewStore()
	defer results.Stop()

	failed := make([]string, 0)
passes:
	for _, alg := range algs {
		select {
		case <-stop:
			glog.Infof("interrupted, skipping remaining algorithms")
			break passes
		default:
		}
		s, err := runAlgorithm(alg, c, rec)
		if err != nil {
			glog.Errorf("algorithm %s failed with error: %+v", alg.Name, err)
			failed = append(failed, alg.Name)
			continue
		}
		if err := report.WriteSummary(out, s); err != nil {
			return err
		}
		if err := results.Add(s); err != nil {
			return fmt.Errorf("failed to store series %s with error: %w", s.Name, err)
		}
		if err := publish(ctx, sinks, s); err != nil {
			glog.Errorf("failed to publish series %s with error: %+v", s.Name, err)
			failed = append(failed, alg.Name)
		}
	}

	if cfg.Chart != "" {
		if err := writeChartFile(cfg.Chart, seriesOf(results.List())); err != nil {
			return err
		}
		glog.Infof("wrote chart data to %s", cfg.Chart)
	}
	if cfg.MetricsFile != "" {
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", errPassFailed, strings.Join(failed, ", "))
	}

	return nil
}

func seriesOf(items []store.Storable) []*report.Series {
	l := make([]*report.Series, 0, len(items))
	for _, i := range items {
		if s, ok := i.(*report.Series); ok {
			l = append(l, s)
		}
	}
	return l
}

func writeChartFile(fn string, series []*report.Series) error {
	f, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("failed to create chart file %s with error: %w", fn, err)
	}
	if err := report.WriteChart(f, series); err != nil {
		f.Close()
		return fmt.Errorf("failed to write chart file %s with error: %w", fn, err)
	}
	return f.Close()
}

// inspect prints the summaries stored in an offline report file and,
// optionally, writes their chart data.
func inspect(fn, chart string, out io.Writer) error {
	series, err := offline.Read(fn)
	if err != nil {
		return err
	}
	for _, s := range series {
		if err := report.WriteSummary(out, s); err != nil {
			return err
		}
	}
	if chart == "" {
		return nil
	}

	return writeChartFile(chart, series)
}

// collect prints every series received by c until stop is closed.
func collect(c grpcsink.Collector, out io.Writer, stop <-chan struct{}) error {
	for {
		select {
		case f := <-c.GetFeed():
			if f.ProducerAddr != nil {
				fmt.Fprintf(out, "From %s\n", f.ProducerAddr)
			}
			if err := report.WriteSummary(out, f.Series); err != nil {
				return err
			}
		case <-stop:
			return nil
		}
	}
}
