package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/sbezverk/sortbench"
	"github.com/sbezverk/sortbench/config"
	"github.com/sbezverk/sortbench/sink/grpcsink"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	configFile  string
	corpus      string
	algorithms  []string
	chart       string
	offline     string
	sinkAddr    string
	metricsFile string
}

// resolve loads the config file, if any, and lets explicitly set flags override it.
func (o *options) resolve(fs *pflag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if o.configFile != "" {
		c, err := config.Load(o.configFile)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	if fs.Changed("corpus") {
		cfg.Corpus = o.corpus
	}
	if fs.Changed("algorithms") {
		cfg.Algorithms = o.algorithms
	}
	if fs.Changed("chart") {
		cfg.Chart = o.chart
	}
	if fs.Changed("offline") {
		cfg.Offline = o.offline
	}
	if fs.Changed("sink-addr") {
		cfg.SinkAddr = o.sinkAddr
	}
	if fs.Changed("metrics-file") {
		cfg.MetricsFile = o.metricsFile
	}

	return cfg, cfg.Validate()
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:           "sortbench",
		Short:         "Benchmark selection sort and merge sort against a baseline sort",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return runBenchmark(cmd.Context(), cfg, cmd.OutOrStdout(), sortbench.SetupSignalHandler())
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&o.configFile, "config", "", "YAML configuration file")
	fs.StringVar(&o.corpus, "corpus", "input.txt", "file with one whitespace separated list of integers per line")
	fs.StringSliceVar(&o.algorithms, "algorithms", []string{"simple", "merge", "baseline"}, "algorithms to run, in order")
	fs.StringVar(&o.chart, "chart", "", "write error bar chart data to this file")
	fs.StringVar(&o.offline, "offline", "", "write report records to this file")
	fs.StringVar(&o.sinkAddr, "sink-addr", "", "publish reports to the collector at host:port")
	fs.StringVar(&o.metricsFile, "metrics-file", "", "write prometheus metrics to this textfile")
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	cmd.AddCommand(newInspectCmd(), newCollectCmd())

	return cmd
}

func newInspectCmd() *cobra.Command {
	var chart string
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the reports stored in an offline report file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspect(args[0], chart, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&chart, "chart", "", "write error bar chart data to this file")

	return cmd
}

func newCollectCmd() *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Receive and print reports published by remote benchmark runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sortbench.HostAddrValidator(listen); err != nil {
				return fmt.Errorf("invalid listen address: %w", err)
			}
			c, err := grpcsink.New(listen)
			if err != nil {
				return err
			}
			defer c.Stop()
			return collect(c, cmd.OutOrStdout(), sortbench.SetupSignalHandler())
		},
	}
	cmd.Flags().StringVar(&listen, "listen", ":50051", "address to listen on")

	return cmd
}

func main() {
	// glog refuses to log before flag.Parse, cobra sets the real values later.
	flag.CommandLine.Parse([]string{})
	err := newRootCmd().ExecuteContext(context.Background())
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %+v\n", err)
		os.Exit(1)
	}
}
