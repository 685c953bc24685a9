// Command parasortbench is the CLI benchmark harness for package radix: it
// generates test arrays, sorts them while timing the call, optionally
// verifies the result against a reference sort, and can render a histogram
// of the generated input. It is an external collaborator, not part of the
// redesigned core (see SPEC_FULL.md §1/§2).
package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/havrylenko/parasort/bench"
	"github.com/havrylenko/parasort/radix"
)

var log = logrus.New()

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "path to a TOML config file with tunables and run parameters",
	}
	arraySizeFlag = &cli.IntFlag{
		Name:  "size",
		Usage: "number of elements to generate",
		Value: 1_000_000,
	}
	iterationsFlag = &cli.IntFlag{
		Name:  "iterations",
		Usage: "number of generate+sort iterations to run",
		Value: 1,
	}
	generatorFlag = &cli.StringFlag{
		Name:  "generator",
		Usage: "input generator: uniform, topbyte, or linear",
		Value: "uniform",
	}
	insertionThresholdFlag = &cli.IntFlag{
		Name:  "insertion-threshold",
		Usage: "INSERTION_THR override",
	}
	mergeThresholdFlag = &cli.IntFlag{
		Name:  "merge-threshold",
		Usage: "MERGE_THR override",
	}
	threadWorkloadFlag = &cli.IntFlag{
		Name:  "thread-workload",
		Usage: "THREAD_WORKLOAD override",
	}
	outFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "output HTML file for the chart subcommand",
		Value: "histogram.html",
	}
)

func generate(cfg *tunablesConfig) []int32 {
	switch cfg.Generator {
	case "topbyte":
		return bench.GenerateTopByteSkewed(cfg.ArraySize)
	case "linear":
		return bench.GenerateLinearShuffled(cfg.ArraySize)
	default:
		return bench.GenerateUniform(cfg.ArraySize, 1<<30)
	}
}

func configFromFlags(c *cli.Context) (*tunablesConfig, error) {
	if path := c.String("config"); path != "" {
		return loadConfig(path)
	}
	return &tunablesConfig{
		InsertionThreshold: c.Int("insertion-threshold"),
		MergeThreshold:     c.Int("merge-threshold"),
		ThreadWorkload:     c.Int("thread-workload"),
		ArraySize:          c.Int("size"),
		Iterations:         c.Int("iterations"),
		Generator:          c.String("generator"),
	}, nil
}

func applyTunables(g *bench.Guard, cfg *tunablesConfig) {
	if cfg.InsertionThreshold > 0 {
		g.SetInsertionThreshold(cfg.InsertionThreshold)
	}
	if cfg.MergeThreshold > 0 {
		g.SetMergeThreshold(cfg.MergeThreshold)
	}
	if cfg.ThreadWorkload > 0 {
		g.SetThreadWorkload(cfg.ThreadWorkload)
	}
}

func runRun(c *cli.Context) error {
	cfg, err := configFromFlags(c)
	if err != nil {
		return err
	}
	g := &bench.Guard{}
	applyTunables(g, cfg)

	var total time.Duration
	for i := 0; i < cfg.Iterations; i++ {
		a := generate(cfg)
		start := time.Now()
		if err := g.Sort(a); err != nil {
			return fmt.Errorf("sort failed on iteration %d: %w", i, err)
		}
		elapsed := time.Since(start)
		total += elapsed
		log.WithFields(logrus.Fields{
			"iteration": i,
			"size":      len(a),
			"duration":  elapsed,
		}).Info("sort completed")
	}
	log.WithField("total", total).Info("run finished")
	return nil
}

func runVerify(c *cli.Context) error {
	cfg, err := configFromFlags(c)
	if err != nil {
		return err
	}
	g := &bench.Guard{}
	applyTunables(g, cfg)

	a := generate(cfg)
	want := make([]int32, len(a))
	copy(want, a)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	if err := g.Sort(a); err != nil {
		return fmt.Errorf("sort failed: %w", err)
	}
	if !radix.IsSorted(a, 0, len(a)) {
		return fmt.Errorf("verify failed: output is not sorted")
	}
	for i := range a {
		if a[i] != want[i] {
			return fmt.Errorf("verify failed: mismatch at index %d: got %d, want %d", i, a[i], want[i])
		}
	}
	log.WithField("size", len(a)).Info("verify: output agrees with reference sort")
	return nil
}

func runChart(c *cli.Context) error {
	cfg, err := configFromFlags(c)
	if err != nil {
		return err
	}
	a := generate(cfg)
	out := c.String("out")
	if err := plotTopByteHistogram(a, out); err != nil {
		return err
	}
	log.WithField("file", out).Info("histogram written")
	return nil
}

var sharedFlags = []cli.Flag{
	configFlag,
	arraySizeFlag,
	iterationsFlag,
	generatorFlag,
	insertionThresholdFlag,
	mergeThresholdFlag,
	threadWorkloadFlag,
}

func main() {
	app := &cli.App{
		Name:  "parasortbench",
		Usage: "benchmark and verify the parallel radix sort engine",
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "generate an array and time sorting it",
				Flags:  sharedFlags,
				Action: runRun,
			},
			{
				Name:   "verify",
				Usage:  "sort an array and check agreement with a reference sort",
				Flags:  sharedFlags,
				Action: runVerify,
			},
			{
				Name:   "chart",
				Usage:  "render an HTML histogram of a generated array's top-byte distribution",
				Flags:  append(append([]cli.Flag{}, sharedFlags...), outFlag),
				Action: runChart,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Error("parasortbench failed")
		os.Exit(1)
	}
}
