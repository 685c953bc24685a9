package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// tunablesConfig mirrors radix's three tunables plus the benchmark's own
// knobs, loadable from a TOML file so a benchmark run doesn't need a long
// flag list every time.
type tunablesConfig struct {
	InsertionThreshold int `toml:"insertionThreshold"`
	MergeThreshold     int `toml:"mergeThreshold"`
	ThreadWorkload     int `toml:"threadWorkload"`

	ArraySize  int    `toml:"arraySize"`
	Iterations int    `toml:"iterations"`
	FromIndex  int    `toml:"fromIndex"`
	ToIndex    int    `toml:"toIndex"`
	Generator  string `toml:"generator"`
}

func loadConfig(path string) (*tunablesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := &tunablesConfig{
		InsertionThreshold: 13,
		MergeThreshold:     4001,
		ThreadWorkload:     65536,
		ArraySize:          1_000_000,
		Iterations:         1,
		Generator:          "uniform",
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
