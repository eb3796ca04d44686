package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// runConfig is the YAML file accepted by "run --config". Flags given on
// the command line take precedence over file values.
type runConfig struct {
	Maze        string   `yaml:"maze"`
	Algorithms  []string `yaml:"algorithms"`
	Format      string   `yaml:"format"`
	Out         string   `yaml:"out"`
	CellSize    int      `yaml:"cell_size"`
	Heatmap     bool     `yaml:"heatmap"`
	MetricsFile string   `yaml:"metrics_file"`
	LogLevel    string   `yaml:"log_level"`
}

// Output formats of the run command.
const (
	formatAuto     = "auto"
	formatTable    = "table"
	formatMarkdown = "markdown"
	formatPretty   = "pretty"
	formatJSON     = "json"
	formatYAML     = "yaml"
)

var errInvalidFormat = errors.New("unknown output format")

func defaultRunConfig() runConfig {
	return runConfig{Format: formatAuto}
}

// loadRunConfig decodes path over the defaults, rejecting unknown keys.
func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, cfg.validate()
}

func (c runConfig) validate() error {
	switch c.Format {
	case formatAuto, formatTable, formatMarkdown, formatPretty, formatJSON, formatYAML:
	default:
		return fmt.Errorf("%w: %q", errInvalidFormat, c.Format)
	}
	if c.CellSize < 0 {
		return fmt.Errorf("cell size must not be negative, got %d", c.CellSize)
	}

	return nil
}
