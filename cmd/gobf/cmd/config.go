package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jcorbin/gobf"
)

// fileConfig mirrors the YAML file accepted via --config.
type fileConfig struct {
	TapeLength int `yaml:"tape_length"`
	CellSize   int `yaml:"cell_size"`
}

// loadConfig reads path into a generator/evaluator Config; an empty path
// means canonical defaults. Zero or missing fields keep their defaults.
func loadConfig(path string) (gobf.Config, error) {
	cfg := gobf.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("bad config %q: %w", path, err)
	}

	if fc.TapeLength > 0 {
		cfg.TapeLength = fc.TapeLength
	}
	if fc.CellSize > 0 {
		cfg.CellSize = fc.CellSize
	}
	return cfg, nil
}
