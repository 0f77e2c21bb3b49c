package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigPath = ".testkit.yml"

// fileConfig mirrors the command line flags in a YAML file. Pointer fields
// distinguish "not set" from a zero value, so flags keep working as
// overrides.
type fileConfig struct {
	DetailDepth *int     `yaml:"detailDepth"`
	NoColor     *bool    `yaml:"noColor"`
	ReportAll   *bool    `yaml:"reportAll"`
	Run         []string `yaml:"run"`
	Skip        []string `yaml:"skip"`
}

// loadFileConfig reads the config file at path. A missing file is only an
// error if the user asked for that path explicitly.
func loadFileConfig(path string, required bool) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return cfg, nil
}
