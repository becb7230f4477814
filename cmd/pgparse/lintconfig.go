package main

import (
	"os"

	"gopkg.in/yaml.v2"
)

// lintConfig is the shape of a .pgparse.yml rule-configuration file,
// adapted from squawk's own TOML config but rendered as YAML to match this
// module's dependency stack.
type lintConfig struct {
	Rules []string `yaml:"rules"`
}

func loadLintConfig(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg lintConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return cfg.Rules, nil
}
