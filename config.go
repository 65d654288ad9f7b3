package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds the run parameters shared by both formal systems.
type config struct {
	// Goal is the theorem whose derivation halts the MU-puzzle.
	Goal string `yaml:"goal"`
	// Count stops the prime enumerator after this many primes;
	// 0 means run until externally interrupted.
	Count int `yaml:"count"`
	// Trace enables debug-level derivation traces on stderr.
	Trace bool `yaml:"trace"`
	// TraceFile additionally writes derivations as JSON to this path.
	TraceFile string `yaml:"trace_file"`
}

func defaultConfig() config {
	return config{Goal: muGoal}
}

// loadConfig reads the YAML file at path; an empty path yields defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
