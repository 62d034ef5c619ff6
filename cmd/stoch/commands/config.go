package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig is the YAML-loadable configuration of one sampling run.
// Command-line flags override any value set here.
type RunConfig struct {
	Model     string  `yaml:"model"`
	Steps     int     `yaml:"steps"`
	BurnIn    int     `yaml:"burnin"`
	Thin      int     `yaml:"thin"`
	Mutation  float64 `yaml:"mutation"`  // per-site mutation probability p
	Restart   float64 `yaml:"restart"`   // irreducible restart probability q
	Particles int     `yaml:"particles"` // LWIS draw count
	Seed      uint64  `yaml:"seed"`
	Bins      int     `yaml:"bins"`
	Out       string  `yaml:"out"`
}

// DefaultRunConfig returns the defaults shared by all subcommands.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Model:     "triangle",
		Steps:     100000,
		BurnIn:    1000,
		Thin:      10,
		Mutation:  0.1,
		Restart:   0,
		Particles: 1000,
		Seed:      42,
		Bins:      40,
	}
}

// LoadRunConfig reads cfgPath (if nonempty) over the defaults.
func LoadRunConfig(cfgPath string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if cfgPath == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return cfg, fmt.Errorf("reading run config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing run config %s: %w", cfgPath, err)
	}
	return cfg, nil
}
