package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"onemax/internal/ga"
)

// Config is the root configuration structure
type Config struct {
	Seed    int64     `yaml:"seed"` // negative = seed from time
	GA      GAConfig  `yaml:"ga"`
	Logging LogConfig `yaml:"logging"`
}

// GAConfig defines the four genetic algorithm parameters
type GAConfig struct {
	GenomeLength   int `yaml:"genome_length"`
	Population     int `yaml:"population"`
	Bottleneck     int `yaml:"bottleneck"`
	MaxGenerations int `yaml:"max_generations"`
}

// LogConfig defines reporting output paths; empty disables the file
type LogConfig struct {
	CSVPath  string `yaml:"csv_path"`
	JSONPath string `yaml:"json_path"`
}

// Load reads a YAML config file and returns a Config. Unmarshalling
// happens on top of the defaults, so omitted keys keep their default
// while an explicit zero (a valid max_generations, say) survives.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration, for runs without a file.
func Default() *Config {
	return &Config{
		Seed: 1337,
		GA: GAConfig{
			GenomeLength:   16,
			Population:     40,
			Bottleneck:     20,
			MaxGenerations: 10,
		},
	}
}

// Params converts the GA section to run parameters; ga.Params.Validate
// is the authority on their constraints.
func (c *Config) Params() ga.Params {
	return ga.Params{
		GenomeLength:   c.GA.GenomeLength,
		PopulationSize: c.GA.Population,
		Bottleneck:     c.GA.Bottleneck,
		MaxGenerations: c.GA.MaxGenerations,
	}
}
