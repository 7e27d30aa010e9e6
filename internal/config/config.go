package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTissue   = "Unknown"
	DefaultTarget   = 50.0
	DefaultKp       = 10.0
	DefaultKi       = 0.1
	DefaultKd       = 1.0
	DefaultDuration = 5.0
)

type Config struct {
	Tissue    string      `yaml:"tissue"`
	Target    float64     `yaml:"target"`
	Breathing bool        `yaml:"breathing"`
	Duration  float64     `yaml:"duration"`
	Seed      int64       `yaml:"seed"`
	Gains     GainsConfig `yaml:"gains"`
}

type GainsConfig struct {
	Kp float64 `yaml:"kp"`
	Ki float64 `yaml:"ki"`
	Kd float64 `yaml:"kd"`
}

func DefaultConfig() *Config {
	return &Config{
		Tissue:   DefaultTissue,
		Target:   DefaultTarget,
		Duration: DefaultDuration,
		Gains: GainsConfig{
			Kp: DefaultKp,
			Ki: DefaultKi,
			Kd: DefaultKd,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
