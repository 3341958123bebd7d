package config

import (
	_ "embed"
)

//go:embed defaults/happyweed.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Generator: GeneratorConfig{
			DefaultSet: 1,
			GridHeight: 12,
			StepCap:    135,
			TickBudget: 3,
		},
		Render: RenderConfig{
			RawCodes: false,
			Color:    true,
		},
		Storage: StorageConfig{
			Path: "",
		},
		Server: ServerConfig{
			Host:        "localhost",
			Port:        2223,
			HostKeyPath: ".ssh/happyweed_host_key",
		},
	}
}

// DefaultYAML returns the embedded default configuration file, for
// writing out a starting config.
func DefaultYAML() []byte {
	return defaultConfigYAML
}
