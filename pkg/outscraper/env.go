package outscraper

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFromEnv builds a config from environment variables.
func ConfigFromEnv() *Config {
	cfg := &Config{}
	cfg.APIKey = strings.TrimSpace(os.Getenv("OUTSCRAPER_API_KEY"))
	cfg.BaseURL = strings.TrimSpace(os.Getenv("OUTSCRAPER_BASE_URL"))
	return cfg.WithDefaults()
}

// ApplyEnvDefaults fills empty config fields from environment variables.
func ApplyEnvDefaults(cfg *Config) *Config {
	if cfg == nil {
		return ConfigFromEnv()
	}
	current := cfg.WithDefaults()
	envCfg := ConfigFromEnv()

	if strings.TrimSpace(current.APIKey) == "" {
		current.APIKey = envCfg.APIKey
	}
	if current.BaseURL == DefaultBaseURL && envCfg.BaseURL != DefaultBaseURL {
		current.BaseURL = envCfg.BaseURL
	}
	return current
}

// LoadConfigFile reads a yaml config file. Fields left empty in the file
// keep their defaults and may still be overridden from the environment via
// ApplyEnvDefaults.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg.WithDefaults(), nil
}
