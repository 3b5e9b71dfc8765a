package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the config location
const EnvPath = "LOX_CONFIG"

// Config holds the driver settings read from a YAML file
type Config struct {
	Prompt   string `yaml:"prompt"`
	Color    bool   `yaml:"color"`
	LogLevel string `yaml:"log_level"`
	Echo     bool   `yaml:"echo"`
}

// Default returns the settings used when no file is present
func Default() *Config {
	return &Config{
		Prompt:   "> ",
		Color:    true,
		LogLevel: "warn",
		Echo:     true,
	}
}

// DefaultPath returns $LOX_CONFIG when set, else ~/.loxrc.yml
func DefaultPath() string {
	if path := os.Getenv(EnvPath); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".loxrc.yml")
}

// Load reads the config at path, falling back to DefaultPath when path is
// empty. A missing or empty file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Level parses LogLevel
func (c *Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel, fmt.Errorf("config: log_level: %w", err)
	}
	return level, nil
}
