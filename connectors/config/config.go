package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults reproduce the original hard-coded pipeline values, so the tool is
// fully functional with no config file at all.
const (
	DefaultURL        = "https://raw.githubusercontent.com/berkeleydb/berkeley-db-price/main/sample_data.csv"
	DefaultDataDir    = "./data"
	DefaultReportsDir = "./reports"
)

// Config represents the structure of config.yml used by the tool.
type Config struct {
	Source struct {
		URL   string `yaml:"url"`
		Token string `yaml:"token"`
	} `yaml:"source"`
	Dirs struct {
		Data    string `yaml:"data"`
		Reports string `yaml:"reports"`
	} `yaml:"dirs"`
}

// Load parses the YAML configuration file at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	slog.Info(fmt.Sprintf("Loaded config: %s", path))
	return &c, nil
}

// Resolve returns the effective configuration: the file named by CONFIG_PATH
// (default ./config.yml) when it exists, with every missing value filled
// from the defaults.
func Resolve() *Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config.yml"
	}
	c := &Config{}
	if _, err := os.Stat(path); err == nil {
		if loaded, err := Load(path); err == nil {
			c = loaded
		} else {
			slog.Warn("config.load.error", "path", path, "error", err)
		}
	}
	if c.Source.URL == "" {
		c.Source.URL = DefaultURL
	}
	if c.Dirs.Data == "" {
		c.Dirs.Data = DefaultDataDir
	}
	if c.Dirs.Reports == "" {
		c.Dirs.Reports = DefaultReportsDir
	}
	return c
}
