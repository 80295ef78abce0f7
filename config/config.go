// Package config holds the settings shared by the wdl commands.
//
// Values come from, lowest first: the defaults below, an optional YAML file,
// WDL_* environment variables (a .env file is loaded by the command), and flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Dictionary is the word file, empty uses the built in list.
	Dictionary string `yaml:"dictionary"`
	MaxWords   int    `yaml:"max_words"`
	Workers    int    `yaml:"workers"`
	Progress   bool   `yaml:"progress"`
	LogLevel   string `yaml:"log_level"`
	Addr       string `yaml:"addr"`
}

func Default() Config {
	return Config{
		MaxWords: 50,
		LogLevel: "warn",
		Addr:     ":5175",
	}
}

// Load returns the defaults overlaid with the YAML file at path, if path is not empty.
// Keys missing from the file keep their default.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if c.MaxWords < 0 {
		return c, fmt.Errorf("%s: max_words must not be negative", path)
	}
	if c.Workers < 0 {
		return c, fmt.Errorf("%s: workers must not be negative", path)
	}
	return c, nil
}
