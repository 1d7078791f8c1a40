// Package config loads the announcer daemon configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Phrase is a weighted announcement candidate.
type Phrase struct {
	Text   string `yaml:"text"`
	Weight int    `yaml:"weight"`
}

// Config drives the announcer daemon.
type Config struct {
	CatalogURL       string   `yaml:"catalog_url"`
	Language         string   `yaml:"language"`
	Voice            string   `yaml:"voice"`
	Schedule         string   `yaml:"schedule"`
	Timezone         string   `yaml:"timezone"`
	DataDir          string   `yaml:"data_dir"`
	SoundDir         string   `yaml:"sound_dir"`
	RetentionMinutes int      `yaml:"retention_minutes"`
	Phrases          []Phrase `yaml:"phrases"`
}

// Load reads and parses the config file, applying defaults for anything
// left unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Schedule == "" {
		c.Schedule = "0 * * * *"
	}
	if c.Timezone == "" {
		c.Timezone = "Europe/Berlin"
	}
	if c.DataDir == "" {
		c.DataDir = "./announce-data"
	}
	if c.SoundDir == "" {
		c.SoundDir = "./sound-data"
	}
	if c.RetentionMinutes <= 0 {
		c.RetentionMinutes = 60
	}
}

// RetentionWindow is how long a phrase or sound stays out of the random
// rotation after it was played.
func (c *Config) RetentionWindow() time.Duration {
	return time.Duration(c.RetentionMinutes) * time.Minute
}
