package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"pokerdex-server/internal/util"
)

// Config provides configuration for Pokerdex
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Poker struct {
		SmallBlind         int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind           int `yaml:"bigBlind" envconfig:"big_blind"`
		StartingTokens     int `yaml:"startingTokens" envconfig:"starting_tokens"`
		MaxPlayersPerTable int `yaml:"maxPlayersPerTable" envconfig:"max_players_per_table"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is not an error;
// environment variables and defaults still apply.
func Load() error {
	config = Config{}

	configFile := util.Getenv("PDX_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("pdx", &config); err != nil {
		return err
	}

	applyDefaults(&config)

	config.loaded = true
	return nil
}

func applyDefaults(c *Config) {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if c.Poker.SmallBlind == 0 {
		c.Poker.SmallBlind = 10
	}

	if c.Poker.BigBlind == 0 {
		c.Poker.BigBlind = c.Poker.SmallBlind * 2
	}

	if c.Poker.StartingTokens == 0 {
		c.Poker.StartingTokens = 1000
	}

	if c.Poker.MaxPlayersPerTable == 0 {
		c.Poker.MaxPlayersPerTable = 10
	}
}
