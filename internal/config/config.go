package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"pocketledger/internal/logger"
)

type Config struct {
	DB       string        `toml:"db"`
	Addr     string        `toml:"addr"`
	Currency string        `toml:"currency"`
	Logger   logger.Config `toml:"logger"`
}

const (
	defaultDBFile   = "pocketledger.db"
	defaultAddr     = "localhost:8080"
	defaultCurrency = "INR"
)

// Parse loads configuration from the TOML file at path, then applies
// POCKETLEDGER_* environment overrides and defaults. A missing file is not an
// error; the environment and defaults carry the whole configuration.
func Parse(path string) (*Config, error) {
	conf := &Config{}

	bytes, err := os.ReadFile(path)
	if err == nil {
		if err = toml.Unmarshal(bytes, conf); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	conf.parseEnv()
	conf.applyDefaults()

	return conf, nil
}

func (c *Config) parseEnv() {
	if db := os.Getenv("POCKETLEDGER_DB"); db != "" {
		c.DB = db
	}

	if addr := os.Getenv("POCKETLEDGER_ADDR"); addr != "" {
		c.Addr = addr
	}

	if currency := os.Getenv("POCKETLEDGER_CURRENCY"); currency != "" {
		c.Currency = currency
	}

	if level := os.Getenv("POCKETLEDGER_LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv("POCKETLEDGER_LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}

	if output := os.Getenv("POCKETLEDGER_LOG_OUTPUT"); output != "" {
		c.Logger.Output = output
	}
}

func (c *Config) applyDefaults() {
	if c.DB == "" {
		c.DB = defaultDBFile
	}
	if c.Addr == "" {
		c.Addr = defaultAddr
	}
	if c.Currency == "" {
		c.Currency = defaultCurrency
	}
	if c.Logger.Level == "" {
		c.Logger.Level = logger.LevelInfo
	}
	if c.Logger.Format == "" {
		c.Logger.Format = logger.FormatText
	}
	if c.Logger.Output == "" {
		c.Logger.Output = "stdout"
	}
}
