package config

import (
	"os"
	"path/filepath"
	"testing"

	"pocketledger/internal/logger"
)

func TestParse(t *testing.T) {
	content := `
db = "tracker.db"
addr = "localhost:9000"
currency = "EUR"

[logger]
level = "debug"
format = "json"
output = "discard"
`
	path := filepath.Join(t.TempDir(), "pocketledger.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	conf, err := Parse(path)
	if err != nil {
		t.Fatalf("Failed to parse config: %v", err)
	}

	if conf.DB != "tracker.db" {
		t.Errorf("DB = %q, want tracker.db", conf.DB)
	}
	if conf.Addr != "localhost:9000" {
		t.Errorf("Addr = %q, want localhost:9000", conf.Addr)
	}
	if conf.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", conf.Currency)
	}
	if conf.Logger.Level != logger.LevelDebug || conf.Logger.Format != logger.FormatJSON {
		t.Errorf("Logger config = %+v", conf.Logger)
	}
}

func TestParseENV(t *testing.T) {
	t.Setenv("POCKETLEDGER_DB", "env.db")
	t.Setenv("POCKETLEDGER_ADDR", "localhost:7777")
	t.Setenv("POCKETLEDGER_LOG_LEVEL", "warn")
	t.Setenv("POCKETLEDGER_LOG_FORMAT", "json")
	t.Setenv("POCKETLEDGER_LOG_OUTPUT", "discard")

	conf, err := Parse("nonexistent.toml")
	if err != nil {
		t.Fatalf("Failed to parse config: %v", err)
	}

	if conf.DB != "env.db" {
		t.Errorf("DB = %q, want env.db", conf.DB)
	}
	if conf.Addr != "localhost:7777" {
		t.Errorf("Addr = %q, want localhost:7777", conf.Addr)
	}
	if conf.Logger.Level != logger.LevelWarn {
		t.Errorf("Logger.Level = %q, want warn", conf.Logger.Level)
	}
	if conf.Logger.Output != "discard" {
		t.Errorf("Logger.Output = %q, want discard", conf.Logger.Output)
	}
}

func TestParseEnvOverridesFile(t *testing.T) {
	content := `db = "file.db"`
	path := filepath.Join(t.TempDir(), "pocketledger.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("POCKETLEDGER_DB", "env.db")

	conf, err := Parse(path)
	if err != nil {
		t.Fatalf("Failed to parse config: %v", err)
	}

	if conf.DB != "env.db" {
		t.Errorf("DB = %q, environment should override the file", conf.DB)
	}
}

func TestParseDefaults(t *testing.T) {
	conf, err := Parse("nonexistent.toml")
	if err != nil {
		t.Fatalf("Failed to parse config: %v", err)
	}

	if conf.DB != defaultDBFile {
		t.Errorf("DB = %q, want default %q", conf.DB, defaultDBFile)
	}
	if conf.Addr != defaultAddr {
		t.Errorf("Addr = %q, want default %q", conf.Addr, defaultAddr)
	}
	if conf.Currency != defaultCurrency {
		t.Errorf("Currency = %q, want default %q", conf.Currency, defaultCurrency)
	}
	if conf.Logger.Level != logger.LevelInfo {
		t.Errorf("Logger.Level = %q, want info", conf.Logger.Level)
	}
}

func TestParseInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pocketledger.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := Parse(path); err == nil {
		t.Error("expected an error for invalid TOML")
	}
}
