package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/badbets/agent"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is read when no -config flag is given.
	DefaultConfigFile = ".badbets.yaml"
	// DefaultLedgerFile is used when no ledger file is configured.
	DefaultLedgerFile = "temp.json"
)

// Config is the content of the configuration file.
type Config struct {
	Name          string `yaml:"name"`        // owner of new ledgers
	LedgerFile    string `yaml:"ledger_file"` // ledger used by default
	Currency      string `yaml:"currency"`    // ISO code of stakes
	Model         string `yaml:"model"`       // Gemini model of bb assist
	StopOnDecline bool   `yaml:"stop_on_decline"`
}

// DefaultConfig returns the configuration used without a configuration file.
func DefaultConfig() Config {
	return Config{
		Currency: "USD",
		Model:    agent.DefaultModel,
	}
}

// LoadConfig reads the configuration file at path, on top of the defaults.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return cfg, nil
}

// LedgerPath returns the configured ledger file, or DefaultLedgerFile.
func (c Config) LedgerPath() string {
	if c.LedgerFile == "" {
		return DefaultLedgerFile
	}
	return c.LedgerFile
}

// loadEnv reads the .env file of the working directory, if any.
func loadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Debug(".env file not loaded")
	}
}
