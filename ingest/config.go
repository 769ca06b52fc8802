package ingest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the explicit configuration of the ingestion pipeline. It is
// passed as a value into the pipeline entry point; there is no ambient
// configuration state in the core.
type Config struct {
	LedgerFile  string `yaml:"ledger_file"`
	TrackerFile string `yaml:"tracker_file"`
	Currency    string `yaml:"currency"`
	Verbose     bool   `yaml:"verbose"`
}

// DefaultConfig returns the configuration used when no file and no
// environment overrides are present.
func DefaultConfig() Config {
	return Config{
		LedgerFile:  "trades.jsonl",
		TrackerFile: ".tradebook-seen",
		Currency:    "USD",
	}
}

// LoadConfig loads the configuration from a YAML file, then applies
// environment overrides (TRADEBOOK_LEDGER, TRADEBOOK_TRACKER,
// TRADEBOOK_CURRENCY, TRADEBOOK_VERBOSE). A missing file is not an error:
// defaults apply. A .env file, if present, is loaded first.
func LoadConfig(path string) (Config, error) {
	// Ignore a missing .env: it is optional by definition.
	_ = godotenv.Load()

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// keep defaults
	case err != nil:
		return cfg, fmt.Errorf("cannot read config %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("cannot parse config %q: %w", path, err)
		}
	}

	if v := os.Getenv("TRADEBOOK_LEDGER"); v != "" {
		cfg.LedgerFile = v
	}
	if v := os.Getenv("TRADEBOOK_TRACKER"); v != "" {
		cfg.TrackerFile = v
	}
	if v := os.Getenv("TRADEBOOK_CURRENCY"); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv("TRADEBOOK_VERBOSE"); v != "" {
		cfg.Verbose = v == "1" || v == "true"
	}
	return cfg, nil
}

// Logger builds the pipeline logger for this configuration.
func (c Config) Logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if c.Verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
