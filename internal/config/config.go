package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/alexiusacademia/govdrop/internal/nbr"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// DefaultEnvFile is read when present; its absence is not an error
const DefaultEnvFile = ".env"

// Config holds the defaults used by the commands
type Config struct {
	Voltage  float64      // Default nominal voltage (V)
	MaxDrop  float64      // Default allowed drop (%)
	Company  string       // Memorial header
	Locale   language.Tag // Number formatting of reports
	LogLevel logrus.Level
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Voltage:  220,
		MaxDrop:  nbr.DefaultMaxDropPercentage,
		Company:  "NIOBIO LABS",
		Locale:   language.BrazilianPortuguese,
		LogLevel: logrus.WarnLevel,
	}
}

// Load reads envFile into the process environment (existing variables win)
// and builds the configuration from GOVDROP_* variables.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if !(errors.Is(err, fs.ErrNotExist) && envFile == DefaultEnvFile) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg := Default()
	var err error

	if cfg.Voltage, err = getEnvFloat("GOVDROP_VOLTAGE", cfg.Voltage); err != nil {
		return Config{}, err
	}
	if cfg.MaxDrop, err = getEnvFloat("GOVDROP_MAX_DROP", cfg.MaxDrop); err != nil {
		return Config{}, err
	}
	cfg.Company = getEnv("GOVDROP_COMPANY", cfg.Company)

	if v := os.Getenv("GOVDROP_LOCALE"); v != "" {
		tag, err := language.Parse(v)
		if err != nil {
			return Config{}, fmt.Errorf("GOVDROP_LOCALE: %w", err)
		}
		cfg.Locale = tag
	}

	if v := os.Getenv("GOVDROP_LOG_LEVEL"); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("GOVDROP_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
