package settings

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// CLIOverrides holds command-line flag overrides. Pointer fields distinguish
// "not set" from an explicit zero value.
type CLIOverrides struct {
	ConfigFile string
	EnvFile    string

	Version         *string
	DefaultLanguage *string
	Production      *bool
	EnableAnalytics *bool
	OfflineEnabled  *bool
	StorageLimit    *int
}

// fileOverrides represents the YAML overrides file structure. Timeouts are
// duration strings ("30s", "1500ms"); features merge key by key into the
// defaults rather than replacing the whole map.
type fileOverrides struct {
	Version         *string           `yaml:"version"`
	Production      *bool             `yaml:"production"`
	EnableAnalytics *bool             `yaml:"enable_analytics"`
	DefaultLanguage *string           `yaml:"default_language"`
	Offline         *offlineOverrides `yaml:"offline"`
	Features        map[string]bool   `yaml:"features"`
	APITimeouts     map[string]string `yaml:"api_timeouts"`
}

type offlineOverrides struct {
	Enabled      *bool `yaml:"enabled"`
	StorageLimit *int  `yaml:"storage_limit"`
}

// resolve builds the settings record from layered sources with precedence:
// CLI overrides > YAML file > environment variables > defaults. The API base
// URL is not part of resolution; the provider derives it from the host
// source afterwards.
func resolve(overrides *CLIOverrides) (Record, error) {
	record := defaultRecord()

	// Seed the environment from a .env file before reading override
	// variables, so file entries behave exactly like exported variables.
	if overrides != nil && overrides.EnvFile != "" {
		if err := godotenv.Load(overrides.EnvFile); err != nil {
			return Record{}, fmt.Errorf("load env file: %w", err)
		}
	}

	applyEnvOverrides(&record)

	if overrides != nil && overrides.ConfigFile != "" {
		fileCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Record{}, fmt.Errorf("load YAML overrides: %w", err)
		}
		if err := applyFileOverrides(&record, fileCfg); err != nil {
			return Record{}, err
		}
	}

	if overrides != nil {
		applyCLIOverrides(&record, overrides)
	}

	if err := validateRecord(record); err != nil {
		return Record{}, err
	}

	return record, nil
}

// loadFromFile loads overrides from a YAML file.
func loadFromFile(path string) (*fileOverrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fileCfg fileOverrides
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &fileCfg, nil
}

// applyFileOverrides applies YAML overrides to the record. Malformed values
// fail resolution outright: a silently-wrong configuration must never be
// served.
func applyFileOverrides(record *Record, fileCfg *fileOverrides) error {
	if fileCfg.Version != nil {
		record.Version = *fileCfg.Version
	}

	if fileCfg.Production != nil {
		record.IsProduction = *fileCfg.Production
	}

	if fileCfg.EnableAnalytics != nil {
		record.EnableAnalytics = *fileCfg.EnableAnalytics
	}

	if fileCfg.DefaultLanguage != nil {
		record.DefaultLanguage = *fileCfg.DefaultLanguage
	}

	if fileCfg.Offline != nil {
		if fileCfg.Offline.Enabled != nil {
			record.Offline.Enabled = *fileCfg.Offline.Enabled
		}
		if fileCfg.Offline.StorageLimit != nil {
			record.Offline.StorageLimit = *fileCfg.Offline.StorageLimit
		}
	}

	for name, enabled := range fileCfg.Features {
		record.Features[name] = enabled
	}

	for operation, raw := range fileCfg.APITimeouts {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("parse timeout for %q: %w", operation, err)
		}
		record.APITimeouts[operation] = d
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides. Unparsable
// values are ignored; explicit files and flags are validated strictly
// instead.
func applyEnvOverrides(record *Record) {
	if language := strings.TrimSpace(os.Getenv("DEFAULT_LANGUAGE")); language != "" {
		record.DefaultLanguage = language
	}

	if raw := strings.TrimSpace(os.Getenv("PRODUCTION")); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			record.IsProduction = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("ENABLE_ANALYTICS")); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			record.EnableAnalytics = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("OFFLINE_ENABLED")); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			record.Offline.Enabled = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("OFFLINE_STORAGE_LIMIT")); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value >= 0 {
			record.Offline.StorageLimit = value
		}
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(record *Record, overrides *CLIOverrides) {
	if overrides.Version != nil && *overrides.Version != "" {
		record.Version = *overrides.Version
	}

	if overrides.DefaultLanguage != nil && *overrides.DefaultLanguage != "" {
		record.DefaultLanguage = *overrides.DefaultLanguage
	}

	if overrides.Production != nil {
		record.IsProduction = *overrides.Production
	}

	if overrides.EnableAnalytics != nil {
		record.EnableAnalytics = *overrides.EnableAnalytics
	}

	if overrides.OfflineEnabled != nil {
		record.Offline.Enabled = *overrides.OfflineEnabled
	}

	if overrides.StorageLimit != nil && *overrides.StorageLimit >= 0 {
		record.Offline.StorageLimit = *overrides.StorageLimit
	}
}

// validateRecord validates the fully resolved record.
func validateRecord(record Record) error {
	if _, err := semver.StrictNewVersion(record.Version); err != nil {
		return fmt.Errorf("%w: version %q is not a semantic version", ErrInvalidRecord, record.Version)
	}
	if strings.TrimSpace(record.DefaultLanguage) == "" {
		return fmt.Errorf("%w: default language must not be empty", ErrInvalidRecord)
	}
	if record.Offline.StorageLimit < 0 {
		return fmt.Errorf("%w: offline storage limit must be >= 0", ErrInvalidRecord)
	}
	for operation, d := range record.APITimeouts {
		if d < 0 {
			return fmt.Errorf("%w: timeout for %q must be >= 0", ErrInvalidRecord, operation)
		}
	}
	return nil
}
