package application

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/klaroapp/appconfig/internal/host"
	"github.com/klaroapp/appconfig/internal/settings"
)

// Format selects the rendering of the resolved settings record.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// App encapsulates the settings provider and logger.
type App struct {
	provider *settings.Provider
	logger   *zap.Logger
}

// New initializes the application with the given host source and overrides.
func New(source host.Source, overrides *settings.CLIOverrides, logger *zap.Logger) *App {
	return &App{
		provider: settings.New(source, overrides),
		logger:   logger,
	}
}

// Resolve returns the process-wide settings record, or the fatal startup
// error when the host name cannot be determined or an override is invalid.
func (a *App) Resolve() (settings.Record, error) {
	record, err := a.provider.Get()
	if err != nil {
		a.logger.Error("settings resolution failed", zap.Error(err))
		return settings.Record{}, err
	}

	a.logger.Debug("settings resolved",
		zap.String("api_base_url", record.APIBaseURL),
		zap.String("version", record.Version),
		zap.Bool("production", record.IsProduction),
	)
	return record, nil
}

// Render resolves the settings record and writes it to w in the requested
// format.
func (a *App) Render(w io.Writer, format Format) error {
	record, err := a.Resolve()
	if err != nil {
		return err
	}

	rendered := renderRecord(record)

	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rendered); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
	case FormatYAML:
		data, err := yaml.Marshal(rendered)
		if err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("write YAML: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	return nil
}

// renderedRecord is the client-facing shape of the settings record. JSON
// keys match the contract the mobile/web client consumes; timeouts are
// integer milliseconds on the wire.
type renderedRecord struct {
	APIBaseURL      string           `json:"apiBaseUrl" yaml:"api_base_url"`
	Version         string           `json:"version" yaml:"version"`
	IsProduction    bool             `json:"isProduction" yaml:"production"`
	EnableAnalytics bool             `json:"enableAnalytics" yaml:"enable_analytics"`
	Offline         renderedOffline  `json:"offline" yaml:"offline"`
	DefaultLanguage string           `json:"defaultLanguage" yaml:"default_language"`
	Features        map[string]bool  `json:"features" yaml:"features"`
	APITimeouts     map[string]int64 `json:"apiTimeouts" yaml:"api_timeouts"`
}

type renderedOffline struct {
	Enabled      bool `json:"enabled" yaml:"enabled"`
	StorageLimit int  `json:"storageLimit" yaml:"storage_limit"`
}

func renderRecord(record settings.Record) renderedRecord {
	timeouts := make(map[string]int64, len(record.APITimeouts))
	for operation, d := range record.APITimeouts {
		timeouts[operation] = d.Milliseconds()
	}

	return renderedRecord{
		APIBaseURL:      record.APIBaseURL,
		Version:         record.Version,
		IsProduction:    record.IsProduction,
		EnableAnalytics: record.EnableAnalytics,
		Offline: renderedOffline{
			Enabled:      record.Offline.Enabled,
			StorageLimit: record.Offline.StorageLimit,
		},
		DefaultLanguage: record.DefaultLanguage,
		Features:        record.Features,
		APITimeouts:     timeouts,
	}
}
