package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/klaroapp/appconfig/internal/application"
	"github.com/klaroapp/appconfig/internal/host"
	"github.com/klaroapp/appconfig/internal/settings"
)

// TestResolutionFlow exercises the full path an operator hits: a .env file
// seeds the environment, a YAML file and CLI flags layer on top, and the
// rendered JSON is what the client application would consume.
func TestResolutionFlow(t *testing.T) {
	dir := t.TempDir()

	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("ENABLE_ANALYTICS=true\nOFFLINE_STORAGE_LIMIT=200\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Unsetenv("ENABLE_ANALYTICS")
		_ = os.Unsetenv("OFFLINE_STORAGE_LIMIT")
	})

	configFile := filepath.Join(dir, "overrides.yml")
	yamlContent := `
version: 1.4.0
offline:
  storage_limit: 350
features:
  voice_commands: false
api_timeouts:
  pattern_detection: 60s
`
	if err := os.WriteFile(configFile, []byte(yamlContent), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	language := "en"
	overrides := &settings.CLIOverrides{
		ConfigFile:      configFile,
		EnvFile:         envFile,
		DefaultLanguage: &language,
	}

	app := application.New(host.Static("klaro.example.com"), overrides, zaptest.NewLogger(t))

	var buf bytes.Buffer
	if err := app.Render(&buf, application.FormatJSON); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	var payload struct {
		APIBaseURL      string           `json:"apiBaseUrl"`
		Version         string           `json:"version"`
		EnableAnalytics bool             `json:"enableAnalytics"`
		DefaultLanguage string           `json:"defaultLanguage"`
		Features        map[string]bool  `json:"features"`
		APITimeouts     map[string]int64 `json:"apiTimeouts"`
		Offline         struct {
			Enabled      bool `json:"enabled"`
			StorageLimit int  `json:"storageLimit"`
		} `json:"offline"`
	}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if payload.APIBaseURL != "https://klaro.example.com" {
		t.Fatalf("unexpected apiBaseUrl: %s", payload.APIBaseURL)
	}
	if payload.Version != "1.4.0" {
		t.Fatalf("expected YAML version override, got %s", payload.Version)
	}
	// .env seeded value survives because YAML does not touch analytics.
	if !payload.EnableAnalytics {
		t.Fatalf("expected analytics enabled via env file")
	}
	// YAML beats the env-file storage limit; the flag beats everything for
	// language.
	if payload.Offline.StorageLimit != 350 {
		t.Fatalf("expected YAML storage limit 350, got %d", payload.Offline.StorageLimit)
	}
	if payload.DefaultLanguage != "en" {
		t.Fatalf("expected flag language override, got %s", payload.DefaultLanguage)
	}
	if payload.Features["voice_commands"] {
		t.Fatalf("expected voice_commands disabled by YAML override")
	}
	if payload.APITimeouts["pattern_detection"] != 60000 {
		t.Fatalf("expected pattern_detection timeout 60000ms, got %d", payload.APITimeouts["pattern_detection"])
	}
	if payload.APITimeouts["default"] != 10000 {
		t.Fatalf("expected default timeout untouched, got %d", payload.APITimeouts["default"])
	}
}

func TestResolutionFailsFastWithoutHost(t *testing.T) {
	t.Setenv("APP_HOST", "")

	app := application.New(host.FromEnv("APP_HOST"), nil, zaptest.NewLogger(t))

	var buf bytes.Buffer
	err := app.Render(&buf, application.FormatJSON)
	if err == nil {
		t.Fatalf("expected resolution to fail without a host")
	}
	if buf.Len() != 0 {
		t.Fatalf("no partial configuration may be served, got %q", buf.String())
	}
}
