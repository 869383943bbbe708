package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/klaroapp/appconfig/internal/application"
	"github.com/klaroapp/appconfig/internal/host"
	"github.com/klaroapp/appconfig/internal/logging"
	"github.com/klaroapp/appconfig/internal/settings"
)

func main() {
	kingpinApp := kingpin.New("appconfig", "Client settings resolver - derives and prints the settings record served to the application")
	hostFlag := kingpinApp.Flag("host", "Explicit host name used to derive the API base URL").String()
	hostEnvFlag := kingpinApp.Flag("host-env", "Environment variable to read the host name from").String()
	configFile := kingpinApp.Flag("config", "Path to YAML overrides file").String()
	envFile := kingpinApp.Flag("env-file", "Path to .env file seeding override variables").String()
	languageFlag := kingpinApp.Flag("language", "Default language served to clients").String()
	versionFlag := kingpinApp.Flag("app-version", "Application version advertised to clients").String()
	storageLimitFlag := kingpinApp.Flag("storage-limit", "Maximum records cached offline (set 0 to disable caching)").Default("-1").Int()
	format := kingpinApp.Flag("format", "Output format").Default("json").Enum("json", "yaml")
	checkOnly := kingpinApp.Flag("check", "Validate the resolved settings and exit").Bool()
	debug := kingpinApp.Flag("debug", "Enable debug logging on stderr").Bool()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	logger, err := logging.New(*debug)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	overrides := &settings.CLIOverrides{
		ConfigFile: *configFile,
		EnvFile:    *envFile,
	}

	if *languageFlag != "" {
		overrides.DefaultLanguage = languageFlag
	}

	if *versionFlag != "" {
		overrides.Version = versionFlag
	}

	if *storageLimitFlag >= 0 {
		overrides.StorageLimit = storageLimitFlag
	}

	app := application.New(hostSource(*hostFlag, *hostEnvFlag), overrides, logger)

	if *checkOnly {
		record, err := app.Resolve()
		if err != nil {
			logger.Fatal("settings check failed", zap.Error(err))
		}
		logger.Info("settings ok",
			zap.String("api_base_url", record.APIBaseURL),
			zap.String("version", record.Version),
		)
		return
	}

	if err := app.Render(os.Stdout, application.Format(*format)); err != nil {
		logger.Fatal("failed to resolve settings", zap.Error(err))
	}
}

// hostSource selects where the host name comes from: an explicit flag wins,
// then a named environment variable, then the operating system.
func hostSource(explicit, envKey string) host.Source {
	switch {
	case explicit != "":
		return host.Static(explicit)
	case envKey != "":
		return host.FromEnv(envKey)
	default:
		return host.FromOS()
	}
}
