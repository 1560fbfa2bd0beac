package config_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/demo-bd/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Colorize != "always" {
		t.Errorf("Log.Colorize = %q, want \"always\"", cfg.Log.Colorize)
	}
	if cfg.Telemetry.Exporter != "stdout" {
		t.Errorf("Telemetry.Exporter = %q, want \"stdout\" for local", cfg.Telemetry.Exporter)
	}
	if cfg.App.Environment != "local" {
		t.Errorf("App.Environment = %q, want \"local\"", cfg.App.Environment)
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if !cfg.Log.File.Enabled {
		t.Error("Log.File.Enabled = false, want true for prod")
	}
	if cfg.Log.File.RotateInterval != 24*time.Hour {
		t.Errorf("Log.File.RotateInterval = %v, want 24h", cfg.Log.File.RotateInterval)
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.App.Slug != "demo-bd" {
		t.Errorf("App.Slug = %q, want \"demo-bd\" (from base)", cfg.App.Slug)
	}
	if cfg.Compute.MaxN != 93 {
		t.Errorf("Compute.MaxN = %d, want 93 (from base)", cfg.Compute.MaxN)
	}
	if !slices.Equal(cfg.Log.Intercept.Modules, []string{"zap"}) {
		t.Errorf("Log.Intercept.Modules = %v, want [zap] (from base)", cfg.Log.Intercept.Modules)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "app:\n  title: Minimal\n")
	writeFile(t, filepath.Join(dir, "min.yaml"), "{}\n")

	cfg, err := config.Load("min", config.WithConfigDir(dir), config.WithEnvDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.App.Name != "app" {
		t.Errorf("App.Name = %q, want default \"app\"", cfg.App.Name)
	}
	if cfg.App.Title != "Minimal" {
		t.Errorf("App.Title = %q, want \"Minimal\"", cfg.App.Title)
	}
	if cfg.Server.RequestTimeout != 30*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want 30s default", cfg.Server.RequestTimeout)
	}
	if cfg.Telemetry.Exporter != "none" {
		t.Errorf("Telemetry.Exporter = %q, want default \"none\"", cfg.Telemetry.Exporter)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_LOG_FILE_MAX_BACKUPS", "12")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.File.MaxBackups != 12 {
		t.Errorf("Log.File.MaxBackups = %d, want 12 (env override)", cfg.Log.File.MaxBackups)
	}
}

func TestLoad_EnvOverrideList(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_LOG_INTERCEPT_IGNORED", "noisy, chatty")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if !slices.Equal(cfg.Log.Intercept.Ignored, []string{"noisy", "chatty"}) {
		t.Errorf("Log.Intercept.Ignored = %v, want [noisy chatty]", cfg.Log.Intercept.Ignored)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "server:\n  port: 8080\n")
	writeFile(t, filepath.Join(dir, "dev.yaml"), "{}\n")
	writeFile(t, filepath.Join(dir, ".env.dev"), "APP_COMPUTE_MAX_N=40\n")
	writeFile(t, filepath.Join(dir, ".env"), "APP_COMPUTE_MAX_N=50\nAPP_SERVER_PORT=7070\n")

	// godotenv never overrides a set variable, so start from unset ones.
	// t.Setenv restores the previous state when the test ends.
	for _, key := range []string{"APP_COMPUTE_MAX_N", "APP_SERVER_PORT"} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unsetting %s: %v", key, err)
		}
	}

	cfg, err := config.Load("dev", config.WithConfigDir(dir), config.WithEnvDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Compute.MaxN != 40 {
		t.Errorf("Compute.MaxN = %d, want 40 (profile .env wins)", cfg.Compute.MaxN)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070 (from .env)", cfg.Server.Port)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_InvalidProfileName(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", `a\b`, "a/b"} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
	if !strings.Contains(err.Error(), "server.port") {
		t.Errorf("error = %q, want it to name server.port", err)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
	if !strings.Contains(err.Error(), "log.level") {
		t.Errorf("error = %q, want it to name log.level", err)
	}
}

func TestValidate_ComputeMaxNAboveLimit(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Compute.MaxN = 94

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for compute.max_n=94")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_FileEnabledWithoutPath(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.File.Enabled = true
	cfg.Log.File.Path = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for file output without path")
	}
}

func TestValidate_AggregatesErrors(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 70000
	cfg.Log.Colorize = "sometimes"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() returned nil, want errors")
	}
	for _, key := range []string{"server.port", "log.colorize"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error = %q, want it to name %s", err, key)
		}
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "demo-bd",
			Title:       "Demo BD",
			Slug:        "demo-bd",
			Version:     "1.0.0",
			Environment: "local",
		},
		Server: config.ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     120 * time.Second,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: config.LogConfig{
			Level:    "info",
			Colorize: "auto",
			File: config.LogFileConfig{
				Path:       "logs/demo-bd.log",
				MaxSize:    10,
				MaxBackups: 5,
				MaxAge:     7,
			},
		},
		Telemetry: config.TelemetryConfig{
			Exporter: "none",
		},
		Compute: config.ComputeConfig{
			MaxN: 93,
		},
	}
}
