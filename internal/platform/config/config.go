// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	App       AppConfig       `koanf:"app"`
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Compute   ComputeConfig   `koanf:"compute"`
}

// AppConfig identifies the running service.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Title       string `koanf:"title"       validate:"required"`
	Slug        string `koanf:"slug"        validate:"required,lowercase"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"             validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=trace debug info warning warn error critical"`
	// Colorize is "auto", "always" or "never".
	Colorize  string          `koanf:"colorize" validate:"oneof=auto always never"`
	File      LogFileConfig   `koanf:"file"`
	Intercept InterceptConfig `koanf:"intercept"`
}

// LogFileConfig holds the rotating log file settings.
type LogFileConfig struct {
	Enabled        bool          `koanf:"enabled"`
	Path           string        `koanf:"path"`
	MaxSize        int           `koanf:"max_size"        validate:"gte=0"`
	MaxBackups     int           `koanf:"max_backups"     validate:"gte=0"`
	MaxAge         int           `koanf:"max_age"         validate:"gte=0"`
	Compress       bool          `koanf:"compress"`
	RotateInterval time.Duration `koanf:"rotate_interval" validate:"gte=0"`
}

// InterceptConfig selects the ecosystem loggers routed into the sink.
type InterceptConfig struct {
	Modules []string `koanf:"modules"`
	Ignored []string `koanf:"ignored"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Exporter string `koanf:"exporter" validate:"oneof=none stdout otlp"`
	Endpoint string `koanf:"endpoint"`
}

// ComputeConfig bounds the compute endpoint.
type ComputeConfig struct {
	MaxN int `koanf:"max_n" validate:"min=0,max=93"`
}
