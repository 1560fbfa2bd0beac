package config

const (
	defaultServerPort = 8080
	defaultMaxN       = 93

	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 5
	defaultLogMaxAgeDays = 7
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "app",
		"app.title":       "App",
		"app.slug":        "app",
		"app.version":     "0.0.0",
		"app.environment": "local",

		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.request_timeout":  "30s",
		"server.shutdown_timeout": "10s",

		"log.level":                "info",
		"log.colorize":             "auto",
		"log.file.enabled":         false,
		"log.file.path":            "logs/app.log",
		"log.file.max_size":        defaultLogMaxSizeMB,
		"log.file.max_backups":     defaultLogMaxBackups,
		"log.file.max_age":         defaultLogMaxAgeDays,
		"log.file.compress":        false,
		"log.file.rotate_interval": "0s",
		"log.intercept.modules":    []string{"zap"},
		"log.intercept.ignored":    []string{},

		"telemetry.exporter": "none",
		"telemetry.endpoint": "",

		"compute.max_n": defaultMaxN,
	}
}
