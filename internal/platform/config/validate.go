package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their config key rather than the Go field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.validateTags(),
		c.Log.validate(),
		c.Telemetry.validate(),
	)
}

// validateTags runs the struct tag rules. Each failure is reported under its
// dotted config key, e.g. "server.port".
func (c *Config) validateTags() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, fmt.Errorf("%s failed %q validation%s, got %v",
			configKey(fe.Namespace()), fe.Tag(), paramSuffix(fe.Param()), fe.Value()))
	}
	return errors.Join(errs...)
}

// configKey strips the root type name from a validator namespace.
func configKey(namespace string) string {
	_, key, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return key
}

func paramSuffix(param string) string {
	if param == "" {
		return ""
	}
	return " (" + param + ")"
}

func (l *LogConfig) validate() error {
	if l.File.Enabled && strings.TrimSpace(l.File.Path) == "" {
		return errors.New("log.file.path must not be empty when log.file.enabled is true")
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	if t.Exporter == "otlp" && t.Endpoint == "" {
		return errors.New("telemetry.endpoint must not be empty when exporter is otlp")
	}
	return nil
}
