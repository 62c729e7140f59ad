package config

import (
	"fmt"
	"time"
)

// ObservabilityConfig groups configuration related to telemetry and runtime
// visibility: structured logging and the optional New Relic APM integration.
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs/traces/APM dashboards.
	// It is forced in Load, not configurable.
	ServiceName string `koanf:"service_name"`

	// Environment splits telemetry by environment (production, local, ...).
	Environment string `koanf:"environment"`

	Logging  LoggingConfig  `koanf:"logging"`
	NewRelic NewRelicConfig `koanf:"new_relic"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level"`

	// Format selects the output format ("json" or "console").
	Format string `koanf:"format"`

	// SlowQueryThreshold is the duration beyond which database queries are
	// flagged as slow. Configured as a duration string like "100ms".
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// NewRelicConfig holds configuration for New Relic APM and tracing.
// An empty LicenseKey means "not configured"; every integration degrades to a
// no-op in that case.
type NewRelicConfig struct {
	LicenseKey                string `koanf:"license_key"`
	AppLogForwardingEnabled   bool   `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool   `koanf:"distributed_tracing_enabled"`
	DebugLogging              bool   `koanf:"debug_logging"`
}

// DefaultObservabilityConfig provides a safe set of defaults, used when
// Config.Observability is not provided via the environment.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: "ec-api",
		Environment: "local",
		Logging: LoggingConfig{
			Level:              "info",
			Format:             "json",
			SlowQueryThreshold: 100 * time.Millisecond,
		},
		NewRelic: NewRelicConfig{},
	}
}

// Validate checks internal consistency of the observability block.
func (o *ObservabilityConfig) Validate() error {
	switch o.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q", o.Logging.Level)
	}

	switch o.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid logging format %q", o.Logging.Format)
	}

	if o.NewRelic.AppLogForwardingEnabled && o.NewRelic.LicenseKey == "" {
		return fmt.Errorf("new relic log forwarding enabled without a license key")
	}

	return nil
}
