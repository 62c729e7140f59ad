package logger

import (
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/mwaters/ec-api/internal/config"
)

// LoggerService wraps the optional New Relic application instance.
//
// When New Relic is not configured (empty license key) the service still
// exists, but GetApplication returns nil and every caller degrades to a no-op.
type LoggerService struct {
	app *newrelic.Application
}

// NewLoggerService initializes New Relic from config.
//
// Returns a service with a nil application when no license key is configured;
// returns an error only when a key is present but the agent rejects it.
func NewLoggerService(cfg *config.Config) (*LoggerService, error) {
	if cfg.Observability == nil || cfg.Observability.NewRelic.LicenseKey == "" {
		return &LoggerService{}, nil
	}

	nr := cfg.Observability.NewRelic
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.Observability.ServiceName),
		newrelic.ConfigLicense(nr.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(nr.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(nr.DistributedTracingEnabled),
		func(c *newrelic.Config) {
			c.Labels = map[string]string{
				"environment": cfg.Observability.Environment,
			}
		},
	)
	if err != nil {
		return nil, fmt.Errorf("initializing new relic application: %w", err)
	}

	return &LoggerService{app: app}, nil
}

// GetApplication returns the New Relic application, or nil when APM is
// disabled.
func (s *LoggerService) GetApplication() *newrelic.Application {
	if s == nil {
		return nil
	}
	return s.app
}

// Shutdown flushes pending telemetry. Safe to call when APM is disabled.
func (s *LoggerService) Shutdown() {
	if s != nil && s.app != nil {
		s.app.Shutdown(5 * time.Second)
	}
}
