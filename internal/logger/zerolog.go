package logger

import (
	"io"
	"os"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/mwaters/ec-api/internal/config"
)

// New builds the application's main structured logger from config.
//
// Format "console" produces human-friendly output for local development;
// anything else produces JSON. When New Relic log forwarding is enabled the
// output writer is wrapped so log lines carry trace linking metadata.
func New(cfg *config.Config, service *LoggerService) *zerolog.Logger {
	level := parseLevel(cfg.Observability.Logging.Level)

	var out io.Writer = os.Stdout
	if cfg.Observability.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	if app := service.GetApplication(); app != nil && cfg.Observability.NewRelic.AppLogForwardingEnabled {
		w := zerologWriter.New(out, app)
		out = &w
	}

	l := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()

	return &l
}

// WithTraceContext returns a copy of l carrying the transaction's trace and
// span ids, so log lines can be correlated with distributed traces.
func WithTraceContext(l zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return l
	}

	md := txn.GetTraceMetadata()
	builder := l.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}
	return builder.Logger()
}

func parseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}
