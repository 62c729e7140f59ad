// Package logger configures the application's logging,
// monitoring, and observability.
//
// It uses zerolog for logging and optionally integrates with
// New Relic to instrument the codebase, forwarding logs,
// metrics, and traces for debugging.
package logger
