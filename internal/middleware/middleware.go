// Package middleware contains the Echo middleware stack: CORS, request
// logging, panic recovery, secure headers, request ID correlation,
// request-scoped logger enrichment, New Relic tracing, and the global
// error handler that converts every error into the API's JSON shape.
package middleware
