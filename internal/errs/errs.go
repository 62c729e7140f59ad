// Package errs defines the custom error types returned to API clients.
//
// Its purpose is to create specific error structures
// (e.g. FieldErrors for payload validation or HTTPError for API responses)
// to ensure the client receives meaningful, actionable, and consistent
// error messages.
package errs
