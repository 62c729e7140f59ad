// Package handler contains the HTTP endpoint handlers.
//
// Each handler binds and validates the request payload through the
// shared typed pipeline in base.go, delegates to the service layer, and
// writes the JSON response. Handlers never contain business rules.
package handler
