// Package cache provides Redis-backed read-through caching for hot
// catalog data.
//
// All operations degrade gracefully: a Redis failure is logged and the
// caller falls through to the database, it is never surfaced to clients.
// Every method is safe to call on a nil cache, which is how the service
// layer behaves when Redis is not configured.
package cache
