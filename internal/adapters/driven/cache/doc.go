// Package cache provides driven.ResultCache implementations for navigation
// lookups: an in-process map, a Redis-backed cache shared between processes,
// a no-op cache and a Prometheus-instrumented decorator.
//
// Entries are opaque bytes. Groups namespace keys; navigation uses the
// "counts" group for both adjacent and boundary results.
package cache
