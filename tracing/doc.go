// Package tracing integrates OpenTelemetry with the re-encryption runner.
// Spans are no-ops until Init or InitWithExporter installs a provider, so
// applications which do not need tracing pay nothing for it.
package tracing
