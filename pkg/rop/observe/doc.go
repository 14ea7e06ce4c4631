// Package observe provides core.Observer implementations: Tracing marks the
// current OpenTelemetry span failed, Logging writes to a zap logger and
// Multi combines several. Install one with core.WithObserver.
package observe
