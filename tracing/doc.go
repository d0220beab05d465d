// Package tracing integrates OpenTelemetry with command stacks and approval
// chains. Spans are no-ops until Init or InitWithExporter installs a
// provider, so applications that do not need tracing pay nothing for it.
package tracing
