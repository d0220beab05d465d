// Package idgen wraps the UUID generator so that request, unit and event
// identifiers can be stubbed in tests. Callers treat identifiers as opaque
// strings.
package idgen
