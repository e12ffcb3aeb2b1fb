// Package server wraps http.Server with a context-driven lifecycle:
// cancel the context passed to Start and the server drains connections
// within the configured shutdown timeout.
package server
