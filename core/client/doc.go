// Package client is the JSON HTTP client for the external site backend.
//
// The base URL is resolved per request through a function, so switching the
// configured backend in settings applies to the next call without rebuilding
// services. A token source injects a bearer Authorization header for
// authenticated endpoints.
//
// Response envelopes differ between backend versions ({"data": [...]},
// {"properties": [...]}, bare arrays); Collection and Single normalize them
// into plain values.
package client
