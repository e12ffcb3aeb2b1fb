// Package auth implements the client-side session manager for the site core.
//
// A session is a bearer credential plus a serialized user, both persisted to
// client storage. Validity is judged solely by decoding the credential's
// payload and checking its expiry claim; the signature segment is never
// verified. That trust model is reproduced deliberately for compatibility
// with the consuming front-end and is not suitable for real authorization
// without a server-side signature check.
//
// Two login strategies exist, selected by the settings mock-mode flag: a live
// POST to the backend's /auth endpoint, and a mock comparison against one
// configured credential pair that mints a self-issued 24h token. Both resolve
// through the same asynchronous future so callers cannot tell them apart.
package auth
