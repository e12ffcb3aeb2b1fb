// Package token decodes and mints three-segment bearer credentials.
//
// Unlike a real JWT library, Decode never verifies the signature segment.
// Validity is judged solely by decoding the payload and comparing its expiry
// claim against the wall clock. This reproduces the trust model of the
// consuming client; do not rely on it for server-side authorization.
package token
