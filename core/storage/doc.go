// Package storage abstracts durable client-side key/value storage.
//
// Three implementations cover the execution contexts the site core runs in:
//
//   - Memory: process-lifetime storage, primarily for tests
//   - File: JSON-file persistence across restarts
//   - Null: no-op storage for non-client contexts (server-side rendering);
//     reads report absent and writes are silently discarded
//
// The interface deliberately has no error returns. Client storage either
// works or degrades; callers must keep functioning either way.
package storage
