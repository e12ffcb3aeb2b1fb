// Package resolver presents a uniform data-access contract over a resource
// collection, whether the data comes from the in-memory seed (mock mode) or
// a live HTTP backend.
//
// One generic Resolver replaces the per-resource duplication of the
// mock-vs-live switch, the response envelope normalization, and the
// last-known-good snapshot fallback. A Descriptor supplies the per-resource
// knowledge: identifiers, the mock filter predicate, the slug triple, and
// the display ordering.
//
// Read semantics: list operations never propagate transport errors; they
// degrade to the current snapshot. Responses superseded by a newer request
// are discarded by sequence number, so rapid filter changes cannot leave a
// stale result on screen. Write operations are always live, refresh the
// snapshot on success, and surface their errors.
package resolver
