// Package mesh implements the abstract simplicial complex described in
// spec §3-4.4: a fixed-dimension container of vertices and elements
// with full downward, upward, star, and dual adjacency, lazily
// derived and cached, plus an ordered per-dimension tag collection.
//
// What:
//   - Mesh: the container. New(dim) builds an empty mesh of fixed
//     dimension; SetEnts populates vertices and elements exactly once
//     each; AskDown/AskUp/AskStar/AskDual derive and cache adjacency
//     on first use.
//   - Tag: a named, typed (uint32 or float64), fixed-width per-entity
//     attribute array.
//
// Why:
//   - Every pipeline (refine, coarsen, swap) reads adjacency through
//     these four Ask* accessors and never touches raw connectivity
//     arrays directly, so the caching policy (computed once, owned by
//     the mesh, released with it) is enforced in one place.
//
// Complexity:
//   - SetEnts: O(n). Ask* on first call: O(n) to O(n log n) (the
//     tuple-canonicalization derivations sort small fixed-size keys);
//     O(1) amortized thereafter (cached).
//
// Concurrency:
//   - Not safe for concurrent use. Spec §5: the mesh has a single
//     logical owner; lazy derivation is idempotent so this is a
//     documented precondition, not a guarantee enforced by a mutex.
//     A mesh is never mutated in place (spec §3 Lifecycle): every
//     pipeline produces a fresh *Mesh and drops its reference to the
//     old one, which Go's garbage collector then reclaims — the
//     explicit "owner releases mesh" step of the original C library
//     has no analogue here.
//
// Errors:
//   - ErrDimOutOfRange, ErrEntsAlreadySet, ErrEntsNotSet: precondition
//     violations on mesh construction.
//   - ErrTagNotFound, ErrTagExists, ErrWrongTagKind: tag-collection
//     precondition violations.
package mesh
