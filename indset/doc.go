// Package indset implements goodness-weighted maximum independent set
// selection on an arbitrary CSR graph (spec §4.6), the mechanism every
// pipeline uses to pick a non-conflicting set of modifications out of
// a pool of candidates.
//
// What:
//   - Select(n, offsets, adj, filter, goodness): a fixed-point
//     relaxation over a three-state array (UNKNOWN/IN_SET/NOT_IN_SET)
//     that converges to a maximal filtered-subset S such that no two
//     members of S are adjacent, and every member beats every
//     surviving neighbour on (goodness, then index).
//
// Why:
//   - Rather than locking entities during concurrent modification, all
//     conflicts are resolved once, up front, by this deterministic
//     computation; the topology rebuild that follows is then free of
//     ordering concerns (spec §9).
//
// Complexity:
//   - O(maxRounds * (n + len(adj))) time, O(n) extra space.
//
// Errors:
//   - ErrNoConvergence names the case where the relaxation did not
//     settle within maxRounds; spec §4.6 calls this impossible on a
//     finite graph under the tie-break rule, so Select treats it as an
//     invariant violation and panics through meshlog.Fatal rather than
//     returning an error.
package indset
