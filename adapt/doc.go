// Package adapt drives the refine/coarsen/swap pipelines to
// convergence against a single target element size (spec §4.10,
// §6-8): each pass refines oversized edges, coarsens undersized ones,
// swaps edges whose flip improves local quality, and the driver
// repeats until a pass changes nothing or a pass-count ceiling is hit.
//
// What:
//   - Config: the adaptation parameters (spec §6), validated against
//     the ranges spec §8 calls out as invariants.
//   - Run: the pass loop. Never errors on non-convergence — spec §7
//     treats "did not converge within max_passes" as an ordinary,
//     reportable outcome, not a fault, so Run signals it with its
//     boolean return rather than an error.
//
// Errors:
//   - Config.Validate returns ErrOutOfRange naming the offending
//     field; Run returns that error for an invalid Config, and
//     otherwise only returns an error for malformed mesh input (e.g. a
//     missing "coordinates" tag), propagated from the pipeline
//     packages.
package adapt
