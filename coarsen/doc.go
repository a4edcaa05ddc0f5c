// Package coarsen implements edge-collapse coarsening (spec §4.8):
// mark short edges, pick for each a surviving endpoint allowed by the
// geometric classification rule, reject collapses that would degrade
// an untouched element's quality, resolve the remaining candidates
// into a non-conflicting subset, then rebuild the mesh around them.
//
// What:
//   - Candidates: for every vertex, the best outbound collapse among
//     its incident short edges, if any respects quality.CanCollapse
//     and the post-collapse quality floor.
//   - Select: indset.Select over the vertex-vertex star, so no two
//     vertices removed in the same pass are adjacent (which would
//     otherwise let a removed vertex's own survivor also vanish).
//   - Apply: drops the selected vertices, remaps every element's
//     vertex ids to survivors, and drops any element that degenerates
//     (one whose two collapsed endpoints were already its own edge).
//
// Why:
//   - Grounding a vertex's collapse candidacy in its highest-quality
//     viable outbound edge, rather than treating every short edge as an
//     independent candidate, matches the original library's
//     "best collapse per vertex" shape and keeps the independent set
//     operating on vertices (one winner per neighbourhood) instead of
//     on edges (which would need a second pass to resolve two edges
//     of the same vertex both wanting to collapse it).
//
// Errors:
//   - ErrMissingCoordinates / ErrMissingClassification: Candidates
//     requires "coordinates" and ("class_dim","class_id") vertex tags.
package coarsen
