// Package refine implements edge-bisection refinement (spec §4.7):
// mark long edges, reject candidates whose split would produce a
// poor-quality element, resolve the remaining candidates into a
// non-conflicting subset, then rebuild the mesh around them.
//
// What:
//   - Candidates: marks every edge longer than a target size.
//   - Select: filters candidates by post-split quality and runs
//     indset.Select over the edge-vs-edge "shares an element" graph,
//     so no element ever has two of its own edges both selected.
//   - Apply: rebuilds a brand-new mesh with one new midpoint vertex
//     per selected edge and every touched element bisected around it.
//
// Why:
//   - Using the shares-an-element graph as indset's conflict graph
//     guarantees each element gains at most one new vertex per pass,
//     so a single bisection template (replace one endpoint of the
//     split edge with the midpoint, twice) covers every dimension
//     uniformly; the richer multi-edge-per-element retriangulation
//     the original library uses converges to the same refined mesh
//     over additional adapt passes, at the cost of more passes rather
//     than more code paths.
//
// Complexity:
//   - O(nedges + nelems) per call, dominated by the independent-set
//     relaxation (see package indset).
//
// Errors:
//   - ErrMissingCoordinates: Candidates returns it, and Select panics
//     with it, when the mesh has no "coordinates" vertex tag (3
//     components, spec §4.1's storage convention even for 2D meshes).
//     Apply does not read coordinates.
package refine
