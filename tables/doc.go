// Package tables holds the compile-time combinatorial data of
// simplicial meshes: for each element dimension d and subentity
// dimension l<d, the number of l-subentities per d-simplex and their
// canonical vertex orderings, the opposite-vertex map for (d-1)-faces,
// and the reference coordinates of a unit regular d-simplex used by
// the quality functional.
//
// All exported functions are pure functions of their integer
// arguments; nothing here allocates per call except RegularCoords,
// which returns a fresh slice each time, and nothing here depends on
// any particular mesh instance.
//
// What:
//   - VertsPerEnt(d): vertices per d-simplex (d+1).
//   - SubsPerEnt(d,l): l-subentities per d-simplex (d+1 choose l+1).
//   - CanonicalOrder(d,l,i,k): the k-th vertex of the i-th l-subentity
//     of a d-simplex, in a fixed canonical ordering.
//   - Opposite(d,i): the vertex not on the i-th (d-1)-face.
//   - RegularCoords(d): reference coordinates of a unit regular
//     d-simplex, embedded in 3-space, used by quality.Element.
//
// Why:
//   - Every downward-adjacency derivation and every topology rebuild
//     indexes into exactly these tables; keeping them in one package
//     with no mesh dependency makes them trivially testable in
//     isolation and guarantees no pipeline can observe two different
//     orderings for the same (d,l).
package tables
