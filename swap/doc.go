// Package swap implements edge-based re-triangulation without moving
// any vertex (spec §4.9): replace the elements around a shared edge
// with a different triangulation of the same surrounding cavity when
// doing so improves the worst element quality in that cavity.
//
// What:
//   - 2D: the classic diagonal flip — an edge shared by exactly two
//     triangles is replaced by the other diagonal of their
//     quadrilateral.
//   - 3D: an interior edge shared by a closed ring of r tetrahedra,
//     with r from 3 up to 3+nsliverLayers, is replaced by the best
//     fan triangulation of the ring's apex polygon (2*(r-2) tets); for
//     r==3 this is the classic 3-to-2 flip. Open (boundary) rings are
//     not swapped.
//
// Why:
//   - Both are swaps that change ONLY the interior connectivity of a
//     closed cavity around the edge, so no vertex coordinates or
//     nodal tags need interpolation — only the flipped elements'
//     tags need a value, which is replicated from the cavity's first
//     original element.
//
// Errors:
//   - ErrMissingCoordinates: quality evaluation needs vertex positions.
package swap
