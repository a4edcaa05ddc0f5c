// Package quality implements the per-element shape quality functional
// and the geometric-classification predicates that protect model
// features during topology changes (spec §4.5).
//
// What:
//   - Element: a normalized mean-ratio quality in [0,1], computed from
//     an element's own squared edge lengths via the Cayley-Menger
//     determinant (so it needs no local coordinate frame and is exact
//     for elements embedded in 3-space regardless of their own
//     dimension).
//   - CanCollapse: the edge-collapse classification admissibility
//     predicate.
//   - SplitClassification: the entity-split classification inheritance
//     rule (minimum class_dim, lowest-index tie-break).
//
// Why:
//   - Every pipeline (refine, coarsen, swap) needs the same quality
//     measure and the same two classification rules; centralizing them
//     here is what lets "min_quality(new) >= min(min_quality(old),
//     good_quality)" (spec §8) hold across all three.
//
// Complexity:
//   - Element: O(1) per call (fixed small matrix, dimension <= 3).
package quality
