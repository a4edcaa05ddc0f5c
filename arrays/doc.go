// Package arrays implements the bulk-synchronous array primitives the
// mesh-adaptation pipelines are built from: exclusive scan and its
// inverse, row expansion and subsetting driven by an offsets array,
// and the reductions (Max, Sum) pipelines use to test for "any
// candidate survived".
//
// Every function processes an entire slice before returning and never
// retains a reference to its input; this is what lets each one be
// swapped for a SIMT kernel with identical outputs (spec §5).
//
// What:
//   - Exscan/Unscan: exclusive prefix sum and its exact inverse on
//     non-decreasing inputs.
//   - NegateOffsets: turn a "generate one new thing per selected
//     source" offsets array into a "keep the unselected sources"
//     offsets array.
//   - Expand/Subset: repeat or drop fixed-width rows according to an
//     offsets array, the two primitives every topology rebuild uses to
//     go from "mesh" to "mesh plus/minus some entities".
//   - Max/Sum/Fill/Linear: small reductions and constant-fill helpers.
//   - Shuffle/Unshuffle: permute fixed-width rows by a renumbering.
//
// Why:
//   - Every pipeline step (refine, coarsen, swap) is "compute an
//     offsets array, then Expand/Subset/Shuffle by it" — these
//     primitives are the only way the pipelines touch memory.
//
// Complexity:
//   - All functions are O(n) or O(n*width) time, O(n) or O(n*width)
//     extra space for the returned slice.
//
// Errors:
//   - ErrLengthMismatch names the case where an input slice's length
//     does not match its declared element count and width. The
//     functions here do not check lengths and return no error; a short
//     input slice makes them panic with an index out of range.
package arrays

import "errors"

// ErrLengthMismatch indicates a slice argument's length is inconsistent
// with the element count and row width the caller declared.
var ErrLengthMismatch = errors.New("arrays: length mismatch")
