package arrays

// Expand repeats row i of a (a fixed-width array of n rows, width
// wide) offsets[i+1]-offsets[i] times, concatenating the results. The
// output has offsets[n]*width elements.
//
// Complexity: O(offsets[n]*width).
func Expand(a []uint32, n, width int, offsets []uint32) []uint32 {
	nout := int(offsets[n])
	out := make([]uint32, nout*width)
	for i := 0; i < n; i++ {
		first, end := offsets[i], offsets[i+1]
		for j := first; j < end; j++ {
			copy(out[int(j)*width:int(j)*width+width], a[i*width:i*width+width])
		}
	}
	return out
}

// ExpandF64 is the float64 counterpart of Expand.
func ExpandF64(a []float64, n, width int, offsets []uint32) []float64 {
	nout := int(offsets[n])
	out := make([]float64, nout*width)
	for i := 0; i < n; i++ {
		first, end := offsets[i], offsets[i+1]
		for j := first; j < end; j++ {
			copy(out[int(j)*width:int(j)*width+width], a[i*width:i*width+width])
		}
	}
	return out
}

// Subset keeps row i of a exactly when offsets[i+1] == offsets[i]+1,
// writing it at output row offsets[i]. The output has offsets[n]
// rows of width elements each.
//
// Complexity: O(n*width).
func Subset(a []uint32, n, width int, offsets []uint32) []uint32 {
	nout := int(offsets[n])
	out := make([]uint32, nout*width)
	for i := 0; i < n; i++ {
		if offsets[i+1] == offsets[i]+1 {
			o := int(offsets[i])
			copy(out[o*width:o*width+width], a[i*width:i*width+width])
		}
	}
	return out
}

// SubsetF64 is the float64 counterpart of Subset.
func SubsetF64(a []float64, n, width int, offsets []uint32) []float64 {
	nout := int(offsets[n])
	out := make([]float64, nout*width)
	for i := 0; i < n; i++ {
		if offsets[i+1] == offsets[i]+1 {
			o := int(offsets[i])
			copy(out[o*width:o*width+width], a[i*width:i*width+width])
		}
	}
	return out
}

// Shuffle writes row i of a to row outOfIn[i] of the result, which has
// n rows of width elements each. outOfIn must be a permutation of
// 0..n-1.
//
// Complexity: O(n*width).
func Shuffle(a []uint32, n, width int, outOfIn []uint32) []uint32 {
	out := make([]uint32, n*width)
	for i := 0; i < n; i++ {
		j := int(outOfIn[i])
		copy(out[j*width:j*width+width], a[i*width:i*width+width])
	}
	return out
}

// Unshuffle is the inverse of Shuffle: row i of the result is row
// outOfIn[i] of a.
//
// Complexity: O(n*width).
func Unshuffle(a []uint32, n, width int, outOfIn []uint32) []uint32 {
	out := make([]uint32, n*width)
	for i := 0; i < n; i++ {
		j := int(outOfIn[i])
		copy(out[i*width:i*width+width], a[j*width:j*width+width])
	}
	return out
}
