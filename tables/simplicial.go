package tables

// MaxDim is the highest element dimension this module supports
// (tetrahedra).
const MaxDim = 3

// combos[d][l] holds, for each dimension d in 0..MaxDim and each
// subentity dimension l in 0..d-1, the list of (l+1)-element
// combinations of {0,...,d} in lexicographic order: combos[d][l][i]
// is the i-th l-subentity's vertices in canonical order.
var combos [MaxDim + 1][MaxDim]([][]int)

// opposites[d][i] is the single vertex of {0,...,d} absent from the
// i-th (d-1)-subentity combination, i.e. the vertex opposite that
// face.
var opposites [MaxDim + 1][]int

func init() {
	for d := 0; d <= MaxDim; d++ {
		for l := 0; l < d; l++ {
			combos[d][l] = combinations(d+1, l+1)
		}
		if d > 0 {
			faces := combos[d][d-1]
			opposites[d] = make([]int, len(faces))
			for i, face := range faces {
				opposites[d][i] = complement(d+1, face)
			}
		}
	}
}

// combinations returns every k-element subset of {0,...,n-1}, as a
// sorted list of sorted index slices, in lexicographic order.
func combinations(n, k int) [][]int {
	var out [][]int
	if k < 0 || k > n {
		return out
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		row := make([]int, k)
		copy(row, idx)
		out = append(out, row)
		// advance to the next combination in lex order
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}

// complement returns the single element of {0,...,n-1} not present in
// the sorted slice present (which must have exactly n-1 elements).
func complement(n int, present []int) int {
	mark := make([]bool, n)
	for _, v := range present {
		mark[v] = true
	}
	for v := 0; v < n; v++ {
		if !mark[v] {
			return v
		}
	}
	panic("tables: complement called on a full set")
}

// VertsPerEnt returns the number of vertices of a d-simplex (d+1).
func VertsPerEnt(d int) int {
	return d + 1
}

// SubsPerEnt returns the number of l-subentities of a d-simplex,
// (d+1 choose l+1). Requires 0 <= l < d <= MaxDim.
func SubsPerEnt(d, l int) int {
	return len(combos[d][l])
}

// CanonicalOrder returns the k-th vertex, in canonical order, of the
// i-th l-subentity of a d-simplex.
func CanonicalOrder(d, l, i, k int) int {
	return combos[d][l][i][k]
}

// AllSubs returns every l-subentity of a d-simplex, each as its local
// vertex indices in canonical order, in canonical-order-index order.
// The returned slices are shared and must not be mutated.
func AllSubs(d, l int) [][]int {
	return combos[d][l]
}

// Opposite returns the vertex of a d-simplex not on its i-th
// (d-1)-face.
func Opposite(d, i int) int {
	return opposites[d][i]
}
