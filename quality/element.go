package quality

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/Mopolino8/omega-h/tables"
)

// Element returns the mean-ratio shape quality of a dim-simplex given
// the 3-space coordinates of its dim+1 vertices, normalized so that a
// regular simplex scores 1 and a degenerate (zero- or negative-volume)
// one scores 0. Edges (dim==1, and trivially dim==0) have no shape
// degree of freedom and always score 1.
//
// The volume (dim==2: area; dim==3: volume) is obtained from the
// element's squared edge lengths alone via the Cayley-Menger
// determinant, so Element needs no local coordinate frame for the
// element and is invariant under translation, rotation, and
// reflection by construction; uniform scaling by s multiplies squared
// lengths by s^2 and volume^2 by s^(2*dim), which the mean-ratio
// normalization below cancels exactly.
//
// Complexity: O(1) (the Cayley-Menger matrix is at most 5x5).
func Element(dim int, coords [][3]float64) float64 {
	if dim <= 1 {
		return 1
	}
	n := dim + 1
	sq := squaredDistances(coords[:n])

	volSq := cayleyMengerVolumeSq(dim, sq)
	if volSq <= 0 {
		return 0
	}
	vol := math.Sqrt(volSq)

	var sumSq float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sumSq += sq[i][j]
		}
	}
	if sumSq <= 0 {
		return 0
	}

	var q float64
	switch dim {
	case 2:
		q = normConst[dim] * vol / sumSq
	case 3:
		q = normConst[dim] * math.Pow(3*vol, 2.0/3.0) / sumSq
	default:
		panic("quality: Element: dimension out of range")
	}
	if q < 0 {
		return 0
	}
	if q > 1 {
		return 1
	}
	return q
}

// normConst[dim] is the mean-ratio normalization constant that makes
// Element score exactly 1 on tables.RegularCoords(dim), the unit
// regular d-simplex: it is derived once, by running the same
// squared-distance/Cayley-Menger pipeline Element uses over the
// reference shape itself, rather than hand-copied as a literal.
var normConst = computeNormConsts()

func computeNormConsts() [4]float64 {
	var c [4]float64
	for dim := 2; dim <= 3; dim++ {
		coords := tables.RegularCoords(dim)
		sq := squaredDistances(coords)
		vol := math.Sqrt(cayleyMengerVolumeSq(dim, sq))
		var sumSq float64
		for i := range sq {
			for j := i + 1; j < len(sq); j++ {
				sumSq += sq[i][j]
			}
		}
		switch dim {
		case 2:
			c[dim] = sumSq / vol
		case 3:
			c[dim] = sumSq / math.Pow(3*vol, 2.0/3.0)
		}
	}
	return c
}

func squaredDistances(coords [][3]float64) [][]float64 {
	n := len(coords)
	sq := make([][]float64, n)
	for i := range sq {
		sq[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := coords[i][0] - coords[j][0]
			dy := coords[i][1] - coords[j][1]
			dz := coords[i][2] - coords[j][2]
			d2 := dx*dx + dy*dy + dz*dz
			sq[i][j] = d2
			sq[j][i] = d2
		}
	}
	return sq
}

// cayleyMengerVolumeSq returns the squared dim-volume of the simplex
// whose dim+1 points have pairwise squared distances sq, via the
// Cayley-Menger determinant:
//
//	(dim!)^2 * 2^dim * Vol^2 = (-1)^(dim+1) * det(CM)
func cayleyMengerVolumeSq(dim int, sq [][]float64) float64 {
	n := len(sq) // = dim+1
	size := n + 1
	data := make([]float64, size*size)
	at := func(i, j int) *float64 { return &data[i*size+j] }
	for j := 1; j < size; j++ {
		*at(0, j) = 1
		*at(j, 0) = 1
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			*at(i+1, j+1) = sq[i][j]
		}
	}
	cm := mat.NewDense(size, size, data)
	det := mat.Det(cm)

	fact := factorial(dim)
	denom := float64(fact*fact) * math.Pow(2, float64(dim))
	sign := 1.0
	if (dim+1)%2 != 0 {
		sign = -1.0
	}
	return sign * det / denom
}

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}
