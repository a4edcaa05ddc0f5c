package tables

import "math"

// RegularCoords returns the vertex coordinates of a unit regular
// d-simplex (all edges of length 1), embedded in 3-space. quality.Element
// normalizes its mean-ratio score against this reference shape, so that
// a regular simplex scores exactly 1.
func RegularCoords(d int) [][3]float64 {
	switch d {
	case 0:
		return [][3]float64{{0, 0, 0}}
	case 1:
		return [][3]float64{{0, 0, 0}, {1, 0, 0}}
	case 2:
		h := math.Sqrt(3) / 2
		return [][3]float64{{0, 0, 0}, {1, 0, 0}, {0.5, h, 0}}
	case 3:
		s := 1 / (2 * math.Sqrt(2))
		return [][3]float64{
			{s, s, s},
			{s, -s, -s},
			{-s, s, -s},
			{-s, -s, s},
		}
	default:
		panic("tables: RegularCoords: dimension out of range")
	}
}
