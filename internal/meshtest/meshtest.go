// Package meshtest builds small fixture meshes of a few concrete
// shapes. cmd/meshadapt uses RightTriangulatedSquare as its demo mesh;
// the package test suites build their own meshes inline and do not
// import this package.
package meshtest

import "github.com/Mopolino8/omega-h/mesh"

// UnitSquare returns the two-triangle unit square split along the
// (0,2) diagonal, with trivial "interior" classification on every
// vertex, used by spec §8's adaptation scenarios.
func UnitSquare() *mesh.Mesh {
	m, err := mesh.New(2)
	if err != nil {
		panic(err)
	}
	if err := m.SetEnts(4, []uint32{0, 1, 2, 0, 2, 3}); err != nil {
		panic(err)
	}
	must(m.AddTagF64(0, "coordinates", 3, []float64{
		0, 0, 0,
		1, 0, 0,
		1, 1, 0,
		0, 1, 0,
	}))
	must(m.AddTagU32(0, "class_dim", 1, []uint32{2, 2, 2, 2}))
	must(m.AddTagU32(0, "class_id", 1, []uint32{0, 0, 0, 0}))
	return m
}

// RightTriangulatedSquare returns an n-by-n unit-square grid, each
// cell split into two triangles along the same diagonal direction,
// used by spec §8 scenarios that need a mesh with interior edges.
func RightTriangulatedSquare(n int) *mesh.Mesh {
	if n < 1 {
		panic("meshtest: n must be >= 1")
	}
	nv := (n + 1) * (n + 1)
	idx := func(i, j int) uint32 { return uint32(i*(n+1) + j) }

	coords := make([]float64, nv*3)
	classDim := make([]uint32, nv)
	classID := make([]uint32, nv)
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			v := idx(i, j)
			coords[v*3] = float64(j) / float64(n)
			coords[v*3+1] = float64(i) / float64(n)
			if i == 0 || i == n || j == 0 || j == n {
				classDim[v] = 1 // boundary
			} else {
				classDim[v] = 2 // interior
			}
		}
	}

	var tris []uint32
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a, b, c, d := idx(i, j), idx(i, j+1), idx(i+1, j+1), idx(i+1, j)
			tris = append(tris, a, b, c)
			tris = append(tris, a, c, d)
		}
	}

	m, err := mesh.New(2)
	if err != nil {
		panic(err)
	}
	if err := m.SetEnts(nv, tris); err != nil {
		panic(err)
	}
	must(m.AddTagF64(0, "coordinates", 3, coords))
	must(m.AddTagU32(0, "class_dim", 1, classDim))
	must(m.AddTagU32(0, "class_id", 1, classID))
	return m
}

// SliverTet returns a single near-degenerate (almost flat)
// tetrahedron, the same shape as the quality package's low-quality
// test case.
func SliverTet() *mesh.Mesh {
	m, err := mesh.New(3)
	if err != nil {
		panic(err)
	}
	if err := m.SetEnts(4, []uint32{0, 1, 2, 3}); err != nil {
		panic(err)
	}
	must(m.AddTagF64(0, "coordinates", 3, []float64{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
		0.3, 0.3, 1e-4,
	}))
	must(m.AddTagU32(0, "class_dim", 1, []uint32{3, 3, 3, 3}))
	must(m.AddTagU32(0, "class_id", 1, []uint32{0, 0, 0, 0}))
	return m
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
