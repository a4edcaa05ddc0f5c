// Package collab defines the seams this library hands off to its
// collaborators instead of implementing itself (spec §6): mesh I/O,
// distributed exchange, and externally supplied sizing fields are all
// out of this library's scope, so only the interfaces a collaborator
// would implement live here.
package collab

import "github.com/Mopolino8/omega-h/mesh"

// MeshWriter serializes a mesh to some external format (VTK, Gmsh,
// and similar are explicitly out of scope per spec §6's Non-goals;
// a collaborator wires its own encoder to this interface).
type MeshWriter interface {
	WriteMesh(m *mesh.Mesh) error
}

// MeshReader is the dual of MeshWriter: constructs a *mesh.Mesh from
// some external source.
type MeshReader interface {
	ReadMesh() (*mesh.Mesh, error)
}

// Exchanger moves tag data for a set of entities across a distributed
// mesh partition boundary. This library is single-rank; a
// collaborator providing a distributed-memory layer implements this
// against whatever transport it uses (MPI, gRPC, or otherwise).
type Exchanger interface {
	Exchange(dim int, ids []uint32, ncomps int, data []float64) ([]float64, error)
}

// SizeFieldSource supplies a target edge length for a coordinate,
// letting a collaborator drive spatially-varying adaptation instead
// of this library's single uniform Config.TargetSize.
type SizeFieldSource interface {
	SizeAt(coord [3]float64) float64
}
