package mesh

import (
	"errors"

	"github.com/Mopolino8/omega-h/tables"
)

// Sentinel errors for mesh construction and tag-collection
// precondition violations. New, SetEnts and the tag methods return
// them; Count, CountTags, GetTag and the Ask* accessors panic with
// ErrDimOutOfRange or ErrEntsNotSet instead.
var (
	ErrDimOutOfRange  = errors.New("mesh: dimension out of range")
	ErrEntsAlreadySet = errors.New("mesh: entities already set for this dimension")
	ErrEntsNotSet     = errors.New("mesh: top-dimension entities not set")
	ErrBadVertCount   = errors.New("mesh: vertsOfEnts length does not match n * (dim+1)")
	ErrVertIndexRange = errors.New("mesh: vertex index out of range")
	ErrTagExists      = errors.New("mesh: tag already exists for this dimension")
	ErrTagNotFound    = errors.New("mesh: tag not found")
	ErrWrongTagKind   = errors.New("mesh: tag kind mismatch")
)

// NoEntity marks the absence of an adjacent entity in a dual table
// (a boundary element has no neighbour across an exposed face).
const NoEntity = ^uint32(0)

// downKey indexes the downward-adjacency cache by (high, low)
// dimension pair.
type downKey struct{ high, low int }

// adjKey indexes the upward/star caches the same way, keyed (low,high)
// for Up and (dim,via) for Star to keep the two namespaces distinct in
// a reader's mind even though both are just [2]int under the hood.
type adjKey struct{ a, b int }

// Up is the CSR upward adjacency of low-dimension entities to the
// high-dimension entities that contain them, plus, for each
// (low,high) incidence, which local slot of the high entity the low
// entity occupies (spec §4.4: "direction" codes, e.g. which edge of a
// triangle an edge is).
type Up struct {
	Offsets    []uint32
	Adj        []uint32
	Directions []uint32
}

// Star is the CSR graph on the entities of one dimension where two
// entities are adjacent iff they share some entity of a given higher
// dimension (see AskStar; spec §4.4).
type Star struct {
	Offsets []uint32
	Adj     []uint32
}

// Mesh is a fixed-dimension simplicial complex: a vertex count, an
// element-to-vertex table, and every other adjacency and tag derived
// from those two facts and cached on first use (spec §3).
//
// The zero value is not usable; construct with New.
type Mesh struct {
	dim int

	// counts[d] is -1 until dimension d's entities are known to exist
	// (either given directly, for 0 and dim, or derived on first Ask*
	// touching it).
	counts [tables.MaxDim + 1]int

	// down[{d,0}] holds the canonical vertex tuples of dimension d,
	// flattened with width VertsPerEnt(d). down[{d,l}] for l>0 holds,
	// for each d-entity, the global index of each of its l-subentities
	// in canonical order, flattened with width SubsPerEnt(d,l).
	down map[downKey][]uint32

	up   map[adjKey]Up
	star map[adjKey]Star
	dual []uint32 // nil until AskDual is first called

	tags [tables.MaxDim + 1][]Tag
}

// New constructs an empty mesh of the given dimension (1, 2, or 3;
// dimension 0 is a degenerate point cloud and is not a supported
// top dimension). Call SetEnts before any Ask* or tag method.
func New(dim int) (*Mesh, error) {
	if dim < 1 || dim > tables.MaxDim {
		return nil, ErrDimOutOfRange
	}
	m := &Mesh{
		dim:  dim,
		down: make(map[downKey][]uint32),
		up:   make(map[adjKey]Up),
		star: make(map[adjKey]Star),
	}
	for d := range m.counts {
		m.counts[d] = -1
	}
	return m, nil
}

// Dim returns the mesh's top dimension.
func (m *Mesh) Dim() int { return m.dim }

// SetEnts installs the vertex count and the element-to-vertex table
// in one call, the only two facts a mesh does not derive. It may be
// called exactly once.
func (m *Mesh) SetEnts(nverts int, vertsOfEnts []uint32) error {
	if m.counts[0] != -1 {
		return ErrEntsAlreadySet
	}
	width := tables.VertsPerEnt(m.dim)
	if len(vertsOfEnts)%width != 0 {
		return ErrBadVertCount
	}
	n := len(vertsOfEnts) / width
	for _, v := range vertsOfEnts {
		if int(v) >= nverts {
			return ErrVertIndexRange
		}
	}
	m.counts[0] = nverts
	m.counts[m.dim] = n
	cp := make([]uint32, len(vertsOfEnts))
	copy(cp, vertsOfEnts)
	m.down[downKey{m.dim, 0}] = cp
	return nil
}

// Count returns the number of entities of the given dimension,
// deriving the intermediate-dimension entity set on first call if
// necessary.
func (m *Mesh) Count(dim int) int {
	if dim < 0 || dim > m.dim {
		panic(ErrDimOutOfRange)
	}
	if m.counts[0] == -1 {
		panic(ErrEntsNotSet)
	}
	if m.counts[dim] == -1 {
		m.ensureEntities(dim)
	}
	return m.counts[dim]
}
