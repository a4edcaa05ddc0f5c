package mesh

// TagKind distinguishes the two value types a Tag can carry (spec §3:
// tags are tagged-variant, one of a small closed set of kinds).
type TagKind uint8

const (
	// U32 tags hold unsigned 32-bit values, used for classification
	// (class_dim, class_id) and other discrete per-entity labels.
	U32 TagKind = iota
	// F64 tags hold double-precision values, used for coordinates and
	// any interpolated nodal field.
	F64
)

func (k TagKind) String() string {
	if k == F64 {
		return "f64"
	}
	return "u32"
}

// Tag is a named, fixed-width, per-entity attribute array. Exactly
// one of U32Data/F64Data holds data, matching Kind.
type Tag struct {
	Name    string
	Kind    TagKind
	Ncomps  int
	U32Data []uint32
	F64Data []float64
}

// AddTagU32 attaches a new uint32 tag of the given component width to
// dimension dim. len(data) must equal Count(dim)*ncomps.
func (m *Mesh) AddTagU32(dim int, name string, ncomps int, data []uint32) error {
	if dim < 0 || dim > m.dim {
		return ErrDimOutOfRange
	}
	if _, ok := m.findTag(dim, name); ok {
		return ErrTagExists
	}
	if len(data) != m.Count(dim)*ncomps {
		return ErrBadVertCount
	}
	cp := append([]uint32(nil), data...)
	m.tags[dim] = append(m.tags[dim], Tag{Name: name, Kind: U32, Ncomps: ncomps, U32Data: cp})
	return nil
}

// AddTagF64 attaches a new float64 tag of the given component width to
// dimension dim. len(data) must equal Count(dim)*ncomps.
func (m *Mesh) AddTagF64(dim int, name string, ncomps int, data []float64) error {
	if dim < 0 || dim > m.dim {
		return ErrDimOutOfRange
	}
	if _, ok := m.findTag(dim, name); ok {
		return ErrTagExists
	}
	if len(data) != m.Count(dim)*ncomps {
		return ErrBadVertCount
	}
	cp := append([]float64(nil), data...)
	m.tags[dim] = append(m.tags[dim], Tag{Name: name, Kind: F64, Ncomps: ncomps, F64Data: cp})
	return nil
}

// FindTag looks up a tag by dimension and name.
func (m *Mesh) FindTag(dim int, name string) (*Tag, error) {
	if dim < 0 || dim > m.dim {
		return nil, ErrDimOutOfRange
	}
	t, ok := m.findTag(dim, name)
	if !ok {
		return nil, ErrTagNotFound
	}
	return t, nil
}

func (m *Mesh) findTag(dim int, name string) (*Tag, bool) {
	for i := range m.tags[dim] {
		if m.tags[dim][i].Name == name {
			return &m.tags[dim][i], true
		}
	}
	return nil, false
}

// RemoveTag deletes a tag by dimension and name.
func (m *Mesh) RemoveTag(dim int, name string) error {
	if dim < 0 || dim > m.dim {
		return ErrDimOutOfRange
	}
	for i := range m.tags[dim] {
		if m.tags[dim][i].Name == name {
			m.tags[dim] = append(m.tags[dim][:i], m.tags[dim][i+1:]...)
			return nil
		}
	}
	return ErrTagNotFound
}

// CountTags returns the number of tags attached to dimension dim.
func (m *Mesh) CountTags(dim int) int {
	if dim < 0 || dim > m.dim {
		panic(ErrDimOutOfRange)
	}
	return len(m.tags[dim])
}

// GetTag returns the i-th tag attached to dimension dim, in insertion
// order.
func (m *Mesh) GetTag(dim, i int) *Tag {
	if dim < 0 || dim > m.dim {
		panic(ErrDimOutOfRange)
	}
	return &m.tags[dim][i]
}
