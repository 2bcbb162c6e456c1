package canon

// Registry is the read-only table of canonical function types for one
// compilation unit. The parsing layer builds it once from component linking
// metadata; everything downstream holds references into it.
type Registry struct {
	types []*FuncType
}

// NewRegistry wraps the parser-supplied type table. The slice is not copied;
// the caller hands over ownership.
func NewRegistry(types []*FuncType) *Registry {
	return &Registry{types: types}
}

// FuncType returns the canonical function type at idx.
func (r *Registry) FuncType(idx uint32) (*FuncType, bool) {
	if r == nil || idx >= uint32(len(r.types)) {
		return nil, false
	}
	return r.types[idx], true
}

// Len returns the number of registered function types.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.types)
}
