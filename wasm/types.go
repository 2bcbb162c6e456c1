package wasm

import "github.com/tetratelabs/wazero/api"

// ValType is a core wasm value type in binary encoding.
type ValType byte

func (v ValType) String() string {
	switch v {
	case ValI32:
		return "i32"
	case ValI64:
		return "i64"
	case ValF32:
		return "f32"
	case ValF64:
		return "f64"
	}
	return "unknown"
}

// FromAPI converts a wazero value type to its binary encoding.
func FromAPI(t api.ValueType) ValType {
	switch t {
	case api.ValueTypeI32:
		return ValI32
	case api.ValueTypeI64:
		return ValI64
	case api.ValueTypeF32:
		return ValF32
	case api.ValueTypeF64:
		return ValF64
	default:
		return ValI32
	}
}

// ToAPI converts a binary value type to the wazero representation.
func ToAPI(t ValType) api.ValueType {
	switch t {
	case ValI64:
		return api.ValueTypeI64
	case ValF32:
		return api.ValueTypeF32
	case ValF64:
		return api.ValueTypeF64
	default:
		return api.ValueTypeI32
	}
}

// FuncType is a core function signature.
type FuncType struct {
	Params  []ValType
	Results []ValType
}

// Equal reports whether two signatures match exactly.
func (ft FuncType) Equal(other FuncType) bool {
	if len(ft.Params) != len(other.Params) || len(ft.Results) != len(other.Results) {
		return false
	}
	for i, p := range ft.Params {
		if p != other.Params[i] {
			return false
		}
	}
	for i, r := range ft.Results {
		if r != other.Results[i] {
			return false
		}
	}
	return true
}

// Import is one import declaration. Func imports carry a type index;
// other kinds keep their raw descriptor bytes for re-emission.
type Import struct {
	Module  string
	Name    string
	RawDesc []byte
	TypeIdx uint32
	Kind    byte
}

// Export is one export declaration.
type Export struct {
	Name string
	Idx  uint32
	Kind byte
}

// CustomSection is a named custom section.
type CustomSection struct {
	Name string
	Data []byte
}

// RawSection preserves an unmodeled section (table, memory, global, start,
// element, data, data count) byte-for-byte for re-emission.
type RawSection struct {
	Data []byte
	ID   byte
}

// Module is the decoded view of a core module, modeling only the sections
// the compiler reads or rewrites. Everything else passes through raw.
type Module struct {
	Types   []FuncType
	Imports []Import
	Funcs   []uint32 // type indices of declared functions
	Exports []Export
	Code    [][]byte // raw code entry payloads, parallel to Funcs
	Customs []CustomSection
	Raw     []RawSection
}

// NumFuncImports returns the number of imported functions; declared
// functions index after these in the function index space.
func (m *Module) NumFuncImports() uint32 {
	var n uint32
	for _, imp := range m.Imports {
		if imp.Kind == KindFunc {
			n++
		}
	}
	return n
}

// NumFuncs returns the size of the function index space.
func (m *Module) NumFuncs() uint32 {
	return m.NumFuncImports() + uint32(len(m.Funcs))
}

// FuncImports returns the imported functions in import-section order,
// which is also function index space order.
func (m *Module) FuncImports() []Import {
	var out []Import
	for _, imp := range m.Imports {
		if imp.Kind == KindFunc {
			out = append(out, imp)
		}
	}
	return out
}

// AddType returns the index of ft in the type section, appending it if no
// identical signature exists.
func (m *Module) AddType(ft FuncType) uint32 {
	for i, existing := range m.Types {
		if existing.Equal(ft) {
			return uint32(i)
		}
	}
	m.Types = append(m.Types, ft)
	return uint32(len(m.Types) - 1)
}

// Custom returns the named custom section, if present.
func (m *Module) Custom(name string) (CustomSection, bool) {
	for _, c := range m.Customs {
		if c.Name == name {
			return c, true
		}
	}
	return CustomSection{}, false
}
