package canon

import "github.com/tetratelabs/wazero/api"

// CoreValType is a core wasm value type.
type CoreValType = api.ValueType

// FlattenType flattens a canonical type to its core wasm slot types.
func FlattenType(t *ValType) []CoreValType {
	if t == nil {
		return nil
	}
	switch t.Kind {
	case KindBool, KindS8, KindU8, KindS16, KindU16, KindS32, KindU32, KindChar:
		return []CoreValType{api.ValueTypeI32}
	case KindS64, KindU64:
		return []CoreValType{api.ValueTypeI64}
	case KindF32:
		return []CoreValType{api.ValueTypeF32}
	case KindF64:
		return []CoreValType{api.ValueTypeF64}
	case KindString, KindList:
		return []CoreValType{api.ValueTypeI32, api.ValueTypeI32} // ptr, len
	case KindRecord:
		var flat []CoreValType
		for _, f := range t.Fields {
			flat = append(flat, FlattenType(f.Type)...)
		}
		return flat
	default:
		return []CoreValType{api.ValueTypeI32}
	}
}

// FlattenTypes flattens a type list in order.
func FlattenTypes(types []*ValType) []CoreValType {
	var flat []CoreValType
	for _, t := range types {
		flat = append(flat, FlattenType(t)...)
	}
	return flat
}

// FlattenFuncType returns the core-level signature the calling module sees
// for a canonical function type.
func FlattenFuncType(ft *FuncType) (params, results []CoreValType) {
	return FlattenTypes(ft.Params), FlattenTypes(ft.Results)
}

// FlatCount returns the number of core slots a canonical type occupies.
func FlatCount(t *ValType) int {
	if t == nil {
		return 0
	}
	switch t.Kind {
	case KindString, KindList:
		return 2
	case KindRecord:
		n := 0
		for _, f := range t.Fields {
			n += FlatCount(f.Type)
		}
		return n
	default:
		return 1
	}
}
