package canon

// Kind identifies a canonical value type.
type Kind uint8

const (
	KindBool Kind = iota
	KindS8
	KindU8
	KindS16
	KindU16
	KindS32
	KindU32
	KindS64
	KindU64
	KindF32
	KindF64
	KindChar
	KindString
	KindList
	KindRecord
)

var kindNames = [...]string{
	KindBool:   "bool",
	KindS8:     "s8",
	KindU8:     "u8",
	KindS16:    "s16",
	KindU16:    "u16",
	KindS32:    "s32",
	KindU32:    "u32",
	KindS64:    "s64",
	KindU64:    "u64",
	KindF32:    "f32",
	KindF64:    "f64",
	KindChar:   "char",
	KindString: "string",
	KindList:   "list",
	KindRecord: "record",
}

// typeNames are the capitalized names used in build-log diagnostics.
var typeNames = [...]string{
	KindBool:   "Bool",
	KindS8:     "S8",
	KindU8:     "U8",
	KindS16:    "S16",
	KindU16:    "U16",
	KindS32:    "S32",
	KindU32:    "U32",
	KindS64:    "S64",
	KindU64:    "U64",
	KindF32:    "F32",
	KindF64:    "F64",
	KindChar:   "Char",
	KindString: "String",
	KindList:   "List",
	KindRecord: "Record",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// TypeName returns the diagnostic-facing name, e.g. "String" or "S32".
func (k Kind) TypeName() string {
	if int(k) < len(typeNames) {
		return typeNames[k]
	}
	return "Unknown"
}

// IsPrimitive reports whether the kind is a single-slot scalar type.
func (k Kind) IsPrimitive() bool {
	return k <= KindChar
}
