package wasm

// WebAssembly binary format magic number and version.
const (
	// Magic is the WebAssembly binary magic number ("\0asm" in little-endian).
	Magic uint32 = 0x6D736100

	// Version is the supported WebAssembly binary format version.
	Version uint32 = 0x01
)

// Section IDs define the binary identifiers for each module section.
// Non-custom sections must appear in canonical order.
const (
	SectionCustom    byte = 0
	SectionType      byte = 1
	SectionImport    byte = 2
	SectionFunction  byte = 3
	SectionTable     byte = 4
	SectionMemory    byte = 5
	SectionGlobal    byte = 6
	SectionExport    byte = 7
	SectionStart     byte = 8
	SectionElement   byte = 9
	SectionCode      byte = 10
	SectionData      byte = 11
	SectionDataCount byte = 12
	SectionTag       byte = 13
)

// sectionOrder is the canonical emission order of non-custom sections.
// Numeric ID order is not canonical: Tag sits between Memory and Global,
// and DataCount must precede Code.
var sectionOrder = []byte{
	SectionType,
	SectionImport,
	SectionFunction,
	SectionTable,
	SectionMemory,
	SectionTag,
	SectionGlobal,
	SectionExport,
	SectionStart,
	SectionElement,
	SectionDataCount,
	SectionCode,
	SectionData,
}

// Import/Export descriptor kinds identify the type of imported or exported item.
const (
	KindFunc   byte = 0
	KindTable  byte = 1
	KindMemory byte = 2
	KindGlobal byte = 3
)

// Value type encodings as defined in the WebAssembly binary format.
const (
	ValI32 ValType = 0x7F
	ValI64 ValType = 0x7E
	ValF32 ValType = 0x7D
	ValF64 ValType = 0x7C
)

// FuncTypeByte introduces a function type in the type section.
const FuncTypeByte byte = 0x60

// Opcodes used by synthesized wrapper bodies.
const (
	OpLocalGet byte = 0x20
	OpCall     byte = 0x10
	OpEnd      byte = 0x0B
)
