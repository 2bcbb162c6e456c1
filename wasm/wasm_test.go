package wasm

import (
	"bytes"
	"testing"
)

func testModule() *Module {
	return &Module{
		Types: []FuncType{
			{Params: []ValType{ValI32, ValI32}, Results: []ValType{ValI32}},
			{Params: []ValType{ValF64}, Results: nil},
		},
		Imports: []Import{
			{Module: "env", Name: "add", Kind: KindFunc, TypeIdx: 0},
			{Module: "env", Name: "mem", Kind: KindMemory, RawDesc: []byte{0x00, 0x01}},
		},
		Funcs: []uint32{1},
		Exports: []Export{
			{Name: "consume", Kind: KindFunc, Idx: 1},
		},
		Code: [][]byte{
			{0x00, OpEnd},
		},
		Customs: []CustomSection{
			{Name: "producers", Data: []byte{0x00}},
		},
	}
}

// TestEncodeDecodeRoundTrip tests that a module survives encode/parse
func TestEncodeDecodeRoundTrip(t *testing.T) {
	m := testModule()
	data := m.Encode()

	got, err := ParseModule(data)
	if err != nil {
		t.Fatalf("ParseModule() error = %v", err)
	}

	if len(got.Types) != 2 || !got.Types[0].Equal(m.Types[0]) {
		t.Errorf("types = %+v", got.Types)
	}
	if len(got.Imports) != 2 {
		t.Fatalf("imports = %d, want 2", len(got.Imports))
	}
	if got.Imports[0].Module != "env" || got.Imports[0].Name != "add" || got.Imports[0].TypeIdx != 0 {
		t.Errorf("import 0 = %+v", got.Imports[0])
	}
	if got.Imports[1].Kind != KindMemory || !bytes.Equal(got.Imports[1].RawDesc, []byte{0x00, 0x01}) {
		t.Errorf("import 1 = %+v", got.Imports[1])
	}
	if len(got.Funcs) != 1 || got.Funcs[0] != 1 {
		t.Errorf("funcs = %v", got.Funcs)
	}
	if len(got.Exports) != 1 || got.Exports[0].Name != "consume" {
		t.Errorf("exports = %+v", got.Exports)
	}
	if len(got.Code) != 1 || !bytes.Equal(got.Code[0], m.Code[0]) {
		t.Errorf("code = %v", got.Code)
	}
	if c, ok := got.Custom("producers"); !ok || !bytes.Equal(c.Data, []byte{0x00}) {
		t.Errorf("custom section lost: %+v, %v", c, ok)
	}

	// deterministic re-encode
	if !bytes.Equal(got.Encode(), data) {
		t.Error("re-encoding a parsed module changed the bytes")
	}
}

// sectionIDs walks an encoded module and returns the section IDs in
// emission order.
func sectionIDs(t *testing.T, data []byte) []byte {
	t.Helper()
	var ids []byte
	pos := 8 // past magic and version
	for pos < len(data) {
		id := data[pos]
		pos++
		var size, shift uint32
		for {
			b := data[pos]
			pos++
			size |= uint32(b&0x7f) << shift
			if b&0x80 == 0 {
				break
			}
			shift += 7
		}
		pos += int(size)
		ids = append(ids, id)
	}
	return ids
}

// TestEncodeCanonicalSectionOrder tests that raw sections survive re-emission
// in canonical order: Tag between Memory and Global, DataCount before Code
func TestEncodeCanonicalSectionOrder(t *testing.T) {
	m := &Module{
		Types: []FuncType{{}},
		Funcs: []uint32{0},
		Code:  [][]byte{{0x00, OpEnd}},
		Raw: []RawSection{
			{ID: SectionDataCount, Data: []byte{0x01}},
			{ID: SectionData, Data: []byte{0x00}},
			{ID: SectionTag, Data: []byte{0x00}},
			{ID: SectionMemory, Data: []byte{0x01, 0x00, 0x01}},
		},
	}
	data := m.Encode()

	want := []byte{SectionType, SectionFunction, SectionMemory, SectionTag, SectionDataCount, SectionCode, SectionData}
	got := sectionIDs(t, data)
	if !bytes.Equal(got, want) {
		t.Fatalf("section order = %v, want %v", got, want)
	}

	parsed, err := ParseModule(data)
	if err != nil {
		t.Fatalf("ParseModule() error = %v", err)
	}
	if len(parsed.Raw) != 4 {
		t.Fatalf("raw sections = %d, want 4", len(parsed.Raw))
	}
	if !bytes.Equal(parsed.Encode(), data) {
		t.Error("re-encoding a parsed module changed the bytes")
	}
}

func TestParseModuleRejects(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "bad magic", data: []byte{1, 2, 3, 4, 1, 0, 0, 0}},
		{name: "bad version", data: []byte{0x00, 0x61, 0x73, 0x6D, 2, 0, 0, 0}},
		{name: "truncated section", data: []byte{0x00, 0x61, 0x73, 0x6D, 1, 0, 0, 0, 0x01, 0x10}},
		{name: "unknown section id", data: []byte{0x00, 0x61, 0x73, 0x6D, 1, 0, 0, 0, 0x0E, 0x01, 0x00}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseModule(tc.data); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestParseModuleCodeFuncMismatch(t *testing.T) {
	m := testModule()
	m.Code = nil
	if _, err := ParseModule(m.Encode()); err == nil {
		t.Error("expected mismatch between function and code counts")
	}
}

func TestFuncIndexSpace(t *testing.T) {
	m := testModule()
	if m.NumFuncImports() != 1 {
		t.Errorf("NumFuncImports() = %d, want 1", m.NumFuncImports())
	}
	if m.NumFuncs() != 2 {
		t.Errorf("NumFuncs() = %d, want 2", m.NumFuncs())
	}
	if imps := m.FuncImports(); len(imps) != 1 || imps[0].Name != "add" {
		t.Errorf("FuncImports() = %+v", imps)
	}
}

func TestAddType(t *testing.T) {
	m := testModule()
	existing := FuncType{Params: []ValType{ValF64}}
	if idx := m.AddType(existing); idx != 1 {
		t.Errorf("AddType(existing) = %d, want 1", idx)
	}
	fresh := FuncType{Results: []ValType{ValI64}}
	if idx := m.AddType(fresh); idx != 2 {
		t.Errorf("AddType(fresh) = %d, want 2", idx)
	}
	if len(m.Types) != 3 {
		t.Errorf("types = %d, want 3", len(m.Types))
	}
}

// TestForwardingBody tests the synthesized call-forwarding code entry
func TestForwardingBody(t *testing.T) {
	ft := FuncType{Params: []ValType{ValI32, ValF64}, Results: []ValType{ValI32}}
	body := ForwardingBody(ft, 3)

	want := []byte{
		0x00,             // no locals
		OpLocalGet, 0x00, // param 0
		OpLocalGet, 0x01, // param 1
		OpCall, 0x03,
		OpEnd,
	}
	if !bytes.Equal(body, want) {
		t.Errorf("ForwardingBody = % X, want % X", body, want)
	}
}
