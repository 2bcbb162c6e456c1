package aot

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/wippyai/wasm-aot/canon"
	"github.com/wippyai/wasm-aot/diag"
	"github.com/wippyai/wasm-aot/wasm"
)

func crossRecords(m *wasm.Module, fts ...*canon.FuncType) []ImportRecord {
	records := make([]ImportRecord, len(fts))
	for i, ft := range fts {
		params, results := canon.FlattenFuncType(ft)
		core := wasm.FuncType{}
		for _, p := range params {
			core.Params = append(core.Params, wasm.FromAPI(p))
		}
		for _, r := range results {
			core.Results = append(core.Results, wasm.FromAPI(r))
		}
		records[i] = ImportRecord{
			Module:  "peer",
			Name:    fmt.Sprintf("f%d", i),
			FuncIdx: uint32(i),
			Core:    core,
			Canon:   ft,
			Cross:   true,
		}
	}
	return records
}

// TestGenerateAllNames tests the one-wrapper-per-cross-import invariant and
// the index-derived naming contract
func TestGenerateAllNames(t *testing.T) {
	m := importModule(4)
	bag := diag.NewBag()
	gen := NewGenerator(m, bag, 2)

	records := crossRecords(m, u32Func(), u32Func(), u32Func(), u32Func())
	wrappers := gen.GenerateAll(records)

	if len(wrappers) != len(records) {
		t.Fatalf("wrappers = %d, want %d", len(wrappers), len(records))
	}

	seen := map[string]bool{}
	for i, w := range wrappers {
		want := fmt.Sprintf("aot_component_wrapper_%d", i)
		if w.Name != want {
			t.Errorf("wrapper %d name = %q, want %q", i, w.Name, want)
		}
		if seen[w.Name] {
			t.Errorf("duplicate wrapper name %q", w.Name)
		}
		seen[w.Name] = true
		if w.FuncIdx != uint32(i) {
			t.Errorf("wrapper %d func_idx = %d", i, w.FuncIdx)
		}
	}
	if bag.Len() != 0 {
		t.Errorf("diagnostics = %d, want 0: %v", bag.Len(), bag.Items())
	}
}

func TestGenerateDeterminism(t *testing.T) {
	build := func() []*Wrapper {
		m := importModule(3)
		bag := diag.NewBag()
		return NewGenerator(m, bag, 3).GenerateAll(crossRecords(m, u32Func(), u32Func(), u32Func()))
	}
	a, b := build(), build()
	if len(a) != len(b) {
		t.Fatalf("runs differ in count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Name != b[i].Name || !reflect.DeepEqual(a[i].Body, b[i].Body) {
			t.Errorf("wrapper %d differs across runs", i)
		}
	}
}

// TestGenerateUnsupportedType tests per-wrapper failure isolation: the
// string import fails with a blocking diagnostic, the u32 import still
// generates
func TestGenerateUnsupportedType(t *testing.T) {
	m := importModule(2)
	bag := diag.NewBag()
	gen := NewGenerator(m, bag, 0)

	stringFunc := &canon.FuncType{
		Params: []*canon.ValType{canon.String()},
	}
	records := crossRecords(m, stringFunc, u32Func())
	wrappers := gen.GenerateAll(records)

	if len(wrappers) != 1 {
		t.Fatalf("wrappers = %d, want 1", len(wrappers))
	}
	if wrappers[0].FuncIdx != 1 {
		t.Errorf("surviving wrapper func_idx = %d, want 1", wrappers[0].FuncIdx)
	}

	if !bag.HasBlocking() {
		t.Fatal("unsupported type must block")
	}
	items := bag.Items()
	if len(items) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(items))
	}
	want := "String LOWER not yet implemented for func_idx=0, position=0"
	if items[0].String() != want {
		t.Errorf("diagnostic = %q, want %q", items[0], want)
	}
	if items[0].Code != diag.UnsupportedCanonicalType {
		t.Errorf("code = %s", items[0].Code)
	}
}

func TestGenerateReportsEveryBadPosition(t *testing.T) {
	m := importModule(1)
	bag := diag.NewBag()
	gen := NewGenerator(m, bag, 0)

	ft := &canon.FuncType{
		Params: []*canon.ValType{
			canon.Primitive(canon.KindU32),
			canon.ListOf(canon.Primitive(canon.KindU8)),
		},
		Results: []*canon.ValType{canon.RecordOf(canon.Field{Name: "a", Type: canon.Primitive(canon.KindBool)})},
	}
	wrappers := gen.GenerateAll(crossRecords(m, ft))

	if len(wrappers) != 0 {
		t.Fatalf("wrappers = %d, want 0", len(wrappers))
	}
	bag.Sort()
	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("diagnostics = %d, want 2: %v", len(items), items)
	}
	if items[0].String() != "Record LIFT not yet implemented for func_idx=0, position=0" {
		t.Errorf("diagnostic 0 = %q", items[0])
	}
	if items[1].String() != "List LOWER not yet implemented for func_idx=0, position=1" {
		t.Errorf("diagnostic 1 = %q", items[1])
	}
}

func TestGenerateSkipsIntra(t *testing.T) {
	m := importModule(1)
	gen := NewGenerator(m, diag.NewBag(), 0)
	if w := gen.Generate(ImportRecord{FuncIdx: 0}); w != nil {
		t.Error("intra-component record must not generate a wrapper")
	}
}

// TestNameCollision tests the fatal path when a wrapper name is taken
func TestNameCollision(t *testing.T) {
	m := importModule(1)
	m.Exports = append(m.Exports, wasm.Export{Name: "aot_component_wrapper_0", Kind: wasm.KindFunc, Idx: 0})

	bag := diag.NewBag()
	gen := NewGenerator(m, bag, 0)
	gen.GenerateAll(crossRecords(m, u32Func()))

	if !bag.HasBlocking() {
		t.Fatal("collision must block")
	}
	items := bag.Items()
	if items[0].Code != diag.NameCollision {
		t.Errorf("code = %s, want %s", items[0].Code, diag.NameCollision)
	}
}

func TestWrapperBody(t *testing.T) {
	m := importModule(1)
	gen := NewGenerator(m, diag.NewBag(), 0)
	wrappers := gen.GenerateAll(crossRecords(m, u32Func()))
	if len(wrappers) != 1 {
		t.Fatal("expected one wrapper")
	}
	want := wasm.ForwardingBody(wrappers[0].Type, 0)
	if !reflect.DeepEqual(wrappers[0].Body, want) {
		t.Errorf("body = % X, want % X", wrappers[0].Body, want)
	}
}
