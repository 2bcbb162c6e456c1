package aot

import (
	"github.com/wippyai/wasm-aot/canon"
	"github.com/wippyai/wasm-aot/diag"
	"github.com/wippyai/wasm-aot/wasm"
)

// ImportRecord is the classified view of one imported function.
type ImportRecord struct {
	Module  string
	Name    string
	FuncIdx uint32
	Core    wasm.FuncType

	// Canon is the canonical signature from linking metadata. Set only
	// for cross-component imports.
	Canon *canon.FuncType
	Cross bool
}

// Classify walks the module's imported functions and decides, per import,
// whether the call leaves the owning component. Malformed or missing linking
// metadata never aborts classification: the import degrades to
// intra-component and an advisory diagnostic records why.
func Classify(m *wasm.Module, li *wasm.LinkInfo, bag *diag.Bag) []ImportRecord {
	imports := m.FuncImports()
	records := make([]ImportRecord, 0, len(imports))

	var reg *canon.Registry
	markCount := make(map[uint32]int)
	if li != nil {
		reg = canon.NewRegistry(li.Types)
		for _, mark := range li.Marks {
			markCount[mark.FuncIdx]++
		}
	}

	for i, imp := range imports {
		funcIdx := uint32(i)
		rec := ImportRecord{
			Module:  imp.Module,
			Name:    imp.Name,
			FuncIdx: funcIdx,
		}

		if int(imp.TypeIdx) >= len(m.Types) {
			bag.Add(diag.Classification(funcIdx, "import type index out of range"))
			records = append(records, rec)
			continue
		}
		rec.Core = m.Types[imp.TypeIdx]

		if li == nil {
			records = append(records, rec)
			continue
		}

		if markCount[funcIdx] > 1 {
			bag.Add(diag.Classification(funcIdx, "duplicate linking metadata marks"))
			records = append(records, rec)
			continue
		}

		mark, ok := li.Mark(funcIdx)
		if !ok || !mark.Cross {
			records = append(records, rec)
			continue
		}

		ct, ok := reg.FuncType(mark.TypeIdx)
		if !ok {
			bag.Add(diag.Classification(funcIdx, "linking metadata references unknown canonical type"))
			records = append(records, rec)
			continue
		}

		if !signatureMatches(ct, rec.Core) {
			bag.Add(diag.Classification(funcIdx, "canonical signature does not flatten to the import's core type"))
			records = append(records, rec)
			continue
		}

		rec.Canon = ct
		rec.Cross = true
		records = append(records, rec)
	}

	if li != nil {
		for _, mark := range li.Marks {
			if int(mark.FuncIdx) >= len(imports) {
				bag.Add(diag.Classification(mark.FuncIdx, "linking metadata marks a function index outside the import space"))
			}
		}
	}
	return records
}

// signatureMatches checks that the canonical signature flattens to exactly
// the core signature the module declares for the import.
func signatureMatches(ct *canon.FuncType, core wasm.FuncType) bool {
	params, results := canon.FlattenFuncType(ct)
	if len(params) != len(core.Params) || len(results) != len(core.Results) {
		return false
	}
	for i, p := range params {
		if wasm.FromAPI(p) != core.Params[i] {
			return false
		}
	}
	for i, r := range results {
		if wasm.FromAPI(r) != core.Results[i] {
			return false
		}
	}
	return true
}

// CrossCount returns how many records classified as cross-component.
func CrossCount(records []ImportRecord) int {
	var n int
	for _, rec := range records {
		if rec.Cross {
			n++
		}
	}
	return n
}
