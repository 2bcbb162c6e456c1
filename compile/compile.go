package compile

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-aot/aot"
	"github.com/wippyai/wasm-aot/diag"
	"github.com/wippyai/wasm-aot/errors"
	"github.com/wippyai/wasm-aot/wasm"
)

// Result is the outcome of one compilation. Artifact is nil when a blocking
// diagnostic was recorded.
type Result struct {
	Artifact    []byte
	Diagnostics []diag.Diagnostic
	Imports     int
	Cross       int
	Wrappers    int
}

// Blocked reports whether emission was suppressed.
func (r *Result) Blocked() bool {
	for _, d := range r.Diagnostics {
		if d.Blocking() {
			return true
		}
	}
	return false
}

// Compile runs the ahead-of-time pipeline over module bytes: decode,
// classify imports, generate boundary wrappers, and re-encode the artifact
// with the wrappers and their plan section appended.
//
// Compile returns an error only when the input is not a usable module.
// Everything the boundary pass finds wrong is reported through Result's
// diagnostics instead, and any blocking one suppresses the artifact.
func Compile(data []byte, opts Options) (*Result, error) {
	m, err := wasm.ParseModule(data)
	if err != nil {
		return nil, errors.InvalidData(errors.PhaseParse, "decode module", err)
	}

	res := &Result{}

	if !opts.Component {
		res.Artifact = m.Encode()
		return res, nil
	}

	bag := diag.NewBag()
	li := decodeLinkSection(m, bag)

	records := aot.Classify(m, li, bag)
	res.Imports = len(records)

	for _, rec := range records {
		if !rec.Cross {
			continue
		}
		res.Cross++
		line := diag.Detected(rec.FuncIdx)
		Logger().Info(line,
			zap.Uint32("func_idx", rec.FuncIdx),
			zap.String("import", rec.Module+"."+rec.Name))
		buildLog(opts, line)
	}

	gen := aot.NewGenerator(m, bag, opts.Jobs)
	wrappers := gen.GenerateAll(records)
	res.Wrappers = len(wrappers)

	bag.Sort()
	res.Diagnostics = bag.Items()
	for _, d := range res.Diagnostics {
		buildLog(opts, d.String())
	}

	if bag.HasBlocking() {
		Logger().Warn("artifact suppressed by blocking diagnostics",
			zap.Int("diagnostics", len(res.Diagnostics)))
		return res, nil
	}

	if err := emit(m, wrappers); err != nil {
		return nil, err
	}
	res.Artifact = m.Encode()
	return res, nil
}

// decodeLinkSection reads the component-link custom section. A section that
// fails to decode degrades the whole module to intra-component, advisory
// only, matching the per-entry degradation policy.
func decodeLinkSection(m *wasm.Module, bag *diag.Bag) *wasm.LinkInfo {
	sec, ok := m.Custom(wasm.LinkSectionName)
	if !ok {
		return nil
	}
	li, err := wasm.DecodeLinkInfo(sec.Data)
	if err != nil {
		Logger().Warn("component-link section unreadable", zap.Error(err))
		bag.Add(diag.Classification(0, fmt.Sprintf("component-link section unreadable: %v", err)))
		return nil
	}
	return li
}

// emit appends the wrappers to the module: one type, function and code entry
// each, exported under the wrapper name, plus the plan custom section.
func emit(m *wasm.Module, wrappers []*aot.Wrapper) error {
	numImports := m.NumFuncImports()
	for _, w := range wrappers {
		typeIdx := m.AddType(w.Type)
		m.Funcs = append(m.Funcs, typeIdx)
		m.Code = append(m.Code, w.Body)
		m.Exports = append(m.Exports, wasm.Export{
			Name: w.Name,
			Kind: wasm.KindFunc,
			Idx:  numImports + uint32(len(m.Funcs)) - 1,
		})
	}

	if len(wrappers) == 0 {
		return nil
	}
	plan := aot.BuildPlan(wrappers)
	payload, err := aot.EncodePlan(plan)
	if err != nil {
		return errors.New(errors.PhaseEmit, errors.KindInvalidData).
			Detail("encode wrapper plan").
			Cause(err).
			Build()
	}
	m.Customs = append(m.Customs, wasm.CustomSection{Name: aot.PlanSectionName, Data: payload})
	return nil
}

func buildLog(opts Options, line string) {
	if opts.BuildLog == nil {
		return
	}
	fmt.Fprintln(opts.BuildLog, line)
}
