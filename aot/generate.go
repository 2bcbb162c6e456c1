package aot

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/wippyai/wasm-aot/codec"
	"github.com/wippyai/wasm-aot/diag"
	"github.com/wippyai/wasm-aot/wasm"
)

// WrapperNameFormat is the naming contract for synthesized boundary
// wrappers. The suffix is the source import's function index, so names are
// unique and stable across runs without any shared counter, and external
// tooling can grep for them.
const WrapperNameFormat = "aot_component_wrapper_%d"

// WrapperName derives the wrapper name for a cross-component import.
func WrapperName(funcIdx uint32) string {
	return fmt.Sprintf(WrapperNameFormat, funcIdx)
}

// Wrapper is one synthesized boundary function, ready for emission.
type Wrapper struct {
	Name    string
	FuncIdx uint32 // imported function this wrapper targets
	Type    wasm.FuncType
	Body    []byte

	Lower []*codec.LowerOp // per canonical parameter
	Lift  []*codec.LiftOp  // per canonical result
}

// Generator synthesizes wrappers for cross-component imports. Failures are
// isolated per wrapper: an unsupported type suppresses that wrapper and
// records a blocking diagnostic, while the remaining imports still generate.
type Generator struct {
	mod  *wasm.Module
	bag  *diag.Bag
	jobs int
}

// NewGenerator creates a Generator over the module. jobs bounds the
// parallelism of GenerateAll; values below 1 mean unbounded.
func NewGenerator(m *wasm.Module, bag *diag.Bag, jobs int) *Generator {
	return &Generator{mod: m, bag: bag, jobs: jobs}
}

// Generate synthesizes the wrapper for one cross-component import. It
// returns nil when any parameter or result cannot be planned; the failure
// is recorded in the bag and the caller must not emit a partial wrapper.
func (g *Generator) Generate(rec ImportRecord) *Wrapper {
	if !rec.Cross || rec.Canon == nil {
		return nil
	}

	w := &Wrapper{
		Name:    WrapperName(rec.FuncIdx),
		FuncIdx: rec.FuncIdx,
		Type:    rec.Core,
	}

	failed := false
	for pos, pt := range rec.Canon.Params {
		op, err := codec.PlanLower(pt)
		if err != nil {
			g.bag.Add(diag.UnsupportedLower(pt.Kind.TypeName(), rec.FuncIdx, pos))
			failed = true
			continue
		}
		w.Lower = append(w.Lower, op)
	}
	for pos, rt := range rec.Canon.Results {
		op, err := codec.PlanLift(rt)
		if err != nil {
			g.bag.Add(diag.UnsupportedLift(rt.Kind.TypeName(), rec.FuncIdx, pos))
			failed = true
			continue
		}
		w.Lift = append(w.Lift, op)
	}
	if failed {
		return nil
	}

	w.Body = wasm.ForwardingBody(rec.Core, rec.FuncIdx)
	return w
}

// GenerateAll synthesizes wrappers for every cross-component record in
// parallel, preserving record order in the result. Suppressed wrappers leave
// no gap: the returned slice holds only the wrappers that generated cleanly.
func (g *Generator) GenerateAll(records []ImportRecord) []*Wrapper {
	slots := make([]*Wrapper, len(records))

	var eg errgroup.Group
	if g.jobs > 0 {
		eg.SetLimit(g.jobs)
	}
	for i, rec := range records {
		eg.Go(func() error {
			slots[i] = g.Generate(rec)
			return nil
		})
	}
	_ = eg.Wait()

	wrappers := make([]*Wrapper, 0, len(slots))
	for _, w := range slots {
		if w != nil {
			wrappers = append(wrappers, w)
		}
	}
	g.checkCollisions(wrappers)
	return wrappers
}

// checkCollisions verifies wrapper names against the module's existing
// exports and against each other. Any clash is a blocking diagnostic.
func (g *Generator) checkCollisions(wrappers []*Wrapper) {
	seen := make(map[string]bool, len(g.mod.Exports)+len(wrappers))
	for _, exp := range g.mod.Exports {
		seen[exp.Name] = true
	}
	for _, w := range wrappers {
		if seen[w.Name] {
			g.bag.Add(diag.Collision(w.FuncIdx, fmt.Sprintf("wrapper name %q already exported", w.Name)))
			continue
		}
		seen[w.Name] = true
	}
}
