package aot

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// PlanSectionName is the custom section recording which wrappers were
// synthesized and for which imports. Runtimes and tooling read it to map
// boundary calls back to their source import without reparsing code.
const PlanSectionName = "aot-component-wrappers"

const planSchemaVersion = 1

// PlanEntry describes one emitted wrapper.
type PlanEntry struct {
	Name    string   `msgpack:"name"`
	FuncIdx uint32   `msgpack:"func_idx"`
	Params  []string `msgpack:"params"`
	Results []string `msgpack:"results"`
}

// Plan is the serialized wrapper inventory for one artifact.
type Plan struct {
	Version int         `msgpack:"version"`
	Entries []PlanEntry `msgpack:"entries"`
}

// BuildPlan collects the emitted wrappers into a Plan.
func BuildPlan(wrappers []*Wrapper) *Plan {
	p := &Plan{Version: planSchemaVersion}
	for _, w := range wrappers {
		entry := PlanEntry{Name: w.Name, FuncIdx: w.FuncIdx}
		for _, op := range w.Lower {
			entry.Params = append(entry.Params, op.Type.String())
		}
		for _, op := range w.Lift {
			entry.Results = append(entry.Results, op.Type.String())
		}
		p.Entries = append(p.Entries, entry)
	}
	return p
}

// EncodePlan serializes a Plan into custom section payload form.
func EncodePlan(p *Plan) ([]byte, error) {
	return msgpack.Marshal(p)
}

// DecodePlan parses a wrapper plan payload, rejecting unknown schema versions.
func DecodePlan(data []byte) (*Plan, error) {
	var p Plan
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode %s section: %w", PlanSectionName, err)
	}
	if p.Version != planSchemaVersion {
		return nil, fmt.Errorf("unsupported %s schema version %d", PlanSectionName, p.Version)
	}
	return &p, nil
}
