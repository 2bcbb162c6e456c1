package aot

import (
	"github.com/wippyai/wasm-aot/diag"
)

// LowerArgs applies the wrapper's lowering plan to caller-side core slots,
// producing one canonical value per parameter. Domain violations surface as
// EncodingError diagnostics keyed to the offending position; the first
// failure stops evaluation.
func (w *Wrapper) LowerArgs(slots []uint64) ([]any, *diag.Diagnostic) {
	values := make([]any, 0, len(w.Lower))
	for pos, op := range w.Lower {
		if len(slots) < op.Slots {
			d := diag.Encoding(w.FuncIdx, pos, "core argument stack exhausted")
			return nil, &d
		}
		v, err := op.Apply(slots[:op.Slots])
		if err != nil {
			d := diag.Encoding(w.FuncIdx, pos, err.Error())
			return nil, &d
		}
		values = append(values, v)
		slots = slots[op.Slots:]
	}
	if len(slots) != 0 {
		d := diag.Encoding(w.FuncIdx, len(w.Lower), "trailing core arguments")
		return nil, &d
	}
	return values, nil
}

// LiftResults applies the wrapper's lifting plan to callee-side canonical
// values, producing the caller's core result slots.
func (w *Wrapper) LiftResults(values []any) ([]uint64, *diag.Diagnostic) {
	if len(values) != len(w.Lift) {
		d := diag.Encoding(w.FuncIdx, diag.NoPosition, "result arity mismatch")
		return nil, &d
	}
	var slots []uint64
	for pos, op := range w.Lift {
		out, err := op.Apply(values[pos])
		if err != nil {
			d := diag.Encoding(w.FuncIdx, pos, err.Error())
			return nil, &d
		}
		slots = append(slots, out...)
	}
	return slots, nil
}
