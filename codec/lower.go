package codec

import (
	"math"

	"fortio.org/safecast"

	"github.com/wippyai/wasm-aot/canon"
	"github.com/wippyai/wasm-aot/errors"
)

// Core values use the raw-bits slot convention: every core value occupies
// one uint64 slot, with i32/f32 values zero-extended in the low 32 bits.

// LowerOp encodes caller-side core values into the canonical representation
// of one parameter. Ops are planned once per wrapper at compile time and are
// safe for concurrent use.
type LowerOp struct {
	apply func([]uint64) (any, error)
	Type  *canon.ValType
	Slots int
}

// Apply encodes the core slots into a canonical value. The value domain is
// range-checked; nothing is ever silently truncated.
func (op *LowerOp) Apply(slots []uint64) (any, error) {
	if len(slots) != op.Slots {
		return nil, errors.New(errors.PhaseLower, errors.KindInvalidData).
			CanonType(op.Type.Kind.TypeName()).
			Detail("expected %d core slots, got %d", op.Slots, len(slots)).
			Build()
	}
	return op.apply(slots)
}

// PlanLower builds the lowering op for one canonical type. String, List and
// Record are deliberate stub boundaries: planning fails before any value
// logic can run, and the caller records the failure as a diagnostic.
func PlanLower(t *canon.ValType) (*LowerOp, error) {
	switch t.Kind {
	case canon.KindString, canon.KindList, canon.KindRecord:
		return nil, errors.Unsupported(errors.PhaseLower, t.Kind.TypeName())
	}

	apply, err := lowerPrimitive(t.Kind)
	if err != nil {
		return nil, err
	}
	return &LowerOp{Type: t, Slots: 1, apply: apply}, nil
}

func lowerPrimitive(k canon.Kind) (func([]uint64) (any, error), error) {
	switch k {
	case canon.KindBool:
		return func(slots []uint64) (any, error) {
			switch slots[0] {
			case 0:
				return false, nil
			case 1:
				return true, nil
			}
			return nil, errors.New(errors.PhaseLower, errors.KindInvalidData).
				CanonType("Bool").
				Value(slots[0]).
				Detail("core value must be 0 or 1").
				Build()
		}, nil

	case canon.KindS8:
		return func(slots []uint64) (any, error) {
			v, err := slot32(slots[0], "S8", errors.PhaseLower)
			if err != nil {
				return nil, err
			}
			c, err := safecast.Conv[int8](int32(v))
			if err != nil {
				return nil, errors.Overflow(errors.PhaseLower, int32(v), "S8")
			}
			return c, nil
		}, nil

	case canon.KindU8:
		return func(slots []uint64) (any, error) {
			v, err := slot32(slots[0], "U8", errors.PhaseLower)
			if err != nil {
				return nil, err
			}
			c, err := safecast.Conv[uint8](v)
			if err != nil {
				return nil, errors.Overflow(errors.PhaseLower, v, "U8")
			}
			return c, nil
		}, nil

	case canon.KindS16:
		return func(slots []uint64) (any, error) {
			v, err := slot32(slots[0], "S16", errors.PhaseLower)
			if err != nil {
				return nil, err
			}
			c, err := safecast.Conv[int16](int32(v))
			if err != nil {
				return nil, errors.Overflow(errors.PhaseLower, int32(v), "S16")
			}
			return c, nil
		}, nil

	case canon.KindU16:
		return func(slots []uint64) (any, error) {
			v, err := slot32(slots[0], "U16", errors.PhaseLower)
			if err != nil {
				return nil, err
			}
			c, err := safecast.Conv[uint16](v)
			if err != nil {
				return nil, errors.Overflow(errors.PhaseLower, v, "U16")
			}
			return c, nil
		}, nil

	case canon.KindS32:
		return func(slots []uint64) (any, error) {
			v, err := slot32(slots[0], "S32", errors.PhaseLower)
			if err != nil {
				return nil, err
			}
			return int32(v), nil
		}, nil

	case canon.KindU32:
		return func(slots []uint64) (any, error) {
			return slot32(slots[0], "U32", errors.PhaseLower)
		}, nil

	case canon.KindS64:
		return func(slots []uint64) (any, error) {
			return int64(slots[0]), nil
		}, nil

	case canon.KindU64:
		return func(slots []uint64) (any, error) {
			return slots[0], nil
		}, nil

	case canon.KindF32:
		// Bit-pattern pass-through: NaN payloads and signed zero survive.
		return func(slots []uint64) (any, error) {
			v, err := slot32(slots[0], "F32", errors.PhaseLower)
			if err != nil {
				return nil, err
			}
			return math.Float32frombits(v), nil
		}, nil

	case canon.KindF64:
		return func(slots []uint64) (any, error) {
			return math.Float64frombits(slots[0]), nil
		}, nil

	case canon.KindChar:
		return func(slots []uint64) (any, error) {
			v, err := slot32(slots[0], "Char", errors.PhaseLower)
			if err != nil {
				return nil, err
			}
			if err := checkScalar(v, errors.PhaseLower); err != nil {
				return nil, err
			}
			return rune(v), nil
		}, nil

	default:
		return nil, errors.Unsupported(errors.PhaseLower, k.TypeName())
	}
}

// slot32 extracts a 32-bit core value, rejecting slots whose upper bits are
// set; a well-typed caller never produces those for i32/f32 slots.
func slot32(slot uint64, canonType string, phase errors.Phase) (uint32, error) {
	if slot>>32 != 0 {
		return 0, errors.Overflow(phase, slot, canonType)
	}
	return uint32(slot), nil
}

// checkScalar validates a Unicode scalar value: 0..0x10FFFF excluding the
// surrogate range.
func checkScalar(v uint32, phase errors.Phase) error {
	if v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
		return errors.InvalidScalar(phase, v)
	}
	return nil
}
