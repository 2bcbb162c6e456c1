package codec

import (
	"math"

	"github.com/wippyai/wasm-aot/canon"
	"github.com/wippyai/wasm-aot/errors"
)

// LiftOp decodes a canonical value back into caller-side core slots for one
// result. It is the bit-for-bit inverse of the matching LowerOp, with the
// same range and scalar checks applied to the canonical-side value.
type LiftOp struct {
	apply func(any) ([]uint64, error)
	Type  *canon.ValType
	Slots int
}

// Apply decodes a canonical value into core slots.
func (op *LiftOp) Apply(value any) ([]uint64, error) {
	return op.apply(value)
}

// PlanLift builds the lifting op for one canonical type. String, List and
// Record fail with the same stub policy as PlanLower.
func PlanLift(t *canon.ValType) (*LiftOp, error) {
	switch t.Kind {
	case canon.KindString, canon.KindList, canon.KindRecord:
		return nil, errors.Unsupported(errors.PhaseLift, t.Kind.TypeName())
	}

	apply, err := liftPrimitive(t.Kind)
	if err != nil {
		return nil, err
	}
	return &LiftOp{Type: t, Slots: 1, apply: apply}, nil
}

func liftPrimitive(k canon.Kind) (func(any) ([]uint64, error), error) {
	switch k {
	case canon.KindBool:
		return func(value any) ([]uint64, error) {
			v, ok := value.(bool)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseLift, value, "Bool")
			}
			if v {
				return []uint64{1}, nil
			}
			return []uint64{0}, nil
		}, nil

	case canon.KindS8:
		return func(value any) ([]uint64, error) {
			v, ok := value.(int8)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseLift, value, "S8")
			}
			return []uint64{uint64(uint32(int32(v)))}, nil
		}, nil

	case canon.KindU8:
		return func(value any) ([]uint64, error) {
			v, ok := value.(uint8)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseLift, value, "U8")
			}
			return []uint64{uint64(v)}, nil
		}, nil

	case canon.KindS16:
		return func(value any) ([]uint64, error) {
			v, ok := value.(int16)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseLift, value, "S16")
			}
			return []uint64{uint64(uint32(int32(v)))}, nil
		}, nil

	case canon.KindU16:
		return func(value any) ([]uint64, error) {
			v, ok := value.(uint16)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseLift, value, "U16")
			}
			return []uint64{uint64(v)}, nil
		}, nil

	case canon.KindS32:
		return func(value any) ([]uint64, error) {
			v, ok := value.(int32)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseLift, value, "S32")
			}
			return []uint64{uint64(uint32(v))}, nil
		}, nil

	case canon.KindU32:
		return func(value any) ([]uint64, error) {
			v, ok := value.(uint32)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseLift, value, "U32")
			}
			return []uint64{uint64(v)}, nil
		}, nil

	case canon.KindS64:
		return func(value any) ([]uint64, error) {
			v, ok := value.(int64)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseLift, value, "S64")
			}
			return []uint64{uint64(v)}, nil
		}, nil

	case canon.KindU64:
		return func(value any) ([]uint64, error) {
			v, ok := value.(uint64)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseLift, value, "U64")
			}
			return []uint64{v}, nil
		}, nil

	case canon.KindF32:
		// Bit-pattern pass-through, no normalization.
		return func(value any) ([]uint64, error) {
			v, ok := value.(float32)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseLift, value, "F32")
			}
			return []uint64{uint64(math.Float32bits(v))}, nil
		}, nil

	case canon.KindF64:
		return func(value any) ([]uint64, error) {
			v, ok := value.(float64)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseLift, value, "F64")
			}
			return []uint64{math.Float64bits(v)}, nil
		}, nil

	case canon.KindChar:
		return func(value any) ([]uint64, error) {
			v, ok := value.(rune)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseLift, value, "Char")
			}
			if v < 0 {
				return nil, errors.InvalidScalar(errors.PhaseLift, uint32(v))
			}
			if err := checkScalar(uint32(v), errors.PhaseLift); err != nil {
				return nil, err
			}
			return []uint64{uint64(uint32(v))}, nil
		}, nil

	default:
		return nil, errors.Unsupported(errors.PhaseLift, k.TypeName())
	}
}
