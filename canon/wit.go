package canon

import (
	"fmt"

	"go.bytecodealliance.org/wit"
)

// FromWIT converts a resolved WIT type into the closed canonical set.
// WIT kinds outside the set (variants, options, resources, ...) are rejected
// so nothing downstream has to re-validate.
func FromWIT(t wit.Type) (*ValType, error) {
	switch v := t.(type) {
	case wit.Bool:
		return Primitive(KindBool), nil
	case wit.S8:
		return Primitive(KindS8), nil
	case wit.U8:
		return Primitive(KindU8), nil
	case wit.S16:
		return Primitive(KindS16), nil
	case wit.U16:
		return Primitive(KindU16), nil
	case wit.S32:
		return Primitive(KindS32), nil
	case wit.U32:
		return Primitive(KindU32), nil
	case wit.S64:
		return Primitive(KindS64), nil
	case wit.U64:
		return Primitive(KindU64), nil
	case wit.F32:
		return Primitive(KindF32), nil
	case wit.F64:
		return Primitive(KindF64), nil
	case wit.Char:
		return Primitive(KindChar), nil
	case wit.String:
		return String(), nil
	case *wit.TypeDef:
		return fromWITTypeDef(v)
	default:
		return nil, fmt.Errorf("canon: no canonical mapping for WIT type %T", t)
	}
}

func fromWITTypeDef(td *wit.TypeDef) (*ValType, error) {
	if td == nil || td.Kind == nil {
		return nil, fmt.Errorf("canon: nil WIT typedef")
	}
	switch kind := td.Kind.(type) {
	case *wit.List:
		elem, err := FromWIT(kind.Type)
		if err != nil {
			return nil, err
		}
		return ListOf(elem), nil
	case *wit.Record:
		fields := make([]Field, 0, len(kind.Fields))
		for _, f := range kind.Fields {
			ft, err := FromWIT(f.Type)
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Name: f.Name, Type: ft})
		}
		return RecordOf(fields...), nil
	case wit.Type:
		// Primitive wrapped in a typedef (named alias).
		return FromWIT(kind)
	default:
		return nil, fmt.Errorf("canon: no canonical mapping for WIT typedef kind %T", td.Kind)
	}
}

// FuncTypeFromWIT converts ordered WIT parameter and result types.
func FuncTypeFromWIT(params, results []wit.Type) (*FuncType, error) {
	ft := &FuncType{
		Params:  make([]*ValType, 0, len(params)),
		Results: make([]*ValType, 0, len(results)),
	}
	for i, p := range params {
		vt, err := FromWIT(p)
		if err != nil {
			return nil, fmt.Errorf("param %d: %w", i, err)
		}
		ft.Params = append(ft.Params, vt)
	}
	for i, r := range results {
		vt, err := FromWIT(r)
		if err != nil {
			return nil, fmt.Errorf("result %d: %w", i, err)
		}
		ft.Results = append(ft.Results, vt)
	}
	return ft, nil
}
