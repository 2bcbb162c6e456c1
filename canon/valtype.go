package canon

import "strings"

// ValType describes one canonical value type. Values are immutable once
// constructed and shared by reference; nothing downstream mutates them.
type ValType struct {
	Kind   Kind
	Elem   *ValType // list element, nil otherwise
	Fields []Field  // record fields in declaration order, nil otherwise
}

// Field is one named record field.
type Field struct {
	Name string
	Type *ValType
}

var primitives = func() [KindChar + 1]*ValType {
	var p [KindChar + 1]*ValType
	for k := KindBool; k <= KindChar; k++ {
		p[k] = &ValType{Kind: k}
	}
	return p
}()

// Primitive returns the shared ValType for a primitive kind.
// It panics for composite kinds; those carry structure and are built
// with ListOf/RecordOf.
func Primitive(k Kind) *ValType {
	if !k.IsPrimitive() {
		panic("canon: Primitive called with composite kind " + k.String())
	}
	return primitives[k]
}

var stringType = &ValType{Kind: KindString}

// String returns the shared canonical string type.
func String() *ValType { return stringType }

// ListOf returns a list type with the given element type.
func ListOf(elem *ValType) *ValType {
	return &ValType{Kind: KindList, Elem: elem}
}

// RecordOf returns a record type with the given fields.
func RecordOf(fields ...Field) *ValType {
	return &ValType{Kind: KindRecord, Fields: fields}
}

func (t *ValType) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case KindList:
		return "list<" + t.Elem.String() + ">"
	case KindRecord:
		var b strings.Builder
		b.WriteString("record{")
		for i, f := range t.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Name)
			b.WriteString(": ")
			b.WriteString(f.Type.String())
		}
		b.WriteByte('}')
		return b.String()
	default:
		return t.Kind.String()
	}
}

// FuncType is the component-level signature of one cross-component import:
// ordered parameter and result canonical types.
type FuncType struct {
	Params  []*ValType
	Results []*ValType
}
