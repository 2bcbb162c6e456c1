package wasm

import (
	"fmt"

	"github.com/wippyai/wasm-aot/canon"
	"github.com/wippyai/wasm-aot/wasm/internal/binary"
)

// LinkSectionName is the custom section carrying component linking metadata:
// a canonical signature table plus per-import marks recorded by the component
// linker.
const LinkSectionName = "component-link"

// linkSectionVersion is the supported metadata schema version.
const linkSectionVersion byte = 1

// ImportMark annotates one imported function with its canonical signature
// and whether the link step resolved it outside the owning component.
type ImportMark struct {
	FuncIdx uint32
	TypeIdx uint32
	Cross   bool
}

// LinkInfo is the decoded component linking metadata.
type LinkInfo struct {
	Types []*canon.FuncType
	Marks []ImportMark
}

// Mark returns the mark for an imported function, if one was recorded.
func (li *LinkInfo) Mark(funcIdx uint32) (ImportMark, bool) {
	for _, m := range li.Marks {
		if m.FuncIdx == funcIdx {
			return m, true
		}
	}
	return ImportMark{}, false
}

// EncodeLinkInfo serializes linking metadata into custom section payload form.
func EncodeLinkInfo(li *LinkInfo) ([]byte, error) {
	w := binary.NewWriter()
	w.Byte(linkSectionVersion)

	w.WriteU32(uint32(len(li.Types)))
	for i, ft := range li.Types {
		w.WriteU32(uint32(len(ft.Params)))
		for _, p := range ft.Params {
			if err := writeCanonType(w, p); err != nil {
				return nil, fmt.Errorf("type %d: %w", i, err)
			}
		}
		w.WriteU32(uint32(len(ft.Results)))
		for _, r := range ft.Results {
			if err := writeCanonType(w, r); err != nil {
				return nil, fmt.Errorf("type %d: %w", i, err)
			}
		}
	}

	w.WriteU32(uint32(len(li.Marks)))
	for _, m := range li.Marks {
		w.WriteU32(m.FuncIdx)
		w.WriteU32(m.TypeIdx)
		if m.Cross {
			w.Byte(1)
		} else {
			w.Byte(0)
		}
	}
	return w.Bytes(), nil
}

// DecodeLinkInfo parses a component-link custom section payload.
func DecodeLinkInfo(data []byte) (*LinkInfo, error) {
	r := binary.NewReader(data)

	version, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if version != linkSectionVersion {
		return nil, fmt.Errorf("unsupported %s section version %d", LinkSectionName, version)
	}

	li := &LinkInfo{}

	typeCount, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < typeCount; i++ {
		ft := &canon.FuncType{}
		paramCount, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		for j := uint32(0); j < paramCount; j++ {
			t, err := readCanonType(r)
			if err != nil {
				return nil, fmt.Errorf("type %d: %w", i, err)
			}
			ft.Params = append(ft.Params, t)
		}
		resultCount, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		for j := uint32(0); j < resultCount; j++ {
			t, err := readCanonType(r)
			if err != nil {
				return nil, fmt.Errorf("type %d: %w", i, err)
			}
			ft.Results = append(ft.Results, t)
		}
		li.Types = append(li.Types, ft)
	}

	markCount, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < markCount; i++ {
		var m ImportMark
		if m.FuncIdx, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if m.TypeIdx, err = r.ReadU32(); err != nil {
			return nil, err
		}
		cross, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		m.Cross = cross != 0
		li.Marks = append(li.Marks, m)
	}

	if r.Remaining() != 0 {
		return nil, fmt.Errorf("%d trailing bytes in %s section", r.Remaining(), LinkSectionName)
	}
	return li, nil
}

func writeCanonType(w *binary.Writer, t *canon.ValType) error {
	w.Byte(byte(t.Kind))
	switch t.Kind {
	case canon.KindList:
		return writeCanonType(w, t.Elem)
	case canon.KindRecord:
		w.WriteU32(uint32(len(t.Fields)))
		for _, f := range t.Fields {
			w.WriteName(f.Name)
			if err := writeCanonType(w, f.Type); err != nil {
				return err
			}
		}
	}
	return nil
}

func readCanonType(r *binary.Reader) (*canon.ValType, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	k := canon.Kind(tag)
	switch {
	case k.IsPrimitive():
		return canon.Primitive(k), nil
	case k == canon.KindString:
		return canon.String(), nil
	case k == canon.KindList:
		elem, err := readCanonType(r)
		if err != nil {
			return nil, err
		}
		return canon.ListOf(elem), nil
	case k == canon.KindRecord:
		count, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		fields := make([]canon.Field, count)
		for i := range fields {
			name, err := r.ReadName()
			if err != nil {
				return nil, err
			}
			ft, err := readCanonType(r)
			if err != nil {
				return nil, err
			}
			fields[i] = canon.Field{Name: name, Type: ft}
		}
		return canon.RecordOf(fields...), nil
	default:
		return nil, fmt.Errorf("unknown canonical type tag 0x%02X", tag)
	}
}
