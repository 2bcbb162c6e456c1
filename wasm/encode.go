package wasm

import (
	"github.com/wippyai/wasm-aot/wasm/internal/binary"
)

// Encode serializes the module back to binary form. Modeled sections are
// rebuilt from parsed state; unmodeled sections are re-emitted verbatim at
// their canonical position, and custom sections go last.
func (m *Module) Encode() []byte {
	w := binary.NewWriter()
	w.WriteU32LE(Magic)
	w.WriteU32LE(Version)

	raw := make(map[byte][]byte, len(m.Raw))
	for _, s := range m.Raw {
		raw[s.ID] = s.Data
	}

	for _, id := range sectionOrder {
		switch id {
		case SectionType:
			if len(m.Types) > 0 {
				writeSection(w, id, m.encodeTypeSection())
			}
		case SectionImport:
			if len(m.Imports) > 0 {
				writeSection(w, id, m.encodeImportSection())
			}
		case SectionFunction:
			if len(m.Funcs) > 0 {
				writeSection(w, id, m.encodeFunctionSection())
			}
		case SectionExport:
			if len(m.Exports) > 0 {
				writeSection(w, id, m.encodeExportSection())
			}
		case SectionCode:
			if len(m.Code) > 0 {
				writeSection(w, id, m.encodeCodeSection())
			}
		default:
			if data, ok := raw[id]; ok {
				writeSection(w, id, data)
			}
		}
	}

	for _, c := range m.Customs {
		cw := binary.NewWriter()
		cw.WriteName(c.Name)
		cw.WriteBytes(c.Data)
		writeSection(w, SectionCustom, cw.Bytes())
	}

	return w.Bytes()
}

func writeSection(w *binary.Writer, id byte, data []byte) {
	w.Byte(id)
	w.WriteU32(uint32(len(data)))
	w.WriteBytes(data)
}

func (m *Module) encodeTypeSection() []byte {
	w := binary.NewWriter()
	w.WriteU32(uint32(len(m.Types)))
	for _, ft := range m.Types {
		w.Byte(FuncTypeByte)
		w.WriteU32(uint32(len(ft.Params)))
		for _, p := range ft.Params {
			w.Byte(byte(p))
		}
		w.WriteU32(uint32(len(ft.Results)))
		for _, r := range ft.Results {
			w.Byte(byte(r))
		}
	}
	return w.Bytes()
}

func (m *Module) encodeImportSection() []byte {
	w := binary.NewWriter()
	w.WriteU32(uint32(len(m.Imports)))
	for _, imp := range m.Imports {
		w.WriteName(imp.Module)
		w.WriteName(imp.Name)
		w.Byte(imp.Kind)
		if imp.Kind == KindFunc {
			w.WriteU32(imp.TypeIdx)
		} else {
			w.WriteBytes(imp.RawDesc)
		}
	}
	return w.Bytes()
}

func (m *Module) encodeFunctionSection() []byte {
	w := binary.NewWriter()
	w.WriteU32(uint32(len(m.Funcs)))
	for _, typeIdx := range m.Funcs {
		w.WriteU32(typeIdx)
	}
	return w.Bytes()
}

func (m *Module) encodeExportSection() []byte {
	w := binary.NewWriter()
	w.WriteU32(uint32(len(m.Exports)))
	for _, exp := range m.Exports {
		w.WriteName(exp.Name)
		w.Byte(exp.Kind)
		w.WriteU32(exp.Idx)
	}
	return w.Bytes()
}

func (m *Module) encodeCodeSection() []byte {
	w := binary.NewWriter()
	w.WriteU32(uint32(len(m.Code)))
	for _, body := range m.Code {
		w.WriteU32(uint32(len(body)))
		w.WriteBytes(body)
	}
	return w.Bytes()
}
