package wasm

import (
	"errors"
	"fmt"
	"io"

	"github.com/wippyai/wasm-aot/wasm/internal/binary"
)

// Parsing errors returned by ParseModule.
var (
	ErrInvalidMagic   = errors.New("invalid wasm magic number")
	ErrInvalidVersion = errors.New("invalid wasm version")
)

// ParseModule parses a WebAssembly binary module.
func ParseModule(data []byte) (*Module, error) {
	r := binary.NewReader(data)

	magic, err := r.ReadU32LE()
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	if magic != Magic {
		return nil, ErrInvalidMagic
	}

	version, err := r.ReadU32LE()
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	if version != Version {
		return nil, ErrInvalidVersion
	}

	m := &Module{}

	for {
		sectionID, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("section header: %w", err)
		}

		sectionSize, err := r.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("section size: %w", err)
		}
		sectionData, err := r.ReadBytes(int(sectionSize))
		if err != nil {
			return nil, fmt.Errorf("section data: %w", err)
		}

		sr := binary.NewReader(sectionData)

		switch sectionID {
		case SectionCustom:
			if err := parseCustomSection(sr, m); err != nil {
				return nil, fmt.Errorf("custom section: %w", err)
			}
		case SectionType:
			if err := parseTypeSection(sr, m); err != nil {
				return nil, fmt.Errorf("type section: %w", err)
			}
		case SectionImport:
			if err := parseImportSection(sr, m); err != nil {
				return nil, fmt.Errorf("import section: %w", err)
			}
		case SectionFunction:
			if err := parseFunctionSection(sr, m); err != nil {
				return nil, fmt.Errorf("function section: %w", err)
			}
		case SectionExport:
			if err := parseExportSection(sr, m); err != nil {
				return nil, fmt.Errorf("export section: %w", err)
			}
		case SectionCode:
			if err := parseCodeSection(sr, m); err != nil {
				return nil, fmt.Errorf("code section: %w", err)
			}
		default:
			if sectionID > SectionTag {
				return nil, fmt.Errorf("unknown section id %d", sectionID)
			}
			m.Raw = append(m.Raw, RawSection{ID: sectionID, Data: sectionData})
		}
	}

	if len(m.Code) != len(m.Funcs) {
		return nil, fmt.Errorf("code entries (%d) do not match declared functions (%d)", len(m.Code), len(m.Funcs))
	}

	return m, nil
}

func parseCustomSection(r *binary.Reader, m *Module) error {
	name, err := r.ReadName()
	if err != nil {
		return err
	}
	data, err := r.ReadBytes(r.Remaining())
	if err != nil {
		return err
	}
	m.Customs = append(m.Customs, CustomSection{Name: name, Data: data})
	return nil
}

func parseTypeSection(r *binary.Reader, m *Module) error {
	count, err := r.ReadU32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		form, err := r.ReadByte()
		if err != nil {
			return err
		}
		if form != FuncTypeByte {
			return fmt.Errorf("type %d: unsupported type form 0x%02X", i, form)
		}
		params, err := readValTypes(r)
		if err != nil {
			return err
		}
		results, err := readValTypes(r)
		if err != nil {
			return err
		}
		m.Types = append(m.Types, FuncType{Params: params, Results: results})
	}
	return nil
}

func readValTypes(r *binary.Reader) ([]ValType, error) {
	count, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	types := make([]ValType, count)
	for i := range types {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		switch ValType(b) {
		case ValI32, ValI64, ValF32, ValF64:
			types[i] = ValType(b)
		default:
			return nil, fmt.Errorf("unsupported value type 0x%02X", b)
		}
	}
	return types, nil
}

func parseImportSection(r *binary.Reader, m *Module) error {
	count, err := r.ReadU32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		module, err := r.ReadName()
		if err != nil {
			return err
		}
		name, err := r.ReadName()
		if err != nil {
			return err
		}
		kind, err := r.ReadByte()
		if err != nil {
			return err
		}

		imp := Import{Module: module, Name: name, Kind: kind}
		switch kind {
		case KindFunc:
			imp.TypeIdx, err = r.ReadU32()
			if err != nil {
				return err
			}
		case KindTable, KindMemory, KindGlobal:
			imp.RawDesc, err = readImportDesc(r, kind)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("import %d: unsupported kind 0x%02X", i, kind)
		}
		m.Imports = append(m.Imports, imp)
	}
	return nil
}

// readImportDesc consumes a non-func import descriptor, returning its raw
// bytes so the encoder can pass it through unchanged.
func readImportDesc(r *binary.Reader, kind byte) ([]byte, error) {
	start := r.Position()

	if kind == KindTable || kind == KindGlobal {
		// reftype for tables, valtype for globals
		if _, err := r.ReadByte(); err != nil {
			return nil, err
		}
	}

	if kind == KindGlobal {
		// mutability flag
		if _, err := r.ReadByte(); err != nil {
			return nil, err
		}
	} else {
		// limits: flag, min, optional max
		flag, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		if _, err := r.ReadU32(); err != nil {
			return nil, err
		}
		if flag == 0x01 {
			if _, err := r.ReadU32(); err != nil {
				return nil, err
			}
		}
	}

	return r.Slice(start, r.Position())
}

func parseFunctionSection(r *binary.Reader, m *Module) error {
	count, err := r.ReadU32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		typeIdx, err := r.ReadU32()
		if err != nil {
			return err
		}
		m.Funcs = append(m.Funcs, typeIdx)
	}
	return nil
}

func parseExportSection(r *binary.Reader, m *Module) error {
	count, err := r.ReadU32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		name, err := r.ReadName()
		if err != nil {
			return err
		}
		kind, err := r.ReadByte()
		if err != nil {
			return err
		}
		idx, err := r.ReadU32()
		if err != nil {
			return err
		}
		m.Exports = append(m.Exports, Export{Name: name, Kind: kind, Idx: idx})
	}
	return nil
}

func parseCodeSection(r *binary.Reader, m *Module) error {
	count, err := r.ReadU32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		size, err := r.ReadU32()
		if err != nil {
			return err
		}
		body, err := r.ReadBytes(int(size))
		if err != nil {
			return err
		}
		m.Code = append(m.Code, body)
	}
	return nil
}
