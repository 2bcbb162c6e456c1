package diag

import "fmt"

// Code identifies a diagnostic category.
type Code string

const (
	ClassificationError      Code = "ClassificationError"
	UnsupportedCanonicalType Code = "UnsupportedCanonicalType"
	EncodingError            Code = "EncodingError"
	NameCollision            Code = "NameCollision"
)

// Severity decides whether a diagnostic bars artifact emission.
type Severity uint8

const (
	SeverityAdvisory Severity = iota
	SeverityBlocking
)

func (s Severity) String() string {
	if s == SeverityBlocking {
		return "error"
	}
	return "warning"
}

// Severity returns the fixed severity of a code. Only classification
// fallbacks are advisory; everything else blocks the artifact.
func (c Code) Severity() Severity {
	if c == ClassificationError {
		return SeverityAdvisory
	}
	return SeverityBlocking
}

// NoPosition marks a diagnostic that has no parameter/result position,
// e.g. classification-level failures.
const NoPosition = -1

// Diagnostic is one structured failure. Detail carries the full
// build-log text; external tooling greps these lines, so the wording in
// the constructors below is load-bearing and must stay stable.
type Diagnostic struct {
	Detail   string
	Code     Code
	FuncIdx  uint32
	Position int
}

// Blocking reports whether this diagnostic bars artifact emission.
func (d Diagnostic) Blocking() bool {
	return d.Code.Severity() == SeverityBlocking
}

func (d Diagnostic) String() string {
	return d.Detail
}

// Detected renders the classification success line for the build log.
func Detected(funcIdx uint32) string {
	return fmt.Sprintf("AOT: Detected cross-component call for import func_idx=%d", funcIdx)
}

// UnsupportedLower reports a canonical type the lowering engine does not
// implement yet.
func UnsupportedLower(typeName string, funcIdx uint32, position int) Diagnostic {
	return Diagnostic{
		Code:     UnsupportedCanonicalType,
		FuncIdx:  funcIdx,
		Position: position,
		Detail:   fmt.Sprintf("%s LOWER not yet implemented for func_idx=%d, position=%d", typeName, funcIdx, position),
	}
}

// UnsupportedLift reports a canonical type the lifting engine does not
// implement yet.
func UnsupportedLift(typeName string, funcIdx uint32, position int) Diagnostic {
	return Diagnostic{
		Code:     UnsupportedCanonicalType,
		FuncIdx:  funcIdx,
		Position: position,
		Detail:   fmt.Sprintf("%s LIFT not yet implemented for func_idx=%d, position=%d", typeName, funcIdx, position),
	}
}

// Encoding reports a value outside the legal domain of its declared
// canonical type.
func Encoding(funcIdx uint32, position int, detail string) Diagnostic {
	return Diagnostic{
		Code:     EncodingError,
		FuncIdx:  funcIdx,
		Position: position,
		Detail:   fmt.Sprintf("encoding failed for func_idx=%d, position=%d: %s", funcIdx, position, detail),
	}
}

// Classification reports malformed linking metadata. The import degrades
// to an ordinary host import, so this is advisory.
func Classification(funcIdx uint32, detail string) Diagnostic {
	return Diagnostic{
		Code:     ClassificationError,
		FuncIdx:  funcIdx,
		Position: NoPosition,
		Detail:   fmt.Sprintf("malformed linking metadata for import func_idx=%d: %s", funcIdx, detail),
	}
}

// Collision reports two wrappers resolving to the same name or index.
// Index-derived naming makes this unreachable on valid input; it signals
// a compiler defect and is always fatal.
func Collision(funcIdx uint32, detail string) Diagnostic {
	return Diagnostic{
		Code:     NameCollision,
		FuncIdx:  funcIdx,
		Position: NoPosition,
		Detail:   fmt.Sprintf("wrapper name collision for func_idx=%d: %s", funcIdx, detail),
	}
}
