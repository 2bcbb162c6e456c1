package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in compilation the error occurred
type Phase string

const (
	PhaseParse    Phase = "parse"    // module/metadata decoding
	PhaseClassify Phase = "classify" // import classification
	PhaseLower    Phase = "lower"    // canonical lowering
	PhaseLift     Phase = "lift"     // canonical lifting
	PhaseGenerate Phase = "generate" // wrapper synthesis
	PhaseEmit     Phase = "emit"     // artifact encoding
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupported   Kind = "unsupported"
	KindOverflow      Kind = "overflow"
	KindInvalidScalar Kind = "invalid_scalar"
	KindTypeMismatch  Kind = "type_mismatch"
	KindBadMetadata   Kind = "bad_metadata"
	KindNameCollision Kind = "name_collision"
	KindInvalidData   Kind = "invalid_data"
)

// Error is the structured error type used throughout the compiler
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	CanonType string
	Detail    string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.CanonType != "" {
		b.WriteString(": canonical type ")
		b.WriteString(e.CanonType)
	}

	if e.Detail != "" {
		if e.CanonType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// CanonType sets the canonical type name
func (b *Builder) CanonType(t string) *Builder {
	b.err.CanonType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Unsupported reports a canonical type the codec does not implement yet
func Unsupported(phase Phase, canonType string) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindUnsupported,
		CanonType: canonType,
		Detail:    "not yet implemented",
	}
}

// Overflow reports a value outside its declared canonical width
func Overflow(phase Phase, value any, canonType string) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindOverflow,
		CanonType: canonType,
		Detail:    fmt.Sprintf("value %v does not fit %s", value, canonType),
		Value:     value,
	}
}

// InvalidScalar reports a char value outside the Unicode scalar range
func InvalidScalar(phase Phase, value uint32) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindInvalidScalar,
		CanonType: "Char",
		Detail:    fmt.Sprintf("0x%X is not a Unicode scalar value", value),
		Value:     value,
	}
}

// TypeMismatch reports a value whose representation does not match its
// declared canonical type
func TypeMismatch(phase Phase, value any, canonType string) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindTypeMismatch,
		CanonType: canonType,
		Detail:    fmt.Sprintf("%T is not a valid representation", value),
		Value:     value,
	}
}

// BadMetadata reports malformed component linking metadata
func BadMetadata(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseClassify,
		Kind:   KindBadMetadata,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// NameCollision reports two wrappers resolving to the same name or index.
// Naming is derived from the source function index, so this signals a
// programming defect rather than bad input.
func NameCollision(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseGenerate,
		Kind:   KindNameCollision,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// InvalidData reports undecodable module or section content
func InvalidData(phase Phase, detail string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}
