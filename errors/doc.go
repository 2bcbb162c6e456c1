// Package errors provides structured error types for the AOT compiler.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes the canonical type name, the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLower, errors.KindOverflow).
//		CanonType("U8").
//		Value(256).
//		Detail("core value out of range").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Overflow(errors.PhaseLower, 256, "U8")
//	err := errors.Unsupported(errors.PhaseLift, "String")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
