// Package codec implements the Canonical ABI value codec: caller-side
// encoding (lower) and decoding (lift) of values crossing a component
// boundary.
//
// # Slot convention
//
// Core values use the raw-bits convention: each core value occupies one
// uint64 slot, with i32 and f32 values zero-extended in the low 32 bits.
//
// # Semantics
//
//	Type        Lower (core -> canonical)        Lift (canonical -> core)
//	─────────────────────────────────────────────────────────────────────
//	bool        0/1 only, else error             false/true -> 0/1
//	s8..u64     range-checked narrowing          width-exact widening
//	f32, f64    bit-pattern pass-through         bit-pattern pass-through
//	char        Unicode scalar validation        same validation, mirrored
//	string      UnsupportedCanonicalType         UnsupportedCanonicalType
//	list<T>     UnsupportedCanonicalType         UnsupportedCanonicalType
//	record      UnsupportedCanonicalType         UnsupportedCanonicalType
//
// Range checks never truncate silently: lowering core value 256 into a
// canonical u8 is an error, not a wrap. Float transfers preserve NaN
// payloads and signed zero. For every supported type, Lift is the
// bit-for-bit inverse of Lower over the legal value domain.
//
// # Stub boundary
//
// String, list and record fail at planning time, before any value logic
// runs. The aggregate layout rules and host memory ownership convention
// for these encodings are not fixed upstream yet; failing closed keeps a
// miscomputed translation from ever reaching an emitted artifact.
//
// # Planning
//
// PlanLower/PlanLift build one op per parameter or result at wrapper
// generation time. Planned ops are immutable and safe for concurrent use.
package codec
