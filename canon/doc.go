// Package canon defines the canonical type model the compiler operates on:
// the closed set of value types, their flattening to core wasm slots, and
// the mapping from resolved WIT types into the set.
package canon
