// Package compile drives the ahead-of-time pipeline end to end: decode the
// module, classify its imports, generate component boundary wrappers, and
// emit the transformed artifact. Emission is all-or-nothing: a single
// blocking diagnostic suppresses the artifact entirely.
package compile
