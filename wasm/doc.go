// Package wasm decodes and encodes core WebAssembly modules at the level the
// ahead-of-time compiler needs: type, import, function, export and code
// sections are fully modeled, while everything else round-trips as raw bytes.
//
// The package also defines the "component-link" custom section, which carries
// the canonical signature table and per-import marks produced by the
// component linker.
package wasm
