// Package wasmaot is an ahead-of-time compiler for WebAssembly modules that
// participate in a multi-component application.
//
// The compiler takes a core module plus the component linker's metadata,
// decides for every imported function whether the call crosses a component
// boundary, and synthesizes an exported wrapper function for each call that
// does. Wrappers apply the canonical ABI to the call's parameters and
// results; their inventory rides in the artifact as a custom section so the
// runtime can route boundary calls without reparsing code.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct
// responsibilities:
//
//	wasm-aot/
//	├── compile/   Pipeline driver: decode, classify, generate, emit
//	├── aot/       Import classification and wrapper synthesis
//	├── canon/     Canonical type model, WIT mapping, core flattening
//	├── codec/     Value lowering and lifting with exact range semantics
//	├── diag/      Advisory and blocking diagnostics
//	├── wasm/      Core module decoding and encoding
//	├── errors/    Structured error types for debugging
//	└── cmd/       The wasm-aot command line tool
//
// # Quick Start
//
// Compile a module:
//
//	res, err := compile.Compile(moduleBytes, compile.Options{Component: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Blocked() {
//	    for _, d := range res.Diagnostics {
//	        fmt.Println(d)
//	    }
//	    return
//	}
//	os.WriteFile("app.aot.wasm", res.Artifact, 0o644)
//
// # Diagnostics
//
// The boundary pass never panics on bad input. Malformed linking metadata
// degrades the affected import to an ordinary host call with an advisory
// diagnostic. Unsupported canonical types, value-domain violations and name
// collisions are blocking: the run completes, every finding is reported, and
// no artifact is produced.
package wasmaot
