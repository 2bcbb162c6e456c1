package compile

import "io"

// Options configures one compilation.
type Options struct {
	// BuildLog receives the stable per-import lines tooling greps for.
	// Nil discards them.
	BuildLog io.Writer

	// Jobs bounds wrapper generation parallelism. Values below 1 mean
	// one worker per record.
	Jobs int

	// Component enables the component boundary pass. When false the
	// module is re-encoded untouched.
	Component bool
}
