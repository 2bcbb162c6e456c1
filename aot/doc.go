// Package aot implements the component boundary stage of the ahead-of-time
// compiler: classifying imported functions as intra- or cross-component,
// synthesizing uniquely named wrapper functions for the cross-component
// ones, and recording the wrapper inventory in a custom section.
//
// Classification is fail-open: broken linking metadata degrades an import to
// intra-component with an advisory diagnostic. Generation is fail-closed: a
// wrapper that cannot be fully planned is suppressed and its failure is
// blocking, so no partial boundary code ever reaches an artifact.
package aot
