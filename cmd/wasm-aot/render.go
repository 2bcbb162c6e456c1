package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/wippyai/wasm-aot/diag"
)

var (
	blockingTag = color.New(color.FgRed, color.Bold)
	advisoryTag = color.New(color.FgYellow)
)

// renderDiagnostics prints one line per diagnostic: severity tag, code, and
// the stable detail string.
func renderDiagnostics(w io.Writer, diags []diag.Diagnostic, colorize bool) {
	for _, d := range diags {
		tag := advisoryTag
		label := "advisory"
		if d.Blocking() {
			tag = blockingTag
			label = "error"
		}
		if colorize {
			fmt.Fprintf(w, "%s [%s] %s\n", tag.Sprint(label), d.Code, d)
		} else {
			fmt.Fprintf(w, "%s [%s] %s\n", label, d.Code, d)
		}
	}
}
