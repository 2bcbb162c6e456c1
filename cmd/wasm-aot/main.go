// Package main implements the wasm-aot CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "wasm-aot",
	Short: "Ahead-of-time compiler for component modules",
	Long:  "wasm-aot compiles core wasm modules, synthesizing boundary wrappers for cross-component calls.",
}

func main() {
	rootCmd.AddCommand(buildCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
