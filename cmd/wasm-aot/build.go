package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-aot/compile"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] module.wasm",
	Short: "Compile a module into an ahead-of-time artifact",
	Long:  "Compile a core wasm module, generating boundary wrappers for every import the component linker marked as cross-component.",
	Args:  cobra.ExactArgs(1),
	RunE:  buildExecution,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "artifact path (default: <input>.aot.wasm)")
	buildCmd.Flags().Bool("component", false, "enable the component boundary pass")
	buildCmd.Flags().Int("jobs", 0, "wrapper generation parallelism (0 = unbounded)")
}

func buildExecution(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	component, err := cmd.Flags().GetBool("component")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	colorValue, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}

	manifest, err := compile.LoadManifest(filepath.Join(filepath.Dir(inputPath), compile.ManifestName))
	if err != nil {
		return err
	}
	if output == "" {
		output = manifest.Output
	}
	if output == "" {
		output = strings.TrimSuffix(inputPath, ".wasm") + ".aot.wasm"
	}
	if !cmd.Flags().Changed("component") {
		component = manifest.Component
	}
	if !cmd.Flags().Changed("jobs") {
		jobs = manifest.Jobs
	}

	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
		compile.SetLogger(logger)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read module: %w", err)
	}

	res, err := compile.Compile(data, compile.Options{
		Component: component,
		Jobs:      jobs,
		BuildLog:  os.Stdout,
	})
	if err != nil {
		return err
	}

	renderDiagnostics(os.Stderr, res.Diagnostics, colorEnabled(colorValue))

	if res.Blocked() {
		return fmt.Errorf("build failed: blocking diagnostics recorded, artifact suppressed")
	}

	if err := os.WriteFile(output, res.Artifact, 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	if component {
		fmt.Printf("wrote %s (%d imports, %d cross-component, %d wrappers)\n",
			output, res.Imports, res.Cross, res.Wrappers)
	} else {
		fmt.Printf("wrote %s\n", output)
	}
	return nil
}

func colorEnabled(mode string) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stderr)
	}
}
