package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ballast",
		Short: "Metadata-retention exerciser for Go binaries",
		Long: `Ballast forces the Go linker to retain type, member, and generic
instantiation metadata that dead-code elimination would otherwise strip.
It has no useful runtime behavior: its output is the compiled binary's
surviving metadata surface, inspected afterwards by offline analysis
tooling.`,
	}

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(reportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
