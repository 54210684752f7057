package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gomorph",
		Short: "DOM reconciliation for Go",
		Long: `Gomorph builds virtual node trees, materializes them into a live
DOM and reconciles live trees against fresh descriptions in place.

The CLI hosts a live-view demo server, renders descriptions to
static HTML and benchmarks the reconciler against synthetic
workloads.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		renderCmd(),
		benchCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
