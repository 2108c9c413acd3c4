package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/arena/printer"
)

var (
	// Global flags
	jsonOut  bool
	heapSize int
)

// Overridden at build time via -ldflags.
var (
	version = "0.1.0"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "arenactl",
	Short: "Exercise and inspect a fixed-size heap arena",
	Long: `arenactl runs allocation workloads against an in-process heap arena and
prints the resulting block layout. It exists for exploring allocator behavior:
best-fit placement, block splitting, and coalescing on free.`,
	Version: version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"arenactl {{.Version}} (commit %s, built %s)\n", commit, date))
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		IntVar(&heapSize, "size", 4096, "Requested arena size in bytes (rounded up to whole pages)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printHeap dumps the arena's block list using the global output format.
func printHeap(a *arena.Arena) error {
	opts := printer.DefaultOptions()
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return printer.New(a, os.Stdout, opts).PrintBlocks()
}
