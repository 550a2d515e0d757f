package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	quiet        bool
	chunkSize    uint32
	maxHeapBytes uint32
)

var rootCmd = &cobra.Command{
	Use:   "heaptrace",
	Short: "Replay malloc trace files against the explicit free-list allocator",
	Long: `heaptrace drives an allocator.Heap with a stream of alloc/free/realloc
tuples read from a trace file, the same way a malloc-lab reference driver
would, and reports utilization and heap-invariant check results.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().
		Uint32Var(&chunkSize, "chunk-size", 4096, "bytes requested per heap growth step")
	rootCmd.PersistentFlags().
		Uint32Var(&maxHeapBytes, "max-heap", 1<<20, "maximum bytes the region may grow to")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}
