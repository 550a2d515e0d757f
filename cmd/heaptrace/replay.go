package main

import (
	"fmt"
	"os"

	"github.com/hanahabibi/malloclab/allocator"
	"github.com/hanahabibi/malloclab/trace"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newReplayCmd())
}

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Parse and replay a trace file, printing a utilization summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(args[0], false)
		},
	}
	return cmd
}

func newHeapFromFlags() (*allocator.Heap, error) {
	return allocator.NewDefaultHeap(allocator.Config{
		Growth: allocator.GrowthPolicy{
			ChunkSize:    chunkSize,
			MaxHeapBytes: maxHeapBytes,
		},
	})
}

func runReplay(path string, checkEach bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening trace file: %w", err)
	}
	defer f.Close()

	ops, err := trace.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing trace file: %w", err)
	}

	h, err := newHeapFromFlags()
	if err != nil {
		return fmt.Errorf("constructing heap: %w", err)
	}

	var res trace.Result
	if checkEach {
		res, err = trace.ReplayChecked(h, ops)
	} else {
		res, err = trace.Replay(h, ops)
	}
	if err != nil {
		printError("%v\n", err)
		return err
	}

	printInfo("ops applied:        %d\n", res.OpsApplied)
	printInfo("peak allocated:     %d bytes\n", res.Peak.Allocated)
	printInfo("peak free:          %d bytes\n", res.Peak.Free)
	printInfo("peak span:          %d bytes\n", res.Peak.Span)
	if res.Final.OK() {
		printInfo("checker:            clean\n")
	} else {
		printInfo("checker:            %d violation(s)\n", len(res.Final.Violations))
	}

	if !res.Final.OK() {
		return res.Final.Err()
	}
	return nil
}
