package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
)

var (
	genCount int64
	genSeed  int64
)

func init() {
	cmd := newGenCmd()
	cmd.Flags().Int64VarP(&genCount, "count", "n", 1000, "number of live ids to cycle through")
	cmd.Flags().Int64Var(&genSeed, "seed", 1, "PRNG seed, for reproducible traces")
	rootCmd.AddCommand(cmd)
}

func newGenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen",
		Short: "Emit a synthetic alloc/free/realloc trace to stdout",
		Long: `gen writes a small synthetic trace suitable for feeding to replay or
check, without needing a fixture file on disk. Each id is allocated once,
optionally reallocated, and eventually freed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(os.Stdout)
		},
	}
}

func runGen(w *os.File) error {
	rng := rand.New(rand.NewSource(genSeed))
	out := bufio.NewWriter(w)
	defer out.Flush()

	live := make([]int, 0, genCount)
	for id := int64(0); id < genCount; id++ {
		size := 1 + rng.Intn(512)
		fmt.Fprintf(out, "a %d %d\n", id, size)
		live = append(live, int(id))

		if rng.Intn(3) == 0 {
			newSize := 1 + rng.Intn(1024)
			fmt.Fprintf(out, "r %d %d\n", id, newSize)
		}

		if rng.Intn(4) == 0 && len(live) > 0 {
			idx := rng.Intn(len(live))
			fmt.Fprintf(out, "f %d\n", live[idx])
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
		}
	}

	for _, id := range live {
		fmt.Fprintf(out, "f %d\n", id)
	}
	return nil
}
