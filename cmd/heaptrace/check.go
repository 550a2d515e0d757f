package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Replay a trace file, running a full heap check after every op",
		Long: `check behaves like replay, but runs a full allocator invariant check
after every operation rather than only at the end, and exits non-zero on
the first violation found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(args[0], true)
		},
	}
	return cmd
}
