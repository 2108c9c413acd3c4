package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/arena/alloc"
)

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a fixed workload showing splits and coalescing",
		Long: `The demo command allocates three blocks, then frees them middle-first,
dumping the heap after each step. The sequence exercises best-fit placement,
block splitting, and both coalescing directions.

Example:
  arenactl demo
  arenactl demo --size 8192 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	a, err := arena.New(heapSize)
	if err != nil {
		return err
	}
	defer a.Release()

	al, err := alloc.New(a)
	if err != nil {
		return err
	}

	dump := func(label string) error {
		fmt.Printf("== %s\n", label)
		return printHeap(a)
	}

	if err := dump("init"); err != nil {
		return err
	}

	var refs [3]alloc.Ref
	for i, size := range []int32{50, 60, 50} {
		ref, _, allocErr := al.Alloc(size)
		if allocErr != nil {
			return fmt.Errorf("alloc %d: %w", size, allocErr)
		}
		refs[i] = ref
		if err := dump(fmt.Sprintf("alloc %d", size)); err != nil {
			return err
		}
	}

	// Middle first: no coalescing. Then its neighbors, merging backward and
	// forward into one free block again.
	for _, i := range []int{1, 0, 2} {
		if freeErr := al.Free(refs[i]); freeErr != nil {
			return fmt.Errorf("free #%d: %w", i+1, freeErr)
		}
		if err := dump(fmt.Sprintf("free #%d", i+1)); err != nil {
			return err
		}
	}

	s := al.Stats()
	fmt.Printf("splits=%d coalesce_forward=%d coalesce_backward=%d\n",
		s.SplitCount, s.CoalesceForward, s.CoalesceBackward)
	return nil
}
