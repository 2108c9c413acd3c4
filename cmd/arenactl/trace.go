package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/arena/alloc"
)

var traceDumpEach bool

func init() {
	cmd := newTraceCmd()
	cmd.Flags().BoolVar(&traceDumpEach, "dump-each", false, "Dump the heap after every operation")
	rootCmd.AddCommand(cmd)
}

func newTraceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace <script>",
		Short: "Replay an alloc/free script against a fresh arena",
		Long: `The trace command reads a script of allocator operations and replays it
against a fresh arena, printing the final block layout and counters.

Script format, one operation per line ('#' starts a comment):

  alloc <bytes>   allocate a block with <bytes> of payload
  free <n>        free the n-th allocation made so far (1-based)

Example:
  arenactl trace workload.txt
  arenactl trace workload.txt --size 65536 --dump-each`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(args[0])
		},
	}
}

func runTrace(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	a, err := arena.New(heapSize)
	if err != nil {
		return err
	}
	defer a.Release()

	al, err := alloc.New(a)
	if err != nil {
		return err
	}

	var refs []alloc.Ref // by allocation number, 1-based in the script

	sc := bufio.NewScanner(f)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return fmt.Errorf("line %d: expected 'alloc <bytes>' or 'free <n>'", lineNum)
		}

		arg, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}

		switch fields[0] {
		case "alloc":
			ref, _, allocErr := al.Alloc(int32(arg))
			if allocErr != nil {
				return fmt.Errorf("line %d: alloc %d: %w", lineNum, arg, allocErr)
			}
			refs = append(refs, ref)
		case "free":
			if arg < 1 || arg > len(refs) {
				return fmt.Errorf("line %d: no allocation #%d", lineNum, arg)
			}
			if freeErr := al.Free(refs[arg-1]); freeErr != nil {
				return fmt.Errorf("line %d: free #%d: %w", lineNum, arg, freeErr)
			}
		default:
			return fmt.Errorf("line %d: unknown operation %q", lineNum, fields[0])
		}

		if traceDumpEach {
			fmt.Printf("== line %d: %s %d\n", lineNum, fields[0], arg)
			if dumpErr := printHeap(a); dumpErr != nil {
				return dumpErr
			}
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	if !traceDumpEach {
		if err := printHeap(a); err != nil {
			return err
		}
	}

	s := al.Stats()
	fmt.Printf("allocs=%d frees=%d splits=%d coalesce_forward=%d coalesce_backward=%d\n",
		s.AllocCalls, s.FreeCalls, s.SplitCount, s.CoalesceForward, s.CoalesceBackward)
	return nil
}
