// Package printer renders an arena's block list for diagnostics. It is
// read-only: no invariant is enforced or repaired while printing.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/arenakit/arena"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs a human-readable block table.
	FormatText Format = "text"

	// FormatJSON outputs JSON.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// ShowTotals appends aggregate used/free byte counts.
	// Default: true
	ShowTotals bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		ShowTotals: true,
	}
}

// Printer handles formatted output of heap structures.
type Printer struct {
	a    *arena.Arena
	w    io.Writer
	opts Options
}

// New creates a new Printer over the given arena.
//
// Example:
//
//	p := printer.New(a, os.Stdout, printer.DefaultOptions())
//	p.PrintBlocks()
func New(a *arena.Arena, w io.Writer, opts Options) *Printer {
	return &Printer{
		a:    a,
		w:    w,
		opts: opts,
	}
}

// PrintBlocks walks the block list from the heap start to the end mark and
// prints one entry per block, plus totals when requested.
func (p *Printer) PrintBlocks() error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printBlocksJSON()
	case FormatText, "":
		return p.printBlocksText()
	default:
		return fmt.Errorf("printer: unknown format %q", p.opts.Format)
	}
}
