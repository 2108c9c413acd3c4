package printer

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const textRule = "--------------------------------------------------------------------------------"

// printBlocksText prints the block list as a table:
//
//	No.   Status  Prev    Begin       End         Size
//	1     alloc   alloc   0x00000004  0x0000006b  104
//	2     FREE    alloc   0x0000006c  0x00000ff7  3984
//
// Begin and End are the offsets of the block's first and last byte. Totals
// are printed with grouped digits for readability.
func (p *Printer) printBlocksText() error {
	fmt.Fprintf(p.w, "%s\n", textRule)
	fmt.Fprintf(p.w, "No.\tStatus\tPrev\tBegin\t\tEnd\t\tSize\n")
	fmt.Fprintf(p.w, "%s\n", textRule)

	it := p.a.Blocks()
	for {
		b, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(p.w, "%d\t%s\t%s\t0x%08x\t0x%08x\t%d\n",
			b.Index+1, statusWord(b.Allocated), statusWord(b.PrevAllocated),
			b.Start, b.End-1, b.Size)
	}
	fmt.Fprintf(p.w, "%s\n", textRule)

	if !p.opts.ShowTotals {
		return nil
	}

	s, err := p.a.Stats()
	if err != nil {
		return err
	}
	mp := message.NewPrinter(language.English)
	mp.Fprintf(p.w, "Total used: %d bytes\n", s.Used)
	mp.Fprintf(p.w, "Total free: %d bytes\n", s.Free)
	mp.Fprintf(p.w, "Total:      %d bytes\n", s.Total)
	return nil
}

func statusWord(allocated bool) string {
	if allocated {
		return "alloc"
	}
	return "FREE"
}
