package printer

import (
	"encoding/json"
	"io"
)

// jsonBlock represents one block in JSON output.
type jsonBlock struct {
	Index         int   `json:"index"`
	Allocated     bool  `json:"allocated"`
	PrevAllocated bool  `json:"prev_allocated"`
	Start         int32 `json:"start"`
	End           int32 `json:"end"`
	Size          int32 `json:"size"`
}

// jsonTotals represents the aggregate byte counts.
type jsonTotals struct {
	Used  int64 `json:"used"`
	Free  int64 `json:"free"`
	Total int64 `json:"total"`
}

type jsonHeap struct {
	Blocks []jsonBlock `json:"blocks"`
	Totals *jsonTotals `json:"totals,omitempty"`
}

// printBlocksJSON prints the block list as a single JSON document.
func (p *Printer) printBlocksJSON() error {
	out := jsonHeap{Blocks: []jsonBlock{}}

	it := p.a.Blocks()
	for {
		b, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		out.Blocks = append(out.Blocks, jsonBlock{
			Index:         b.Index,
			Allocated:     b.Allocated,
			PrevAllocated: b.PrevAllocated,
			Start:         b.Start,
			End:           b.End,
			Size:          b.Size,
		})
	}

	if p.opts.ShowTotals {
		s, err := p.a.Stats()
		if err != nil {
			return err
		}
		out.Totals = &jsonTotals{Used: s.Used, Free: s.Free, Total: s.Total}
	}

	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
