// Package humanstats formats Bitmap size/allocation numbers for humans,
// for the CLI's stat command.
package humanstats

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"bitset"
)

// Summary is a human-oriented snapshot of a Bitmap's footprint.
type Summary struct {
	Members        int
	Infinite       bool
	AllocatedBytes uint64
	DumpBytes      int
	CompressRatio  float64
}

// Summarize computes a Summary for b.
func Summarize(b *bitset.Bitmap) Summary {
	allocated := uint64(b.GetAllocated()) * uint64(b.GetWordBitSize()/8)
	dump := b.FastDump()
	rawBytes := (b.GetSize() + 1) * (b.GetWordBitSize() / 8)
	ratio := 1.0
	if len(dump) > 0 {
		ratio = float64(rawBytes) / float64(len(dump))
	}
	return Summary{
		Members:        b.Len(),
		Infinite:       b.IsInfinite(),
		AllocatedBytes: allocated,
		DumpBytes:      len(dump),
		CompressRatio:  ratio,
	}
}

// String renders the summary the way the CLI's "stat" command prints it.
func (s Summary) String() string {
	members := fmt.Sprintf("%s finite members", humanize.Comma(int64(s.Members)))
	if s.Infinite {
		members += " (+ infinite tail)"
	}
	return fmt.Sprintf(
		"%s, %s allocated, %s dump (%.1fx compression)",
		members,
		humanize.Bytes(s.AllocatedBytes),
		humanize.Bytes(uint64(s.DumpBytes)),
		s.CompressRatio,
	)
}
