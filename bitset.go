// Package bitset implements a dense bit-array set of non-negative integers
// that can represent either a finite set or the complement of a finite set
// (a cofinite set) under one uniform algebra.
//
// Every Bitmap carries a tail bit: when clear, every integer at or beyond
// the materialized storage is absent; when set, every such integer is
// present. Union, intersection, difference, symmetric difference,
// membership, iteration and slicing all honor this dual nature.
package bitset

import "strconv"

// wordBits is W, the bit-width of one storage word. Fixed at 64 because it
// maps directly onto math/bits, which the Go compiler intrinsifies on
// amd64/arm64.
const wordBits = 64

// growthSlack is the minimum number of spare words kept allocated beyond
// size, so capacity stays strictly greater than size cheaply on every grow.
const growthSlack = 4

// Bitmap is a set of non-negative integers backed by a growable array of
// 64-bit words, plus a tail bit for cofinite representation.
//
// The zero value is not ready for use; construct one with New,
// NewFromInts, NewFromRecords, or NewFromBytes.
type Bitmap struct {
	words []uint64 // len(words) is capacity; words[0:size] are live
	size  int
	tail  bool
}

// GetWordBitSize reports W, the bit-width of one storage word.
func (b *Bitmap) GetWordBitSize() int {
	return wordBits
}

// GetSize reports the number of words currently considered live.
func (b *Bitmap) GetSize() int {
	return b.size
}

// GetAllocated reports the number of words actually allocated.
func (b *Bitmap) GetAllocated() int {
	return len(b.words)
}

// IsInfinite reports whether the tail bit is set, i.e. whether this Bitmap
// represents a cofinite set.
func (b *Bitmap) IsInfinite() bool {
	return b.tail
}

// Bool reports whether the set has any member at all: any finite member,
// or a set tail.
func (b *Bitmap) Bool() bool {
	return b.tail || b.popcountFinite() > 0
}

// Words returns a defensive copy of the live storage words. Mutating the
// returned slice has no effect on b.
func (b *Bitmap) Words() []uint64 {
	out := make([]uint64, b.size)
	copy(out, b.words[:b.size])
	return out
}

// String implements fmt.Stringer with a short human-oriented summary:
// a handful of members, followed by an ellipsis if truncated or if the
// tail is infinite.
func (b *Bitmap) String() string {
	members := b.ToSlice()
	const maxShown = 8
	truncated := len(members) > maxShown
	if truncated {
		members = members[:maxShown]
	}
	suffix := ""
	if b.tail {
		suffix = ", ...infinite"
	}
	out := "Bitmap{"
	for i, m := range members {
		if i > 0 {
			out += ", "
		}
		out += strconv.Itoa(m)
	}
	if truncated {
		out += ", ..."
	}
	out += suffix + "}"
	return out
}
