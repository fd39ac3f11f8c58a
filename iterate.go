package bitset

import "math/bits"

// All returns a range-over-func iterator yielding the finite members of b
// in ascending order. It never mutates storage, copying each live word
// into a scratch variable before extracting bits from it.
func (b *Bitmap) All() func(yield func(int) bool) {
	return func(yield func(int) bool) {
		for k := 0; k < b.size; k++ {
			w := b.words[k]
			for w != 0 {
				p := bits.TrailingZeros64(w)
				if !yield(k*wordBits + p) {
					return
				}
				w &^= uint64(1) << uint(p)
			}
		}
	}
}

// ToSlice returns the ordered finite members of b. If upTo is supplied and
// b is cofinite, every integer in [size*W, upTo] is appended as well,
// implementing extract_finite_list(up_to?).
func (b *Bitmap) ToSlice(upTo ...int) []int {
	out := make([]int, 0, b.popcountFinite())
	for n := range b.All() {
		out = append(out, n)
	}
	if b.tail && len(upTo) > 0 {
		bound := upTo[0]
		for n := b.size * wordBits; n <= bound; n++ {
			out = append(out, n)
		}
	}
	return out
}

// Len reports the finite popcount. For cofinite sets this is NOT the
// cardinality of the represented set; callers needing true cardinality
// must check IsInfinite first.
func (b *Bitmap) Len() int {
	return b.popcountFinite()
}

// At returns the i-th smallest finite member (0-indexed). A negative i
// counts from the end (-1 is the largest). Fails with OutOfRange if i is
// outside [-length, length).
func (b *Bitmap) At(i int) (int, error) {
	length := b.Len()
	idx := i
	if idx < 0 {
		idx += length
	}
	if idx < 0 || idx >= length {
		return 0, newOutOfRange("index %d out of range for length %d", i, length)
	}
	remaining := idx
	for k := 0; k < b.size; k++ {
		w := b.words[k]
		c := bits.OnesCount64(w)
		if remaining >= c {
			remaining -= c
			continue
		}
		for w != 0 {
			p := bits.TrailingZeros64(w)
			if remaining == 0 {
				return k*wordBits + p, nil
			}
			remaining--
			w &^= uint64(1) << uint(p)
		}
	}
	return 0, newOutOfRange("index %d out of range for length %d", i, length)
}

// Slice returns a new Bitmap containing the members selected by Python-
// style slice semantics start:stop:step (step must be positive; a
// non-positive step fails with DomainError since it is a malformed
// argument rather than an out-of-bounds position).
func (b *Bitmap) Slice(start, stop, step int) (*Bitmap, error) {
	if step <= 0 {
		return nil, newDomainError("slice: step %d must be positive", step)
	}
	length := b.Len()
	lo, hi := normalizeSliceBound(start, length), normalizeSliceBound(stop, length)
	members := b.ToSlice()
	out := New()
	for i := lo; i < hi; i += step {
		if i < 0 || i >= length {
			continue
		}
		if err := out.Add(members[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// normalizeSliceBound clamps a possibly-negative, possibly out-of-range
// slice bound into [0, length], mirroring Python's slice.indices.
func normalizeSliceBound(n, length int) int {
	if n < 0 {
		n += length
		if n < 0 {
			n = 0
		}
	}
	if n > length {
		n = length
	}
	return n
}
