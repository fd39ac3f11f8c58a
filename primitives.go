package bitset

import "math/bits"

// Test reports whether i is a member of the set.
func (b *Bitmap) Test(i int) bool {
	if i < 0 {
		return false
	}
	w := i / wordBits
	if w < b.size {
		return b.words[w]&(uint64(1)<<uint(i%wordBits)) != 0
	}
	return b.tail
}

// Contains is an alias for Test, read more naturally at call sites that
// check membership rather than probe a bit position.
func (b *Bitmap) Contains(i int) bool {
	return b.Test(i)
}

// setBit sets bit i unconditionally, growing storage as needed, then
// renormalizes size. Does not validate i's sign; callers enforce DomainError.
func (b *Bitmap) setBit(i int) {
	w, bit := i/wordBits, uint(i%wordBits)
	b.ensureWords(w)
	b.words[w] |= uint64(1) << bit
	b.normalizeSize()
}

// clearBit clears bit i unconditionally, materializing storage from the
// tail if necessary, then renormalizes size.
func (b *Bitmap) clearBit(i int) {
	w, bit := i/wordBits, uint(i%wordBits)
	if w >= b.size {
		if !b.tail {
			return // conceptually already 0, nothing to materialize
		}
		b.ensureWords(w)
	}
	b.words[w] &^= uint64(1) << bit
	b.normalizeSize()
}

// popcountFinite sums the set bits across the live words only.
func (b *Bitmap) popcountFinite() int {
	n := 0
	for _, w := range b.words[:b.size] {
		n += bits.OnesCount64(w)
	}
	return n
}
