package bitset

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a 256-bit content digest of b's canonical word
// sequence (the same bytes FastDump would compress, before compression).
// Two Bitmaps that are Equal always share a Fingerprint; it is used by
// internal/registry as a dedup key.
func (b *Bitmap) Fingerprint() [32]byte {
	h, _ := blake2b.New256(nil)
	var word [8]byte
	for k := 0; k < b.size; k++ {
		binary.LittleEndian.PutUint64(word[:], b.words[k])
		_, _ = h.Write(word[:])
	}
	sentinel := uint64(0)
	if b.tail {
		sentinel = ^uint64(0)
	}
	binary.LittleEndian.PutUint64(word[:], sentinel)
	_, _ = h.Write(word[:])

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
