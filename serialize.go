package bitset

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"io"
)

// FastDump serializes b as: size live words followed by one sentinel word
// (all-zero if the tail is clear, all-ones if set), each word little-
// endian over 8 bytes, compressed with zlib at DefaultCompression. This
// exact compressor configuration is part of the wire contract: it is what
// makes the dump byte-for-byte reproducible across runs.
func (b *Bitmap) FastDump() []byte {
	raw := make([]byte, (b.size+1)*8)
	for k := 0; k < b.size; k++ {
		binary.LittleEndian.PutUint64(raw[k*8:], b.words[k])
	}
	sentinel := uint64(0)
	if b.tail {
		sentinel = ^uint64(0)
	}
	binary.LittleEndian.PutUint64(raw[b.size*8:], sentinel)

	var buf bytes.Buffer
	w, _ := zlib.NewWriterLevel(&buf, zlib.DefaultCompression)
	_, _ = w.Write(raw)
	_ = w.Close()
	return buf.Bytes()
}

// NewFromBytes decodes a buffer produced by FastDump (fastload). It fails
// with EncodingError for a malformed compressed stream, a decompressed
// length that isn't a multiple of 8 bytes, or an unrecognized tail
// sentinel word. A failed load never mutates anything — it only ever
// returns a fresh Bitmap or an error.
func NewFromBytes(data []byte) (*Bitmap, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, newEncodingError(err, "fastload: not a valid compressed stream")
	}
	raw, err := io.ReadAll(r)
	_ = r.Close()
	if err != nil {
		return nil, newEncodingError(err, "fastload: failed to decompress stream")
	}
	if len(raw)%8 != 0 {
		return nil, newEncodingError(nil, "fastload: decompressed length %d is not a multiple of 8", len(raw))
	}
	nWords := len(raw) / 8
	if nWords == 0 {
		return nil, newEncodingError(nil, "fastload: decompressed stream has no sentinel word")
	}

	sentinel := binary.LittleEndian.Uint64(raw[(nWords-1)*8:])
	var tail bool
	switch sentinel {
	case 0:
		tail = false
	case ^uint64(0):
		tail = true
	default:
		return nil, newEncodingError(nil, "fastload: unrecognized tail sentinel word %#016x", sentinel)
	}

	size := nWords - 1
	b := &Bitmap{words: make([]uint64, size+growthSlack), size: size, tail: tail}
	for k := 0; k < size; k++ {
		b.words[k] = binary.LittleEndian.Uint64(raw[k*8:])
	}
	b.normalizeSize()
	return b, nil
}

// MarshalBinary implements encoding.BinaryMarshaler by delegating to
// FastDump, so any host-provided serialization protocol (gob, a future RPC
// layer) round-trips through the canonical wire format instead of
// reinventing one.
func (b *Bitmap) MarshalBinary() ([]byte, error) {
	return b.FastDump(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler by delegating to
// NewFromBytes and copying the result into the receiver.
func (b *Bitmap) UnmarshalBinary(data []byte) error {
	loaded, err := NewFromBytes(data)
	if err != nil {
		return err
	}
	*b = *loaded
	return nil
}

// StrBits returns a string of '0'/'1' characters of length size*W, bit 0
// first. Output-only: the loader recognizes only the compressed binary
// form produced by FastDump.
func (b *Bitmap) StrBits() string {
	out := make([]byte, b.size*wordBits)
	for k := 0; k < b.size; k++ {
		w := b.words[k]
		for bit := 0; bit < wordBits; bit++ {
			c := byte('0')
			if w&(uint64(1)<<uint(bit)) != 0 {
				c = '1'
			}
			out[k*wordBits+bit] = c
		}
	}
	return string(out)
}
