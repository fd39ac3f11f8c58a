package bitset

// Option configures a constructor after its finite contents are laid down.
type Option func(*Bitmap)

// WithTrailingBits sets the initial tail bit. Applied after the finite
// contents of the constructor have been written.
func WithTrailingBits(tail bool) Option {
	return func(b *Bitmap) { b.tail = tail }
}

func newEmptyStorage() []uint64 {
	return make([]uint64, growthSlack)
}

// New returns an empty Bitmap (finite, no members) unless overridden by
// WithTrailingBits(true).
func New(opts ...Option) *Bitmap {
	b := &Bitmap{words: newEmptyStorage()}
	applyOptions(b, opts)
	return b
}

// Record is a single-element record, mirroring the common database idiom
// of a one-column row keyed by id: only the first (only) element is used
// as the member to add.
type Record [1]int

// NewFromRecords builds a Bitmap from a sequence of single-element
// records, using each record's sole element as the member to add.
func NewFromRecords(records []Record, opts ...Option) (*Bitmap, error) {
	b := New()
	for _, r := range records {
		if err := b.Add(r[0]); err != nil {
			return nil, err
		}
	}
	applyOptions(b, opts)
	return b, nil
}

// NewFromInts builds a Bitmap containing exactly the given non-negative
// integers (duplicates collapse, order is irrelevant to the result).
func NewFromInts(xs []int, opts ...Option) (*Bitmap, error) {
	b := New()
	for _, x := range xs {
		if err := b.Add(x); err != nil {
			return nil, err
		}
	}
	applyOptions(b, opts)
	return b, nil
}

// Clone returns a deep copy of b; mutating the result never affects b.
func (b *Bitmap) Clone() *Bitmap {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return &Bitmap{words: words, size: b.size, tail: b.tail}
}

// Copy is an alias for Clone. Both are deep copies, since a Bitmap owns no
// external resources for a shallow copy to usefully share.
func (b *Bitmap) Copy() *Bitmap {
	return b.Clone()
}

func applyOptions(b *Bitmap, opts []Option) {
	for _, opt := range opts {
		opt(b)
	}
	b.normalizeSize()
}
