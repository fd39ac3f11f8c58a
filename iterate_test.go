package bitset

import (
	"reflect"
	"testing"
)

func TestToSliceOrdering(t *testing.T) {
	xs := []int{23, 45, 67, 89, 110, 130, 174, 1002, 2132, 23434}
	b, err := NewFromInts(xs)
	if err != nil {
		t.Fatal(err)
	}
	got := b.ToSlice()
	want := []int{23, 45, 67, 89, 110, 130, 174, 1002, 2132, 23434}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToSlice() = %v, want %v", got, want)
	}
}

func TestToSliceWithUpToExtendsCofiniteTail(t *testing.T) {
	b := New(WithTrailingBits(true))
	if err := b.Add(3); err != nil {
		t.Fatal(err)
	}
	got := b.ToSlice(b.GetSize()*b.GetWordBitSize() + 2)
	last3 := got[len(got)-3:]
	want := []int{b.GetSize() * b.GetWordBitSize(), b.GetSize()*b.GetWordBitSize() + 1, b.GetSize()*b.GetWordBitSize() + 2}
	if !reflect.DeepEqual(last3, want) {
		t.Errorf("ToSlice(upTo) tail extension = %v, want %v", last3, want)
	}
}

func TestAtPositiveAndNegativeIndex(t *testing.T) {
	xs := []int{5, 9, 12, 99}
	b, err := NewFromInts(xs)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range xs {
		got, err := b.At(i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if got != want {
			t.Errorf("At(%d) = %d, want %d", i, got, want)
		}
	}
	for i := 1; i <= len(xs); i++ {
		got, err := b.At(-i)
		if err != nil {
			t.Fatalf("At(-%d): %v", i, err)
		}
		want := xs[len(xs)-i]
		if got != want {
			t.Errorf("At(-%d) = %d, want %d", i, got, want)
		}
	}
}

func TestAtOutOfRange(t *testing.T) {
	b, err := NewFromInts([]int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.At(3); !IsOutOfRange(err) {
		t.Errorf("At(3) error = %v, want OutOfRange", err)
	}
	if _, err := b.At(-4); !IsOutOfRange(err) {
		t.Errorf("At(-4) error = %v, want OutOfRange", err)
	}
}

func TestSliceSemantics(t *testing.T) {
	b, err := NewFromInts([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	if err != nil {
		t.Fatal(err)
	}
	got, err := b.Slice(2, 7, 2)
	if err != nil {
		t.Fatal(err)
	}
	want, err := NewFromInts([]int{2, 4, 6})
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("Slice(2,7,2) = %v, want %v", got, want)
	}
}

func TestSliceRejectsNonPositiveStep(t *testing.T) {
	b, err := NewFromInts([]int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Slice(0, 3, 0); !IsDomainError(err) {
		t.Errorf("Slice(step=0) error = %v, want DomainError", err)
	}
}

func TestAllStopsEarlyWhenYieldReturnsFalse(t *testing.T) {
	b, err := NewFromInts([]int{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatal(err)
	}
	var seen []int
	for n := range b.All() {
		seen = append(seen, n)
		if len(seen) == 2 {
			break
		}
	}
	if !reflect.DeepEqual(seen, []int{1, 2}) {
		t.Errorf("early-stop iteration = %v, want [1 2]", seen)
	}
}
