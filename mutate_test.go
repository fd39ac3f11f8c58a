package bitset

import "testing"

func TestAddDiscardNoOp(t *testing.T) {
	b := mustInts(t, 1, 2, 3)
	clone := b.Clone()
	if err := b.Add(50); err != nil {
		t.Fatal(err)
	}
	b.Discard(50)
	if !b.Equal(clone) {
		t.Errorf("add(n); discard(n) changed the set: %v, want %v", b, clone)
	}
}

func TestAddRejectsNegative(t *testing.T) {
	b := New()
	if err := b.Add(-1); !IsDomainError(err) {
		t.Errorf("Add(-1) error = %v, want DomainError", err)
	}
	if b.Len() != 0 {
		t.Errorf("Add(-1) mutated the set: %v", b)
	}
}

func TestDiscardNeverFails(t *testing.T) {
	b := New()
	b.Discard(-5) // must not panic or error
	b.Discard(1000)
	if b.Len() != 0 {
		t.Errorf("Discard on empty set produced members: %v", b)
	}
}

func TestRemoveMissingElement(t *testing.T) {
	b := mustInts(t, 1, 2)
	if err := b.Remove(1); err != nil {
		t.Fatalf("Remove(1): %v", err)
	}
	if err := b.Remove(1); !IsMissingElement(err) {
		t.Errorf("Remove(1) again error = %v, want MissingElement", err)
	}
}

func TestPopReturnsLargestFiniteMember(t *testing.T) {
	b := mustInts(t, 1, 2, 100)
	n, err := b.Pop()
	if err != nil {
		t.Fatal(err)
	}
	if n != 100 {
		t.Errorf("Pop() = %d, want 100", n)
	}
	if b.Test(100) {
		t.Errorf("Pop() did not remove 100")
	}
}

func TestPopOnEmptySet(t *testing.T) {
	b := New()
	if _, err := b.Pop(); !IsEmptySet(err) {
		t.Errorf("Pop() on empty error = %v, want EmptySet", err)
	}
}

func TestPopOnCofiniteWithNoFiniteMembers(t *testing.T) {
	b := New(WithTrailingBits(true))
	if _, err := b.Pop(); !IsEmptySet(err) {
		t.Errorf("Pop() on empty cofinite error = %v, want EmptySet", err)
	}
}

func TestClearResetsToEmptyFinite(t *testing.T) {
	b := mustInts(t, 1, 2, 3)
	b.tail = true
	b.Clear()
	if b.Len() != 0 || b.IsInfinite() {
		t.Errorf("Clear() left %v, want empty finite set", b)
	}
}

func TestUpdateWithSignsAtomicity(t *testing.T) {
	b := mustInts(t, 1, 2)
	clone := b.Clone()
	err := b.UpdateWithSigns(map[int]int8{3: 1, -1: 1})
	if !IsDomainError(err) {
		t.Fatalf("UpdateWithSigns error = %v, want DomainError", err)
	}
	if !b.Equal(clone) {
		t.Errorf("UpdateWithSigns left partial mutation: %v, want unchanged %v", b, clone)
	}
}

func TestUpdateWithSignsAppliesAddAndDiscard(t *testing.T) {
	b := mustInts(t, 1, 2)
	if err := b.UpdateWithSigns(map[int]int8{1: -1, 3: 1}); err != nil {
		t.Fatal(err)
	}
	want := mustInts(t, 2, 3)
	if !b.Equal(want) {
		t.Errorf("UpdateWithSigns result = %v, want %v", b, want)
	}
}
