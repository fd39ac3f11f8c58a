package store

import (
	"context"
	"testing"

	"bitset"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), DialectSQLite, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a, err := bitset.NewFromInts([]int{1, 5, 9})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, "a", a); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := s.Load(ctx, "a")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !a.Equal(loaded) {
		t.Errorf("Load(%q) = %v, want %v", "a", loaded, a)
	}
}

func TestLoadMissingNameFails(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Load(context.Background(), "nope"); err == nil {
		t.Errorf("Load of missing name succeeded, want an error")
	}
}

func TestListAndDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a, _ := bitset.NewFromInts([]int{1})
	b, _ := bitset.NewFromInts([]int{2})
	if err := s.Save(ctx, "a", a); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, "b", b); err != nil {
		t.Fatal(err)
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 {
		t.Fatalf("List() = %v, want 2 entries", names)
	}

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	names, err = s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "b" {
		t.Errorf("List() after delete = %v, want [b]", names)
	}
}

func TestSaveOverwritesExisting(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a, _ := bitset.NewFromInts([]int{1})
	if err := s.Save(ctx, "x", a); err != nil {
		t.Fatal(err)
	}
	b, _ := bitset.NewFromInts([]int{2, 3})
	if err := s.Save(ctx, "x", b); err != nil {
		t.Fatal(err)
	}
	loaded, err := s.Load(ctx, "x")
	if err != nil {
		t.Fatal(err)
	}
	if !loaded.Equal(b) {
		t.Errorf("Load after overwrite = %v, want %v", loaded, b)
	}
}
